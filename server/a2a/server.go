// Package a2a exposes a conversational agent over the A2A protocol. It wraps
// the agent in a message processor, publishes an agent card, and serves both
// from a single HTTP endpoint.
package a2a

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"trpc.group/trpc-go/trpc-a2a-go/auth"
	"trpc.group/trpc-go/trpc-a2a-go/protocol"
	a2a "trpc.group/trpc-go/trpc-a2a-go/server"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"

	"github.com/SasiVeeramachaneni/currency-converter/agent"
	"github.com/SasiVeeramachaneni/currency-converter/log"
)

const userIDHeader = "X-User-ID"

// runner is the slice of the agent the transport needs.
type runner interface {
	Run(ctx context.Context, userMessage string) (string, error)
}

// Server serves one agent over A2A. The protocol endpoint and the agent card
// live at the root path; /health answers liveness probes.
type Server struct {
	agent      *agent.Agent
	opts       *options
	handler    http.Handler
	httpServer *http.Server
}

// New creates a new A2A server for the given agent.
func New(ag *agent.Agent, opts ...Option) (*Server, error) {
	if ag == nil {
		return nil, errors.New("agent is required")
	}
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{
		agent: ag,
		opts:  &o,
	}

	a2aServer, err := s.buildA2AServer()
	if err != nil {
		return nil, fmt.Errorf("failed to init a2a server: %w", err)
	}

	router := mux.NewRouter()
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
	})
	router.Use(c.Handler)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(a2aServer.Handler())
	s.handler = router

	return s, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if s.handler == nil {
		return errors.New("server not initialized")
	}
	s.httpServer = &http.Server{
		Addr:    s.opts.host,
		Handler: s.handler,
	}
	log.Infof("Starting a2a server at %s", s.opts.host)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return errors.New("http server is nil")
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop a2a server: %w", err)
	}
	log.Infof("Stopped a2a server at %s", s.opts.host)
	return nil
}

// Host returns the listen address.
func (s *Server) Host() string {
	return s.opts.host
}

// Handler returns the http handler for the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) buildA2AServer() (*a2a.A2AServer, error) {
	agentCard := s.buildAgentCard()

	processor := &messageProcessor{runner: s.agent}
	// Each A2A message is answered as one self-contained turn, so one stored
	// history entry is enough.
	taskManager, err := taskmanager.NewMemoryTaskManager(processor, taskmanager.WithMaxHistoryLength(1))
	if err != nil {
		return nil, err
	}

	authProvider := &userAuthProvider{}
	a2aOpts := append([]a2a.Option{a2a.WithAuthProvider(authProvider)}, s.opts.extraOptions...)
	return a2a.NewA2AServer(agentCard, taskManager, a2aOpts...)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// userAuthProvider identifies callers by the X-User-ID header and falls back
// to a generated anonymous ID.
type userAuthProvider struct{}

// Authenticate implements auth.AuthProvider.
func (p *userAuthProvider) Authenticate(r *http.Request) (*auth.User, error) {
	if r == nil {
		return nil, errors.New("request is nil")
	}
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		userID = uuid.New().String()
	}
	return &auth.User{ID: userID}, nil
}

// messageProcessor bridges A2A messages to the agent. Every outcome of a run,
// success or failure, is answered with an agent message so remote callers
// never see a transport-level error for an agent-level problem.
type messageProcessor struct {
	runner runner
}

// ProcessMessage is the main entry point for processing messages.
func (m *messageProcessor) ProcessMessage(
	ctx context.Context,
	message protocol.Message,
	options taskmanager.ProcessOptions,
	handler taskmanager.TaskHandler,
) (*taskmanager.MessageProcessingResult, error) {
	user, ok := ctx.Value(auth.AuthUserKey).(*auth.User)
	if !ok {
		return nil, errors.New("userID is required")
	}

	text := extractTextFromMessage(message)
	if text == "" {
		return agentReply("Please send a text message describing what you would like to convert."), nil
	}

	log.Debugf("processing message from user %s: %q", user.ID, text)
	content, err := m.runner.Run(ctx, text)
	if err != nil {
		log.Errorf("failed to run agent: %v", err)
		return agentReply(fmt.Sprintf("Error: %s", err.Error())), nil
	}
	return agentReply(content), nil
}

func agentReply(text string) *taskmanager.MessageProcessingResult {
	message := protocol.NewMessage(protocol.MessageRoleAgent, []protocol.Part{
		protocol.NewTextPart(text),
	})
	return &taskmanager.MessageProcessingResult{
		Result: &message,
	}
}

// extractTextFromMessage returns the first text part of a message.
func extractTextFromMessage(message protocol.Message) string {
	for _, part := range message.Parts {
		if textPart, ok := part.(*protocol.TextPart); ok {
			return textPart.Text
		}
	}
	return ""
}
