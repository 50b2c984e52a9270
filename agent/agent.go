// Package agent implements the tool-calling loop that drives a conversation
// between a language model and a set of callable tools.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SasiVeeramachaneni/currency-converter/log"
	"github.com/SasiVeeramachaneni/currency-converter/model"
	"github.com/SasiVeeramachaneni/currency-converter/tool"
)

// ErrMaxToolRounds is returned when the model keeps requesting tool calls
// past the configured round limit. It is surfaced to callers the same way a
// model-call failure is.
var ErrMaxToolRounds = errors.New("tool-calling round limit exceeded")

// Info contains basic information about an agent.
type Info struct {
	// Name is the agent name.
	Name string
	// Description describes what the agent does.
	Description string
}

// Agent runs the tool-calling loop: it submits the conversation and the tool
// declarations to the model, executes any tool calls the model requests,
// feeds the results back, and repeats until the model replies with plain
// text. One Run invocation is one independent conversation; concurrent Runs
// share no mutable state.
type Agent struct {
	name          string
	description   string
	model         model.Model
	instruction   string
	tools         map[string]tool.CallableTool
	genConfig     model.GenerationConfig
	maxToolRounds int
}

// New creates a new agent. It fails if no model is configured or if two
// tools declare the same name, so drift between declared and implemented
// tools is caught at startup rather than at dispatch time.
func New(name string, opts ...Option) (*Agent, error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.model == nil {
		return nil, errors.New("model is required")
	}

	tools := make(map[string]tool.CallableTool, len(o.tools))
	for _, ct := range o.tools {
		decl := ct.Declaration()
		if decl == nil || decl.Name == "" {
			return nil, errors.New("tool declaration must have a name")
		}
		if _, exists := tools[decl.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name: %s", decl.Name)
		}
		tools[decl.Name] = ct
	}

	return &Agent{
		name:          name,
		description:   o.description,
		model:         o.model,
		instruction:   o.instruction,
		tools:         tools,
		genConfig:     o.genConfig,
		maxToolRounds: o.maxToolRounds,
	}, nil
}

// Info returns basic information about the agent.
func (a *Agent) Info() Info {
	return Info{
		Name:        a.name,
		Description: a.description,
	}
}

// Run answers a single user message with no prior conversation history.
func (a *Agent) Run(ctx context.Context, userMessage string) (string, error) {
	return a.RunWithHistory(ctx, nil, userMessage)
}

// RunWithHistory answers a user message given prior conversation turns. The
// history is replayed between the system instruction and the new user
// message; it is not mutated.
//
// The loop is sequential and blocking: each round's model call and tool
// dispatch complete before the next round begins. Tool execution failures
// are reported back to the model as tool results so it can recover; a
// failure of the model call itself aborts the loop and propagates.
func (a *Agent) RunWithHistory(ctx context.Context, history []model.Message, userMessage string) (string, error) {
	messages := make([]model.Message, 0, len(history)+2)
	if a.instruction != "" {
		messages = append(messages, model.NewSystemMessage(a.instruction))
	}
	messages = append(messages, history...)
	messages = append(messages, model.NewUserMessage(userMessage))

	toolRounds := 0
	for {
		response, err := a.model.GenerateContent(ctx, &model.Request{
			Messages:         messages,
			GenerationConfig: a.genConfig,
			Tools:            a.declaredTools(),
		})
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}

		assistantMsg := response.Message()
		if !response.HasToolCalls() {
			return assistantMsg.Content, nil
		}

		if toolRounds >= a.maxToolRounds {
			return "", fmt.Errorf("%w (limit %d)", ErrMaxToolRounds, a.maxToolRounds)
		}
		toolRounds++

		// The assistant message carrying the tool-call intents must precede
		// the tool results in the conversation.
		messages = append(messages, assistantMsg)
		for _, call := range assistantMsg.ToolCalls {
			content := a.dispatch(ctx, call)
			messages = append(messages, model.NewToolMessage(call.ID, call.Function.Name, content))
		}
	}
}

// declaredTools exposes the registry in the shape the model request expects.
func (a *Agent) declaredTools() map[string]tool.Tool {
	tools := make(map[string]tool.Tool, len(a.tools))
	for name, ct := range a.tools {
		tools[name] = ct
	}
	return tools
}

// dispatch executes one tool call and returns the JSON payload to feed back
// to the model. Every failure mode (unknown tool, malformed arguments,
// execution error, panic) is converted into an error payload so a single bad
// call never aborts the loop.
func (a *Agent) dispatch(ctx context.Context, call model.ToolCall) (content string) {
	name := call.Function.Name
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("tool %s panicked: %v", name, r)
			content = errorPayload(fmt.Sprintf("tool %s panicked: %v", name, r))
		}
	}()

	ct, ok := a.tools[name]
	if !ok {
		log.Warnf("model requested unknown tool %q", name)
		return errorPayload(fmt.Sprintf("Unknown function: %s", name))
	}

	log.Debugf("dispatching tool %s with args %s", name, call.Function.Arguments)
	result, err := ct.Call(ctx, call.Function.Arguments)
	if err != nil {
		return errorPayload(err.Error())
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to serialize result of tool %s: %v", name, err)
		return errorPayload(fmt.Sprintf("failed to serialize result of %s", name))
	}
	return string(data)
}

// errorPayload serializes an error message as the single-object error
// variant of a tool result.
func errorPayload(message string) string {
	data, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		// Marshalling a map[string]string cannot realistically fail.
		return `{"error": "internal error"}`
	}
	return string(data)
}
