package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SasiVeeramachaneni/currency-converter/currency"
	"github.com/SasiVeeramachaneni/currency-converter/log"
	a2a "github.com/SasiVeeramachaneni/currency-converter/server/a2a"
)

var (
	serveHost      string
	servePort      string
	servePublicURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the agent over the A2A protocol",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (or A2A_HOST env)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (or A2A_PORT env)")
	serveCmd.Flags().StringVar(&servePublicURL, "public-url", "", "externally reachable URL for the agent card (or PUBLIC_URL env)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.host = serveHost
	}
	if servePort != "" {
		cfg.port = servePort
	}
	if servePublicURL != "" {
		cfg.publicURL = servePublicURL
	}

	ag, err := buildAgent(cfg)
	if err != nil {
		return fmt.Errorf("failed to build agent: %w", err)
	}

	server, err := a2a.New(ag,
		a2a.WithHost(cfg.addr()),
		a2a.WithPublicURL(cfg.publicURL),
		a2a.WithVersion(Version),
	)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	codes := make([]string, 0, len(currency.DefaultTable))
	for code := range currency.DefaultTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	baseURL := a2a.BaseURL(cfg.addr(), cfg.publicURL)
	log.Infof("Currency Converter A2A Agent Server")
	log.Infof("Agent card: %s.well-known/agent.json", baseURL)
	log.Infof("A2A endpoint: %s", baseURL)
	log.Infof("Supported currencies: %s", strings.Join(codes, ", "))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-sigCh:
		log.Infof("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Stop(ctx)
	}
}
