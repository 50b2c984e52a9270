package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/SasiVeeramachaneni/currency-converter/agent"
	"github.com/SasiVeeramachaneni/currency-converter/currency"
	"github.com/SasiVeeramachaneni/currency-converter/model/openai"
)

const (
	agentName        = "Currency Converter Agent"
	agentDescription = "An AI-powered agent that converts currencies, provides exchange rates, " +
		"and lists supported currencies. Supports 20 major world currencies."

	defaultModelName = "gpt-4o-mini"
	defaultHost      = "0.0.0.0"
	defaultPort      = "8000"
)

// config is resolved once from the environment; flags override individual
// fields afterwards.
type config struct {
	apiKey    string
	baseURL   string
	modelName string
	host      string
	port      string
	publicURL string
}

func loadConfig() (*config, error) {
	cfg := &config{
		apiKey:    os.Getenv("OPENAI_API_KEY"),
		baseURL:   os.Getenv("OPENAI_BASE_URL"),
		modelName: envOr("OPENAI_MODEL", defaultModelName),
		host:      envOr("A2A_HOST", defaultHost),
		port:      envOr("A2A_PORT", defaultPort),
		publicURL: os.Getenv("PUBLIC_URL"),
	}
	if cfg.apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}
	return cfg, nil
}

func (c *config) addr() string {
	return fmt.Sprintf("%s:%s", c.host, c.port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// buildAgent wires the model, the currency tools, and the instruction into a
// ready-to-run agent.
func buildAgent(cfg *config) (*agent.Agent, error) {
	modelOpts := []openai.Option{openai.WithAPIKey(cfg.apiKey)}
	if cfg.baseURL != "" {
		modelOpts = append(modelOpts, openai.WithBaseURL(cfg.baseURL))
	}
	llm := openai.New(cfg.modelName, modelOpts...)

	return agent.New(agentName,
		agent.WithDescription(agentDescription),
		agent.WithModel(llm),
		agent.WithInstruction(currency.SystemInstruction),
		agent.WithTools(currency.Tools(currency.DefaultTable)),
	)
}
