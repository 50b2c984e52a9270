package a2a

import (
	"fmt"
	"strings"

	a2a "trpc.group/trpc-go/trpc-a2a-go/server"
)

// BaseURL returns the URL the agent advertises: the public URL when one is
// configured, otherwise the listen address, always with a trailing slash.
func BaseURL(host, publicURL string) string {
	url := publicURL
	if url == "" {
		url = fmt.Sprintf("http://%s", host)
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}

// buildAgentCard assembles the card published at the well-known endpoint. An
// explicit card option wins; otherwise the card is built from the agent info
// and the currency skills.
func (s *Server) buildAgentCard() a2a.AgentCard {
	url := BaseURL(s.opts.host, s.opts.publicURL)

	if s.opts.agentCard != nil {
		card := *s.opts.agentCard
		card.URL = url
		return card
	}

	info := s.agent.Info()
	return a2a.AgentCard{
		Name:        info.Name,
		Description: info.Description,
		URL:         url,
		Version:     s.opts.version,
		Capabilities: a2a.AgentCapabilities{
			Streaming:              boolPtr(false),
			PushNotifications:      boolPtr(false),
			StateTransitionHistory: boolPtr(false),
		},
		Skills:             s.opts.skills,
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain"},
	}
}

// DefaultSkills describes the conversion skills the currency agent offers.
func DefaultSkills() []a2a.AgentSkill {
	return []a2a.AgentSkill{
		{
			ID:          "convert-currency",
			Name:        "Currency Conversion",
			Description: strPtr("Convert an amount from one currency to another. Example: 'Convert 100 USD to EUR'"),
			Tags:        []string{"currency", "conversion", "finance", "money"},
			Examples: []string{
				"Convert 100 USD to EUR",
				"How much is 50 GBP in JPY?",
				"Change 1000 INR to USD",
			},
		},
		{
			ID:          "exchange-rate",
			Name:        "Exchange Rate Lookup",
			Description: strPtr("Get the current exchange rate between two currencies. Example: 'What is the exchange rate from USD to EUR?'"),
			Tags:        []string{"currency", "exchange-rate", "finance"},
			Examples: []string{
				"What is the exchange rate from USD to EUR?",
				"EUR to GBP rate",
				"Show me the USD to INR exchange rate",
			},
		},
		{
			ID:          "list-currencies",
			Name:        "List Supported Currencies",
			Description: strPtr("List all supported currencies for conversion."),
			Tags:        []string{"currency", "list", "supported"},
			Examples: []string{
				"What currencies do you support?",
				"List all currencies",
				"Show supported currencies",
			},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
