package a2a

import (
	a2a "trpc.group/trpc-go/trpc-a2a-go/server"
)

type options struct {
	host         string
	publicURL    string
	version      string
	skills       []a2a.AgentSkill
	agentCard    *a2a.AgentCard
	extraOptions []a2a.Option
}

// Option is a function that configures a Server.
type Option func(*options)

var defaultOptions = options{
	host:    "0.0.0.0:8000",
	version: "1.0.0",
	skills:  DefaultSkills(),
}

// WithHost sets the listen address.
func WithHost(host string) Option {
	return func(opts *options) {
		opts.host = host
	}
}

// WithPublicURL sets the externally reachable URL advertised on the agent
// card. When unset the card points at the listen address.
func WithPublicURL(url string) Option {
	return func(opts *options) {
		opts.publicURL = url
	}
}

// WithVersion sets the agent card version.
func WithVersion(version string) Option {
	return func(opts *options) {
		opts.version = version
	}
}

// WithSkills replaces the skills advertised on the agent card.
func WithSkills(skills []a2a.AgentSkill) Option {
	return func(opts *options) {
		opts.skills = skills
	}
}

// WithAgentCard replaces the generated agent card entirely. The URL is still
// rewritten to match the server address.
func WithAgentCard(card a2a.AgentCard) Option {
	return func(opts *options) {
		opts.agentCard = &card
	}
}

// WithExtraA2AOptions passes additional options to the underlying protocol
// server.
func WithExtraA2AOptions(extra ...a2a.Option) Option {
	return func(opts *options) {
		opts.extraOptions = append(opts.extraOptions, extra...)
	}
}
