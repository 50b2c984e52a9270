package agent

import (
	"github.com/SasiVeeramachaneni/currency-converter/model"
	"github.com/SasiVeeramachaneni/currency-converter/tool"
)

// defaultMaxToolRounds bounds the number of tool-calling rounds per Run. The
// limit guards against a model that keeps requesting tools indefinitely.
const defaultMaxToolRounds = 10

// options holds the configuration for an Agent.
type options struct {
	description   string
	model         model.Model
	instruction   string
	tools         []tool.CallableTool
	genConfig     model.GenerationConfig
	maxToolRounds int
}

var defaultOptions = options{
	maxToolRounds: defaultMaxToolRounds,
}

// Option configures the Agent creation.
type Option func(*options)

// WithModel sets the language model the agent drives. Required.
func WithModel(m model.Model) Option {
	return func(opts *options) {
		opts.model = m
	}
}

// WithDescription sets the human-readable agent description.
func WithDescription(description string) Option {
	return func(opts *options) {
		opts.description = description
	}
}

// WithInstruction sets the system instruction seeded at the start of every
// conversation.
func WithInstruction(instruction string) Option {
	return func(opts *options) {
		opts.instruction = instruction
	}
}

// WithTools sets the callable tools available to the model.
func WithTools(tools []tool.CallableTool) Option {
	return func(opts *options) {
		opts.tools = append(opts.tools, tools...)
	}
}

// WithGenerationConfig sets the generation parameters sent with every model
// call.
func WithGenerationConfig(cfg model.GenerationConfig) Option {
	return func(opts *options) {
		opts.genConfig = cfg
	}
}

// WithMaxToolRounds overrides the tool-calling round limit per Run.
func WithMaxToolRounds(n int) Option {
	return func(opts *options) {
		if n > 0 {
			opts.maxToolRounds = n
		}
	}
}
