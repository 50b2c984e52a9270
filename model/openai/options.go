package openai

import (
	openaiopt "github.com/openai/openai-go/option"
)

// options contains configuration options for creating a Model.
type options struct {
	// API key for the OpenAI client.
	APIKey string
	// Base URL for the OpenAI client. It is optional for OpenAI-compatible APIs.
	BaseURL string
	// Options passed through to the OpenAI client.
	OpenAIOptions []openaiopt.RequestOption
	// Extra fields to be added to the HTTP request body.
	ExtraFields map[string]any
}

var defaultOptions = options{}

// Option configures the Model creation.
type Option func(*options)

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(opts *options) {
		opts.APIKey = key
	}
}

// WithBaseURL sets the base URL, e.g. an Azure OpenAI endpoint.
func WithBaseURL(url string) Option {
	return func(opts *options) {
		opts.BaseURL = url
	}
}

// WithOpenAIOptions appends raw OpenAI client request options.
func WithOpenAIOptions(o ...openaiopt.RequestOption) Option {
	return func(opts *options) {
		opts.OpenAIOptions = append(opts.OpenAIOptions, o...)
	}
}

// WithExtraFields sets extra fields to be merged into every request body.
func WithExtraFields(fields map[string]any) Option {
	return func(opts *options) {
		opts.ExtraFields = fields
	}
}
