package model

import "time"

// Error type constants for ResponseError.Type field.
const (
	ErrorTypeAPIError = "api_error"
)

// Object type constants for Response.Object field.
const (
	// ObjectTypeChatCompletion is the object type for chat completion responses.
	ObjectTypeChatCompletion = "chat.completion"
)

// Choice represents a single completion choice.
type Choice struct {
	// Index is the index of the choice.
	Index int `json:"index"`

	// Message is the message content.
	Message Message `json:"message,omitempty"`

	// FinishReason is the reason the choice was finished.
	// "stop", "length", "tool_calls", "content_filter", etc.
	FinishReason *string `json:"finish_reason,omitempty"`
}

// Usage represents token usage information.
type Usage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens in the response.
	TotalTokens int `json:"total_tokens"`
}

// ResponseError represents an API-level error in a response.
type ResponseError struct {
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Type is the error classification.
	Type string `json:"type"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return e.Message
}

// Response is the response from the model.
type Response struct {
	// ID is the unique identifier for this response.
	ID string `json:"id"`

	// Object describes the type of object returned (e.g., "chat.completion").
	Object string `json:"object"`

	// Created is the Unix timestamp when the response was created.
	Created int64 `json:"created"`

	// Model is the model used to generate the response.
	Model string `json:"model"`

	// Choices contains the completion choices.
	Choices []Choice `json:"choices"`

	// Usage contains token usage information.
	Usage *Usage `json:"usage,omitempty"`

	// Timestamp when this response was received.
	Timestamp time.Time `json:"timestamp"`
}

// Message returns the first choice's message, or the zero Message if the
// response has no choices.
func (rsp *Response) Message() Message {
	if rsp == nil || len(rsp.Choices) == 0 {
		return Message{}
	}
	return rsp.Choices[0].Message
}

// HasToolCalls reports whether the first choice requests any tool calls.
func (rsp *Response) HasToolCalls() bool {
	return rsp != nil && len(rsp.Choices) > 0 && len(rsp.Choices[0].Message.ToolCalls) > 0
}
