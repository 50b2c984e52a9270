// Package model provides the conversation data types and the interface to
// chat-completion style language models.
package model

import "context"

// Info contains basic information about a model.
type Info struct {
	// Name is the model name, e.g. the deployment or checkpoint identifier.
	Name string
}

// Model is the interface that all language model implementations must satisfy.
//
// GenerateContent performs one blocking chat-completion round trip. The
// request carries the full conversation plus the available tool declarations;
// the response carries the assistant message, including any tool-call
// requests the model decided to make. Streaming delivery is out of scope.
type Model interface {
	// Info returns basic information about the model.
	Info() Info

	// GenerateContent submits the request and returns the model's reply.
	// A non-nil error indicates the call itself failed (network, auth,
	// malformed response) and is not recoverable by the caller's loop.
	GenerateContent(ctx context.Context, request *Request) (*Response, error)
}
