package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SasiVeeramachaneni/currency-converter/currency"
	"github.com/SasiVeeramachaneni/currency-converter/model"
)

// scriptedModel replays a fixed sequence of responses and records every
// request it receives.
type scriptedModel struct {
	responses []*model.Response
	err       error
	requests  []*model.Request
}

func (s *scriptedModel) Info() model.Info {
	return model.Info{Name: "scripted"}
}

func (s *scriptedModel) GenerateContent(_ context.Context, request *model.Request) (*model.Response, error) {
	// Snapshot the conversation: the loop appends to its own slice.
	msgs := make([]model.Message, len(request.Messages))
	copy(msgs, request.Messages)
	s.requests = append(s.requests, &model.Request{
		Messages:         msgs,
		GenerationConfig: request.GenerationConfig,
		Tools:            request.Tools,
	})

	if s.err != nil {
		return nil, s.err
	}
	if len(s.requests) > len(s.responses) {
		return s.responses[len(s.responses)-1], nil
	}
	return s.responses[len(s.requests)-1], nil
}

func textResponse(content string) *model.Response {
	return &model.Response{
		Choices: []model.Choice{
			{Message: model.NewAssistantMessage(content)},
		},
	}
}

func toolCallResponse(calls ...model.ToolCall) *model.Response {
	return &model.Response{
		Choices: []model.Choice{
			{Message: model.Message{Role: model.RoleAssistant, ToolCalls: calls}},
		},
	}
}

func newTestAgent(t *testing.T, m model.Model, opts ...Option) *Agent {
	t.Helper()
	base := []Option{
		WithModel(m),
		WithInstruction("You are a helpful currency conversion assistant."),
		WithTools(currency.Tools(currency.DefaultTable)),
	}
	a, err := New("currency-agent", append(base, opts...)...)
	require.NoError(t, err)
	return a
}

func TestNewRequiresModel(t *testing.T) {
	_, err := New("no-model")
	assert.Error(t, err)
}

func TestNewRejectsDuplicateToolNames(t *testing.T) {
	tools := currency.Tools(currency.DefaultTable)
	doubled := append(tools, tools[0])
	_, err := New("dup",
		WithModel(&scriptedModel{responses: []*model.Response{textResponse("hi")}}),
		WithTools(doubled),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tool name")
}

func TestRunTerminatesWithoutToolCalls(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{textResponse("Hello! Ask me about currencies.")}}
	a := newTestAgent(t, m)

	got, err := a.Run(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello! Ask me about currencies.", got)
	// Exactly one round.
	require.Len(t, m.requests, 1)

	// Conversation seeded with system instruction then user message.
	msgs := m.requests[0].Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleSystem, msgs[0].Role)
	assert.Equal(t, model.RoleUser, msgs[1].Role)
	assert.Equal(t, "hi", msgs[1].Content)

	// All three tools declared with automatic selection.
	assert.Len(t, m.requests[0].Tools, 3)
}

func TestRunDispatchesSingleToolCall(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{
		toolCallResponse(model.ToolCall{
			ID:   "call_abc",
			Type: "function",
			Function: model.FunctionDefinitionParam{
				Name:      currency.ToolConvertCurrency,
				Arguments: []byte(`{"amount":100,"from_currency":"USD","to_currency":"EUR"}`),
			},
		}),
		textResponse("100 USD is 92.00 EUR at a rate of 0.92."),
	}}
	a := newTestAgent(t, m)

	got, err := a.Run(context.Background(), "convert 100 usd to eur")
	require.NoError(t, err)
	assert.Equal(t, "100 USD is 92.00 EUR at a rate of 0.92.", got)
	require.Len(t, m.requests, 2)

	// Second round must carry: assistant tool-call message, then the tool
	// result correlated by call ID.
	msgs := m.requests[1].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, model.RoleAssistant, msgs[2].Role)
	require.Len(t, msgs[2].ToolCalls, 1)
	assert.Equal(t, "call_abc", msgs[2].ToolCalls[0].ID)

	assert.Equal(t, model.RoleTool, msgs[3].Role)
	assert.Equal(t, "call_abc", msgs[3].ToolID)
	assert.Equal(t, currency.ToolConvertCurrency, msgs[3].ToolName)
	assert.Contains(t, msgs[3].Content, `"converted_amount":92`)
	assert.Contains(t, msgs[3].Content, `"exchange_rate":0.92`)
}

func TestRunUnknownToolContinues(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{
		toolCallResponse(model.ToolCall{
			ID:   "call_1",
			Type: "function",
			Function: model.FunctionDefinitionParam{
				Name:      "delete_everything",
				Arguments: []byte(`{}`),
			},
		}),
		textResponse("I cannot do that."),
	}}
	a := newTestAgent(t, m)

	got, err := a.Run(context.Background(), "delete everything")
	require.NoError(t, err)
	assert.Equal(t, "I cannot do that.", got)

	require.Len(t, m.requests, 2)
	toolMsg := m.requests[1].Messages[3]
	assert.Equal(t, model.RoleTool, toolMsg.Role)
	assert.JSONEq(t, `{"error": "Unknown function: delete_everything"}`, toolMsg.Content)
}

func TestRunMalformedArgumentsContinue(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{
		toolCallResponse(model.ToolCall{
			ID:   "call_bad",
			Type: "function",
			Function: model.FunctionDefinitionParam{
				Name:      currency.ToolGetExchangeRate,
				Arguments: []byte(`{"from_currency": `),
			},
		}),
		textResponse("Sorry, I could not parse that."),
	}}
	a := newTestAgent(t, m)

	got, err := a.Run(context.Background(), "rate?")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I could not parse that.", got)

	toolMsg := m.requests[1].Messages[3]
	assert.Contains(t, toolMsg.Content, `"error"`)
}

func TestRunUnsupportedCurrencyReportedAsToolResult(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{
		toolCallResponse(model.ToolCall{
			ID:   "call_xyz",
			Type: "function",
			Function: model.FunctionDefinitionParam{
				Name:      currency.ToolGetExchangeRate,
				Arguments: []byte(`{"from_currency":"XYZ","to_currency":"USD"}`),
			},
		}),
		textResponse("XYZ is not supported; try list_supported_currencies."),
	}}
	a := newTestAgent(t, m)

	_, err := a.Run(context.Background(), "rate xyz to usd")
	require.NoError(t, err)

	toolMsg := m.requests[1].Messages[3]
	assert.JSONEq(t, `{"error": "Currency 'XYZ' not supported"}`, toolMsg.Content)
}

func TestRunMultipleToolCallsInOneRound(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{
		toolCallResponse(
			model.ToolCall{
				ID:   "call_1",
				Type: "function",
				Function: model.FunctionDefinitionParam{
					Name:      currency.ToolGetExchangeRate,
					Arguments: []byte(`{"from_currency":"USD","to_currency":"EUR"}`),
				},
			},
			model.ToolCall{
				ID:   "call_2",
				Type: "function",
				Function: model.FunctionDefinitionParam{
					Name:      currency.ToolListSupportedCurrencies,
					Arguments: []byte(`{}`),
				},
			},
		),
		textResponse("done"),
	}}
	a := newTestAgent(t, m)

	_, err := a.Run(context.Background(), "rate and list")
	require.NoError(t, err)

	msgs := m.requests[1].Messages
	// system, user, assistant, tool result x2.
	require.Len(t, msgs, 5)
	assert.Equal(t, "call_1", msgs[3].ToolID)
	assert.Equal(t, "call_2", msgs[4].ToolID)
	assert.Contains(t, msgs[4].Content, `"base_currency":"USD"`)
}

func TestRunMaxToolRounds(t *testing.T) {
	// The model never stops asking for tools.
	m := &scriptedModel{responses: []*model.Response{
		toolCallResponse(model.ToolCall{
			ID:   "call_loop",
			Type: "function",
			Function: model.FunctionDefinitionParam{
				Name:      currency.ToolListSupportedCurrencies,
				Arguments: []byte(`{}`),
			},
		}),
	}}
	a := newTestAgent(t, m, WithMaxToolRounds(3))

	_, err := a.Run(context.Background(), "loop forever")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxToolRounds)
	// 3 tool rounds plus the final model call that exceeded the limit.
	assert.Len(t, m.requests, 4)
}

func TestRunModelErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	m := &scriptedModel{err: wantErr}
	a := newTestAgent(t, m)

	_, err := a.Run(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	// No retry.
	assert.Len(t, m.requests, 1)
}

func TestRunWithHistoryReplaysTurns(t *testing.T) {
	m := &scriptedModel{responses: []*model.Response{textResponse("as I said, 92 EUR")}}
	a := newTestAgent(t, m)

	history := []model.Message{
		model.NewUserMessage("convert 100 usd to eur"),
		model.NewAssistantMessage("100 USD is 92.00 EUR."),
	}
	_, err := a.RunWithHistory(context.Background(), history, "what was that again?")
	require.NoError(t, err)

	msgs := m.requests[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, model.RoleSystem, msgs[0].Role)
	assert.Equal(t, "convert 100 usd to eur", msgs[1].Content)
	assert.Equal(t, "100 USD is 92.00 EUR.", msgs[2].Content)
	assert.Equal(t, "what was that again?", msgs[3].Content)
}
