// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/mviklund/inkyear/models"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// maxToolRounds bounds the model's tool-call loop within one turn.
const maxToolRounds = 10

var ErrNoAPIKey = errors.New("chat: no API key configured")

// Client runs chat turns against the Gemini API with the assignment
// tool surface attached.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a chat client. Returns ErrNoAPIKey when apiKey is
// empty so callers can disable the chat surface instead of failing
// requests later.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Send runs one user turn: prior history plus the new message go to
// the model, tool calls are executed against exec until the model
// stops requesting them or the round limit is hit, and the final text
// reply is returned along with the tool calls made.
func (c *Client) Send(ctx context.Context, history []models.ChatMessage, message string, exec *Executor) (string, []models.ToolCallInfo, error) {
	contents := historyContents(history)
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			SystemPrompt(len(exec.state.Inks), exec.state.Year), genai.RoleUser),
		Tools: []*genai.Tool{
			{FunctionDeclarations: Declarations()},
		},
	}

	var calls []models.ToolCallInfo
	for round := 0; round < maxToolRounds; round++ {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			return "", calls, fmt.Errorf("generate content: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", calls, errors.New("chat: empty response")
		}

		fnCalls := resp.FunctionCalls()
		if len(fnCalls) == 0 {
			return resp.Text(), calls, nil
		}

		contents = append(contents, resp.Candidates[0].Content)

		parts := make([]*genai.Part, 0, len(fnCalls))
		for _, fc := range fnCalls {
			slog.Info("chat tool call", "tool", fc.Name)
			calls = append(calls, models.ToolCallInfo{Name: fc.Name, Args: fc.Args})
			result := exec.Execute(fc.Name, fc.Args)
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       fc.ID,
					Name:     fc.Name,
					Response: result,
				},
			})
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	return "", calls, fmt.Errorf("chat: tool loop exceeded %d rounds", maxToolRounds)
}

// historyContents maps the stored transcript onto wire contents. Stored
// roles are "user"/"assistant"; the API wants genai.Role values.
func historyContents(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}
