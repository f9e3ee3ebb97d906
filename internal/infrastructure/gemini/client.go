package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
	"google.golang.org/api/option"
)

const modelName = "gemini-2.0-flash-exp"

// Fallback replies for degenerate model responses. Terminal, reported
// conditions, not crashes.
const (
	fallbackNoCandidates  = "I'm having trouble connecting right now."
	fallbackProcessed     = "I processed that request."
	fallbackNotUnderstood = "I didn't understand that."
)

// Client talks to Gemini and runs the per-turn tool-calling loop.
type Client struct {
	client     *genai.Client
	model      *genai.GenerativeModel
	dispatcher repository.ToolDispatcher
	retry      *RetryPolicy
	missingKey bool
}

// NewClient creates the Gemini client. An empty apiKey is absent-safe: the
// client is still constructed and every SendMessage reports
// ErrAINotConfigured without touching the network.
func NewClient(ctx context.Context, apiKey string, dispatcher repository.ToolDispatcher, retry *RetryPolicy) (*Client, error) {
	if retry == nil {
		retry = DefaultRetryPolicy()
	}
	if apiKey == "" {
		return &Client{dispatcher: dispatcher, retry: retry, missingKey: true}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(2048)
	model.Tools = toolDeclarations()
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Client{
		client:     client,
		model:      model,
		dispatcher: dispatcher,
		retry:      retry,
	}, nil
}

// SendMessage runs one user turn: first generation over the full history,
// at most one dispatched tool call, then the follow-up generation carrying
// the tool result. A model that requests another tool call in the follow-up
// is not serviced further in the same turn.
func (c *Client) SendMessage(ctx context.Context, history []entity.ChatMessage, userText string) (string, error) {
	if c.missingKey {
		return "", repository.ErrAINotConfigured
	}

	cs := c.model.StartChat()
	cs.History = toContents(history)

	resp, err := c.generate(ctx, cs, genai.Text(userText))
	if err != nil {
		return "", err
	}

	first, ok := firstPart(resp)
	if !ok {
		return fallbackNoCandidates, nil
	}

	if fc, isCall := first.(genai.FunctionCall); isCall {
		result := c.executeTool(ctx, fc)

		followUp, err := c.generate(ctx, cs, genai.FunctionResponse{
			Name:     fc.Name,
			Response: map[string]any{"result": result.Plain()},
		})
		if err != nil {
			return "", err
		}
		if text := responseText(followUp); text != "" {
			return text, nil
		}
		return fallbackProcessed, nil
	}

	if text := responseText(resp); text != "" {
		return text, nil
	}
	return fallbackNotUnderstood, nil
}

// executeTool parses and dispatches one requested tool call. The dispatcher
// contract guarantees a well-formed result either way.
func (c *Client) executeTool(ctx context.Context, fc genai.FunctionCall) entity.ToolResult {
	log.Printf("🔧 Executing tool: %s %v", fc.Name, fc.Args)

	call, err := entity.ParseToolCall(fc.Name, fc.Args)
	if err != nil {
		return entity.ToolResult{"error": "Unknown tool"}
	}
	return c.dispatcher.Dispatch(ctx, call)
}

// generate issues one retry-wrapped generation request.
func (c *Client) generate(ctx context.Context, cs *genai.ChatSession, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	err := c.retry.Do(ctx, func() error {
		r, err := cs.SendMessage(ctx, parts...)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	return resp, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// toContents rebuilds the model-visible history. System-role entries (the
// synthetic UI welcome) are never sent.
func toContents(history []entity.ChatMessage) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		if msg.Role == entity.RoleSystem || msg.Content == "" {
			continue
		}
		role := entity.RoleUser
		if msg.Role == entity.RoleModel {
			role = entity.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func firstPart(resp *genai.GenerateContentResponse) (genai.Part, bool) {
	if len(resp.Candidates) == 0 {
		return nil, false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, false
	}
	return content.Parts[0], true
}

// responseText extracts the text of the first candidate; further candidates
// are alternates, not continuations.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
