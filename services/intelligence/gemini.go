package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"brightpath/models"
)

const systemPrompt = `You are the scheduling assistant for a solo consulting practice.
Answer questions about services briefly and help visitors book an introductory
call. Appointments are one hour, weekdays 9:00 AM to 5:00 PM. When a visitor
wants to book, collect their name, email, preferred date and time, and what
they want to discuss.`

// GeminiChat implements ChatService against the Gemini API.
type GeminiChat struct {
	model *genai.GenerativeModel
}

func NewGeminiChat(ctx context.Context, apiKey string) (*GeminiChat, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiChat{model: model}, nil
}

func (g *GeminiChat) Reply(ctx context.Context, messages []models.ChatMessage) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(messages)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func buildPrompt(messages []models.ChatMessage) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, msg := range messages {
		label := "Visitor"
		if msg.Role == "assistant" {
			label = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, msg.Content)
	}
	sb.WriteString("Assistant:")
	return sb.String()
}
