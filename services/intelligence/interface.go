package intelligence

import (
	"context"

	"brightpath/models"
)

// ChatService produces an assistant reply for a visitor transcript. The
// transcript arrives in full with every call; no conversation state is kept
// server-side.
type ChatService interface {
	Reply(ctx context.Context, messages []models.ChatMessage) (string, error)
}
