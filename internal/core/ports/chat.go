package ports

import (
	"context"

	"github.com/asglabs/mission-control/internal/core/domain"
)

// TextStream yields incremental text fragments from an in-flight upstream
// generation. Next returns io.EOF after the final fragment; Close must be
// called even when iteration ends early.
type TextStream interface {
	Next() (string, error)
	Close() error
}

// Generator opens streaming completions against the upstream text
// generation service.
type Generator interface {
	Stream(ctx context.Context, system string, messages []domain.ConversationMessage) (TextStream, error)
}

// HistoryStore persists the bounded per-session conversation window.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.ConversationMessage, error)
	Save(ctx context.Context, sessionID string, messages []domain.ConversationMessage) error
	Clear(ctx context.Context, sessionID string) error
}

// TurnResult summarizes how a chat turn was handled, for observability at
// the transport layer.
type TurnResult struct {
	// Intercepted is true when the turn matched the billing grammar and
	// was answered locally without an upstream call.
	Intercepted bool
	// Fragments is the number of text fragments passed to emit.
	Fragments int
}

// ChatService relays one conversational turn: either a billing-command
// intercept answered locally, or a single streaming upstream call whose
// fragments are forwarded through emit in arrival order.
type ChatService interface {
	// StreamTurn invokes emit once per text fragment. An error returned
	// before the first emit call means nothing has been sent to the client
	// yet and may still be reported as a synchronous failure; an error
	// after that point can only terminate the stream.
	StreamTurn(ctx context.Context, sessionID string, messages []domain.ConversationMessage, emit func(fragment string) error) (TurnResult, error)

	// History returns the persisted conversation window for a session.
	History(ctx context.Context, sessionID string) ([]domain.ConversationMessage, error)

	// ClearHistory drops the persisted conversation window.
	ClearHistory(ctx context.Context, sessionID string) error
}
