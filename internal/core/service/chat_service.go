package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/asglabs/mission-control/internal/core/command"
	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
)

const (
	// contextWindow is the maximum number of messages sent upstream as
	// conversation context. The caller is expected to truncate too; this is
	// the server-side bound.
	contextWindow = 20

	// historyWindow caps the persisted per-session conversation history.
	historyWindow = 50

	// defaultCommandDescription fills the description of a command-created
	// entry when no descriptor was given.
	defaultCommandDescription = "Time entry via chat"
)

var systemPreamble = strings.TrimSpace(`
You are Aria — an AI tax advisor embedded in a senior Tax Partner's Mission Control at a regional CPA firm. You serve as a precise, technically fluent tax co-advisor.

Response protocol:
- Lead with the answer, every time.
- Cite IRC sections, Treasury regulations, and ASC standards naturally where relevant; never fabricate an authority.
- Flag deadlines and risk proactively.
- Be concise: 100-300 words for straightforward questions, 300-500 for analysis.
- If you need to make an assumption, state it in one sentence and move on.
- Format responses with markdown bold (**text**) headers for structure.

Focus areas: M&A tax structuring, multistate/SALT, partnership taxation, federal compliance, tax controversy, R&D credits, opportunity zones, COD income, PTET.
`)

type chatService struct {
	parser    *command.Parser
	ledger    ports.LedgerService
	generator ports.Generator
	history   ports.HistoryStore
	logger    zerolog.Logger
	now       func() time.Time
}

// NewChatService returns the ChatService implementation. The parser runs
// first on every user turn; only non-command turns reach the generator.
func NewChatService(
	parser *command.Parser,
	ledger ports.LedgerService,
	generator ports.Generator,
	history ports.HistoryStore,
	logger zerolog.Logger,
) ports.ChatService {
	return &chatService{
		parser:    parser,
		ledger:    ledger,
		generator: generator,
		history:   history,
		logger:    logger,
		now:       time.Now,
	}
}

// StreamTurn relays one conversational turn. Billing commands short-circuit
// to the ledger and a locally synthesized confirmation; everything else is
// forwarded to the upstream generator and re-emitted fragment by fragment.
func (s *chatService) StreamTurn(ctx context.Context, sessionID string, messages []domain.ConversationMessage, emit func(fragment string) error) (ports.TurnResult, error) {
	var result ports.TurnResult

	if len(messages) == 0 {
		return result, errors.New("stream turn: empty conversation")
	}

	last := messages[len(messages)-1]
	if last.Role == domain.RoleUser {
		if cmd, ok := s.parser.Parse(last.Content); ok {
			result.Intercepted = true
			err := s.interceptCommand(ctx, sessionID, messages, cmd, emit)
			if err == nil {
				result.Fragments = 1
			}
			return result, err
		}
	}

	window := messages
	if len(window) > contextWindow {
		window = window[len(window)-contextWindow:]
	}

	stream, err := s.generator.Stream(ctx, s.buildSystemPrompt(), window)
	if err != nil {
		return result, fmt.Errorf("stream turn: %w", err)
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		fragment, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("stream turn: reading upstream: %w", err)
		}
		if fragment == "" {
			continue
		}
		reply.WriteString(fragment)
		if err := emit(fragment); err != nil {
			return result, fmt.Errorf("stream turn: forwarding fragment: %w", err)
		}
		result.Fragments++
	}

	s.saveHistory(ctx, sessionID, messages, reply.String())
	return result, nil
}

// interceptCommand appends the parsed entry and streams back a confirmation
// without touching the upstream generator. Confirmations never fail once a
// command has matched: the ledger swallows persistence errors by contract.
func (s *chatService) interceptCommand(ctx context.Context, sessionID string, messages []domain.ConversationMessage, cmd *command.Command, emit func(string) error) error {
	description := cmd.Description
	if description == "" {
		description = defaultCommandDescription
	}

	entry, err := s.ledger.Append(ctx, ports.AppendEntryInput{
		ClientID:    cmd.ClientID,
		Date:        s.now().Format("2006-01-02"),
		Hours:       cmd.Hours,
		Description: description,
		Status:      domain.StatusUnbilled,
	})
	if err != nil {
		return fmt.Errorf("intercept command: %w", err)
	}

	confirmation := fmt.Sprintf("Got it — logged **%gh** to **%s** as unbilled.", entry.Hours, cmd.ClientName)
	if cmd.Description != "" {
		confirmation += fmt.Sprintf(" Description: %q.", cmd.Description)
	}
	confirmation += " You can review and mark it billed in the Timekeeper page."

	s.logger.Info().
		Str("client_id", cmd.ClientID).
		Float64("hours", cmd.Hours).
		Msg("billing command intercepted")

	if err := emit(confirmation); err != nil {
		return fmt.Errorf("intercept command: forwarding confirmation: %w", err)
	}

	s.saveHistory(ctx, sessionID, messages, confirmation)
	return nil
}

// History returns the persisted conversation window for a session.
func (s *chatService) History(ctx context.Context, sessionID string) ([]domain.ConversationMessage, error) {
	return s.history.Load(ctx, sessionID)
}

// ClearHistory drops the persisted conversation window.
func (s *chatService) ClearHistory(ctx context.Context, sessionID string) error {
	return s.history.Clear(ctx, sessionID)
}

// saveHistory persists the conversation including the assistant reply,
// dropping empty assistant messages and capping at historyWindow. History is
// best-effort the same way ledger persistence is.
func (s *chatService) saveHistory(ctx context.Context, sessionID string, messages []domain.ConversationMessage, reply string) {
	full := make([]domain.ConversationMessage, 0, len(messages)+1)
	for _, m := range messages {
		if m.Role == domain.RoleAssistant && strings.TrimSpace(m.Content) == "" {
			continue
		}
		full = append(full, m)
	}
	if strings.TrimSpace(reply) != "" {
		full = append(full, domain.ConversationMessage{Role: domain.RoleAssistant, Content: reply})
	}
	if len(full) > historyWindow {
		full = full[len(full)-historyWindow:]
	}

	if err := s.history.Save(ctx, sessionID, full); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("history save failed")
	}
}

// buildSystemPrompt stamps the static preamble with the current date in
// Eastern time, assembled once per request.
func (s *chatService) buildSystemPrompt() string {
	now := s.now()
	if loc, err := time.LoadLocation("America/New_York"); err == nil {
		now = now.In(loc)
	}
	return fmt.Sprintf("%s\n\nToday is %s (Eastern Time).", systemPreamble, now.Format("Monday, January 2, 2006"))
}
