package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/chatbot"
)

var ErrChatEmpty = errors.New("service: empty chat message")

// maxChatTurns bounds how much history a single completion request carries.
// The client owns the conversation; we just clamp what we forward.
const maxChatTurns = 20

const assistantInstruction = `You are BarakahBot, an assistant for a Malaysian charity platform.
You answer questions about Zakat (Islamic almsgiving), nisab thresholds, the
2.5% rate, and the platform's donation campaigns. Keep answers short and
practical. You are not a mufti: for binding religious rulings, direct the
user to their state Zakat authority. Never give tax or investment advice.`

// ChatService fronts the completion collaborator with a fixed system
// instruction and a history cap.
type ChatService struct {
	Client *chatbot.Client
}

// Reply sends the trimmed history plus the new message and returns the
// assistant's answer.
func (s *ChatService) Reply(ctx context.Context, history []chatbot.Turn, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrChatEmpty
	}

	turns := clampHistory(history)
	turns = append(turns, chatbot.Turn{Role: chatbot.RoleUser, Content: message})

	reply, err := s.Client.Complete(ctx, assistantInstruction, turns)
	if err != nil {
		return "", fmt.Errorf("completing chat: %w", err)
	}
	return reply, nil
}

// clampHistory keeps the most recent turns and drops anything claiming a
// system role; the instruction above is the only system turn we ever send.
func clampHistory(history []chatbot.Turn) []chatbot.Turn {
	turns := make([]chatbot.Turn, 0, len(history))
	for _, t := range history {
		if t.Role == chatbot.RoleUser || t.Role == chatbot.RoleAssistant {
			turns = append(turns, t)
		}
	}
	if len(turns) > maxChatTurns {
		turns = turns[len(turns)-maxChatTurns:]
	}
	return turns
}
