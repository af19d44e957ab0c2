package telegram

import (
	"context"
	"log"
	"time"

	"telegram-blackout-bot/internal/domain/ports/adapter"
)

var _ adapter.BotAdapter = (*NoopBotAdapter)(nil)

// NoopBotAdapter implements adapter.BotAdapter for local/dev testing.
// It logs messages instead of sending real Telegram messages.
type NoopBotAdapter struct{}

func NewNoopBotAdapter() *NoopBotAdapter {
	return &NoopBotAdapter{}
}

func (b *NoopBotAdapter) SendMessage(ctx context.Context, p adapter.SendMessageParams) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[noop-telegram] To chat %d: %s [markup: %v]\n", p.ChatID, p.Text, p.ReplyMarkup)
	return nil
}

func (b *NoopBotAdapter) EditMessage(ctx context.Context, p adapter.EditMessageParams) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[noop-telegram] Edit chat %d message %d: %s [markup: %v]\n", p.ChatID, p.MessageID, p.Text, p.ReplyMarkup)
	return nil
}
