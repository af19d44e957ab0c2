package telegram

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"telegram-blackout-bot/internal/domain/ports/adapter"
	"telegram-blackout-bot/internal/infra/logging"
	"telegram-blackout-bot/internal/infra/metrics"
	red "telegram-blackout-bot/internal/infra/redis"
	"telegram-blackout-bot/internal/usecase"
)

// handleUpdate processes a single Telegram update. A handler error is
// logged by the worker loop; it never crashes the loop or affects other
// in-flight updates.
func (r *RealBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	ctx = logging.WithTraceID(ctx, uuid.NewString())

	if update.CallbackQuery != nil {
		return r.handleQuery(ctx, update.CallbackQuery)
	}

	if update.Message == nil || update.Message.From == nil {
		return nil
	}
	ctx = logging.WithTgID(ctx, update.Message.From.ID)
	chatID := update.Message.Chat.ID

	if allowed := r.allow(ctx, update.Message.From.ID, "message"); !allowed {
		metrics.IncUpdate("message", "rate_limited")
		return nil
	}

	if update.Message.IsCommand() && update.Message.Command() == "start" {
		view := r.nav.RootView()
		err := r.SendMessage(ctx, adapter.SendMessageParams{
			ChatID:      chatID,
			Text:        r.tr.T("welcome") + "\n" + view.Text,
			ReplyMarkup: &view.Markup,
		})
		if err != nil {
			metrics.IncUpdate("command", "error")
			return err
		}
		metrics.IncUpdate("command", "ok")
		return nil
	}

	// Anything else gets a pointer back to /start.
	metrics.IncUpdate("message", "ok")
	return r.SendMessage(ctx, adapter.SendMessageParams{ChatID: chatID, Text: r.tr.T("hint_start")})
}

func (r *RealBotAdapter) handleQuery(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query == nil || query.From == nil {
		return errors.New("invalid callback query")
	}
	ctx = logging.WithTgID(ctx, query.From.ID)

	// Answer first so the button spinner stops no matter how long the
	// fetch takes.
	if _, err := r.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logging.With(ctx, r.log).Warn().Err(err).Msg("callback ack failed")
	}

	var chatID int64
	if query.Message != nil && query.Message.Chat != nil {
		chatID = query.Message.Chat.ID
	} else {
		chatID = query.From.ID
	}
	if chatID == 0 {
		return nil
	}

	if allowed := r.allow(ctx, query.From.ID, "callback"); !allowed {
		metrics.IncUpdate("callback", "rate_limited")
		return nil
	}

	in, err := usecase.ParseInteraction(query.Data)
	if err != nil {
		// Malformed callback data is dropped, never fatal.
		logging.With(ctx, r.log).Warn().Err(err).Msg("dropping malformed callback")
		metrics.IncUpdate("callback", "bad_data")
		return nil
	}

	view := r.nav.Handle(ctx, in)

	if query.Message == nil {
		err = r.SendMessage(ctx, adapter.SendMessageParams{
			ChatID:      chatID,
			Text:        view.Text,
			ReplyMarkup: &view.Markup,
		})
	} else {
		err = r.editInPlace(ctx, chatID, query.Message, view)
	}
	if err != nil {
		metrics.IncUpdate("callback", "error")
		return err
	}
	metrics.IncUpdate("callback", "ok")
	return nil
}

// editInPlace edits the originating message so navigation reuses one
// message instead of posting new ones. When the rendered view equals the
// message's current content (a refresh that changed nothing) the edit is
// skipped entirely rather than performed and failed.
func (r *RealBotAdapter) editInPlace(ctx context.Context, chatID int64, msg *tgbotapi.Message, view usecase.View) error {
	if sameContent(msg, view) {
		logging.With(ctx, r.log).Debug().Msg("edit skipped, content unchanged")
		metrics.IncEditSkipped()
		return nil
	}
	return r.EditMessage(ctx, adapter.EditMessageParams{
		ChatID:      chatID,
		MessageID:   msg.MessageID,
		Text:        view.Text,
		ReplyMarkup: &view.Markup,
	})
}

// sameContent reports whether the message already shows the view's text
// and keyboard.
func sameContent(msg *tgbotapi.Message, view usecase.View) bool {
	if msg.Text != view.Text {
		return false
	}
	want := buildMarkup(view.Markup)
	have := msg.ReplyMarkup
	if have == nil {
		return len(want.InlineKeyboard) == 0
	}
	if len(have.InlineKeyboard) != len(want.InlineKeyboard) {
		return false
	}
	for i, row := range want.InlineKeyboard {
		if len(have.InlineKeyboard[i]) != len(row) {
			return false
		}
		for j, btn := range row {
			other := have.InlineKeyboard[i][j]
			if other.Text != btn.Text {
				return false
			}
			if !strPtrEq(other.CallbackData, btn.CallbackData) || !strPtrEq(other.URL, btn.URL) {
				return false
			}
		}
	}
	return true
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// allow applies the optional per-user rate limit. Limiter errors fail
// open: a broken redis must not take the bot down.
func (r *RealBotAdapter) allow(ctx context.Context, userID int64, action string) bool {
	if r.rateLimiter == nil {
		return true
	}
	allowed, err := r.rateLimiter.Allow(ctx, red.UserActionKey(userID, action), 30, time.Minute)
	if err != nil {
		logging.With(ctx, r.log).Warn().Err(err).Msg("rate limiter error")
		return true
	}
	return allowed
}
