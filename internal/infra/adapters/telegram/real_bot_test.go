package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-blackout-bot/internal/domain/ports/adapter"
	"telegram-blackout-bot/internal/usecase"
)

func strPtr(s string) *string { return &s }

func TestBuildMarkup(t *testing.T) {
	t.Parallel()

	m := adapter.ReplyMarkup{
		Buttons: [][]adapter.Button{
			{{Text: "1.1", Data: "group:kyiv:1.1"}, {Text: "1.2", Data: "group:kyiv:1.2"}},
			{}, // empty rows are dropped
			{{Text: "Site", URL: "https://example.com"}},
			{{Text: "plain"}},
		},
	}

	kb := buildMarkup(m)
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(kb.InlineKeyboard))
	}
	if got := kb.InlineKeyboard[0][0]; got.CallbackData == nil || *got.CallbackData != "group:kyiv:1.1" {
		t.Errorf("data button converted wrong: %+v", got)
	}
	if got := kb.InlineKeyboard[1][0]; got.URL == nil || *got.URL != "https://example.com" {
		t.Errorf("url button converted wrong: %+v", got)
	}
	// missing data falls back to the label
	if got := kb.InlineKeyboard[2][0]; got.CallbackData == nil || *got.CallbackData != "plain" {
		t.Errorf("fallback button converted wrong: %+v", got)
	}
}

func TestSameContent(t *testing.T) {
	t.Parallel()

	view := usecase.View{
		Text: "schedule",
		Markup: adapter.ReplyMarkup{
			Buttons: [][]adapter.Button{{{Text: "🔄 Refresh", Data: "group:kyiv:3.1"}}},
		},
	}
	msg := &tgbotapi.Message{
		Text: "schedule",
		ReplyMarkup: &tgbotapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{
				{{Text: "🔄 Refresh", CallbackData: strPtr("group:kyiv:3.1")}},
			},
		},
	}

	if !sameContent(msg, view) {
		t.Fatalf("identical content must be detected")
	}

	msg.Text = "older schedule"
	if sameContent(msg, view) {
		t.Fatalf("changed text must force an edit")
	}

	msg.Text = "schedule"
	msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData = strPtr("group:kyiv:3.2")
	if sameContent(msg, view) {
		t.Fatalf("changed callback data must force an edit")
	}
}

func TestSameContent_NoKeyboard(t *testing.T) {
	t.Parallel()

	view := usecase.View{Text: "hello"}
	msg := &tgbotapi.Message{Text: "hello"}
	if !sameContent(msg, view) {
		t.Fatalf("text-only messages with equal text must match")
	}

	view.Markup.Buttons = [][]adapter.Button{{{Text: "x", Data: "root"}}}
	if sameContent(msg, view) {
		t.Fatalf("adding a keyboard must force an edit")
	}
}
