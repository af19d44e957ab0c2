package adapter

import "context"

// Button is one inline keyboard button. URL buttons open a link; Data
// buttons send callback data.
type Button struct {
	Text string
	Data string
	URL  string
}

// ReplyMarkup is an inline keyboard layout attached to a message.
type ReplyMarkup struct {
	Buttons [][]Button
}

type SendMessageParams struct {
	ChatID      int64
	Text        string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

type EditMessageParams struct {
	ChatID      int64
	MessageID   int
	Text        string
	ReplyMarkup *ReplyMarkup
}

// BotAdapter is the outbound messaging port. Keep it minimal so other
// layers can implement it.
type BotAdapter interface {
	SendMessage(ctx context.Context, p SendMessageParams) error
	EditMessage(ctx context.Context, p EditMessageParams) error
}
