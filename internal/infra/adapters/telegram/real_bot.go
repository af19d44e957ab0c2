package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-blackout-bot/internal/config"
	"telegram-blackout-bot/internal/domain/ports/adapter"
	"telegram-blackout-bot/internal/usecase"
)

// RealBotAdapter drives tgbotapi: it consumes updates from long polling
// or the webhook feed, handles them on a worker pool and sends/edits
// messages. It implements adapter.BotAdapter.
type RealBotAdapter struct {
	bot *tgbotapi.BotAPI
	cfg *config.Config
	nav *usecase.NavigationUC
	tr  translator
	log *zerolog.Logger

	rateLimiter RateLimiter

	updates chan tgbotapi.Update
	cancel  context.CancelFunc
}

// translator is the small i18n surface the adapter needs.
type translator interface {
	T(key string, args ...interface{}) string
}

// RateLimiter throttles per-user interactions; nil disables throttling.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

var _ adapter.BotAdapter = (*RealBotAdapter)(nil)

func NewRealBotAdapter(cfg *config.Config, nav *usecase.NavigationUC, tr translator, rateLimiter RateLimiter, log *zerolog.Logger) (*RealBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if nav == nil {
		return nil, errors.New("navigation usecase is nil")
	}
	if tr == nil {
		return nil, errors.New("translator is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, err
	}

	return &RealBotAdapter{
		bot:         bot,
		cfg:         cfg,
		nav:         nav,
		tr:          tr,
		log:         log,
		rateLimiter: rateLimiter,
		updates:     make(chan tgbotapi.Update, 100),
	}, nil
}

// Run starts the worker pool and the configured update source. It blocks
// until ctx is canceled.
func (r *RealBotAdapter) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Bot.Workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-r.updates:
					if err := r.handleUpdate(ctx, up); err != nil {
						r.log.Error().Err(err).Int("worker", id).Msg("update handling failed")
					}
				}
			}
		}(i)
	}

	switch r.cfg.Bot.Mode {
	case "webhook":
		if err := r.registerWebhook(); err != nil {
			cancel()
			wg.Wait()
			return err
		}
		<-ctx.Done()
	default:
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		polled := r.bot.GetUpdatesChan(u)

	poll:
		for {
			select {
			case <-ctx.Done():
				break poll
			case up := <-polled:
				select {
				case r.updates <- up:
				case <-ctx.Done():
					break poll
				}
			}
		}
		r.bot.StopReceivingUpdates()
	}

	wg.Wait()
	return ctx.Err()
}

// Stop cancels the update loop.
func (r *RealBotAdapter) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

// HandleWebhookUpdate feeds one transport-delivered update into the
// worker pool. Non-blocking so a full queue cannot stall the HTTP
// handler; overflow is dropped and logged.
func (r *RealBotAdapter) HandleWebhookUpdate(up tgbotapi.Update) {
	select {
	case r.updates <- up:
	default:
		r.log.Warn().Int("update_id", up.UpdateID).Msg("update queue full, dropping update")
	}
}

func (r *RealBotAdapter) registerWebhook() error {
	url := strings.TrimRight(r.cfg.Server.WebhookBaseURL, "/") + "/webhook/" + r.cfg.Bot.Token
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	if _, err := r.bot.Request(wh); err != nil {
		return err
	}
	r.log.Info().Str("base", r.cfg.Server.WebhookBaseURL).Msg("webhook registered")
	return nil
}

// SendMessage implements the adapter port.
func (r *RealBotAdapter) SendMessage(ctx context.Context, p adapter.SendMessageParams) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(p.ChatID, p.Text)
	if p.ParseMode != "" {
		msg.ParseMode = p.ParseMode
	}
	if p.ReplyMarkup != nil {
		msg.ReplyMarkup = buildMarkup(*p.ReplyMarkup)
	}
	_, err := r.bot.Send(msg)
	return err
}

// EditMessage implements the adapter port.
func (r *RealBotAdapter) EditMessage(ctx context.Context, p adapter.EditMessageParams) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if p.ReplyMarkup == nil {
		edit := tgbotapi.NewEditMessageText(p.ChatID, p.MessageID, p.Text)
		_, err := r.bot.Send(edit)
		return err
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(p.ChatID, p.MessageID, p.Text, buildMarkup(*p.ReplyMarkup))
	_, err := r.bot.Send(edit)
	return err
}

// buildMarkup converts the port-level keyboard into tgbotapi rows.
// URL buttons open a link, Data buttons send callback data, and an empty
// button falls back to its label as callback data.
func buildMarkup(m adapter.ReplyMarkup) tgbotapi.InlineKeyboardMarkup {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(m.Buttons))
	for _, row := range m.Buttons {
		if len(row) == 0 {
			continue
		}
		kbRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			label := strings.TrimSpace(btn.Text)
			if label == "" {
				label = "•"
			}
			var kb tgbotapi.InlineKeyboardButton
			switch {
			case btn.URL != "":
				kb = tgbotapi.NewInlineKeyboardButtonURL(label, btn.URL)
			case btn.Data != "":
				kb = tgbotapi.NewInlineKeyboardButtonData(label, btn.Data)
			default:
				kb = tgbotapi.NewInlineKeyboardButtonData(label, label)
			}
			kbRow = append(kbRow, kb)
		}
		kbRows = append(kbRows, kbRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...)
}
