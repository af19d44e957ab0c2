package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"telegram-blackout-bot/internal/config"
)

// UpdateSink receives transport-delivered updates decoded by the webhook
// handler.
type UpdateSink interface {
	HandleWebhookUpdate(up tgbotapi.Update)
}

// Server hosts the webhook endpoint, the uptime probe and /metrics.
type Server struct {
	cfg  *config.Config
	sink UpdateSink
	log  *zerolog.Logger
	srv  *http.Server
}

func NewServer(cfg *config.Config, sink UpdateSink, log *zerolog.Logger) *Server {
	return &Server{cfg: cfg, sink: sink, log: log}
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	// uptime monitoring hits the root path
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "alive")
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	r.Handle("/metrics", promhttp.Handler())

	if s.sink != nil && s.cfg.Bot.Token != "" {
		// The token in the path keeps third parties from posting fake
		// updates; any other path 404s.
		r.Post("/webhook/"+s.cfg.Bot.Token, s.handleWebhook)
	}
	return r
}

func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.routes(),
	}
	s.log.Info().Int("port", s.cfg.Server.Port).Str("mode", s.cfg.Bot.Mode).Msg("http server listening")
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var up tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		s.log.Warn().Err(err).Msg("webhook: malformed update payload")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.sink.HandleWebhookUpdate(up)
	w.WriteHeader(http.StatusOK)
}
