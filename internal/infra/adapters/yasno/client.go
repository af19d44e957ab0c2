package yasno

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"telegram-blackout-bot/internal/domain"
	"telegram-blackout-bot/internal/domain/model"
	"telegram-blackout-bot/internal/domain/ports/provider"
	"telegram-blackout-bot/internal/infra/logging"
	"telegram-blackout-bot/internal/infra/metrics"
)

const DefaultBaseURL = "https://app.yasno.ua"

// Client fetches planned-outage documents from the Yasno public API.
// One GET per call, no retry, no cache.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zerolog.Logger
}

var _ provider.ScheduleProvider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, log *zerolog.Logger) (*Client, error) {
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// Fetch resolves the city's address and retrieves its outage document.
// Unknown cities fail before any network I/O. Every upstream failure is
// logged with its cause and collapsed to ErrScheduleUnavailable.
func (c *Client) Fetch(ctx context.Context, cityKey string) (model.OutageDocument, error) {
	url, err := model.OutageURL(c.baseURL, cityKey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveFetch(cityKey, "network_error", time.Since(start))
		logging.With(ctx, c.log).Error().Err(err).Str("city", cityKey).Msg("outage fetch failed")
		return nil, domain.ErrScheduleUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveFetch(cityKey, "upstream_error", time.Since(start))
		logging.With(ctx, c.log).Error().Int("status", resp.StatusCode).Str("city", cityKey).Msg("outage fetch: non-2xx status")
		return nil, domain.ErrScheduleUnavailable
	}

	var doc model.OutageDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		metrics.ObserveFetch(cityKey, "bad_json", time.Since(start))
		logging.With(ctx, c.log).Error().Err(err).Str("city", cityKey).Msg("outage fetch: malformed response")
		return nil, domain.ErrScheduleUnavailable
	}

	metrics.ObserveFetch(cityKey, "ok", time.Since(start))
	return doc, nil
}
