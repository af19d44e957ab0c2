package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"telegram-blackout-bot/internal/domain/model"
	"telegram-blackout-bot/internal/infra/i18n"
)

// memScheduleProvider is a small in-memory provider used by unit tests.
type memScheduleProvider struct {
	mu    sync.Mutex
	docs  map[string]model.OutageDocument
	err   error // returned for every Fetch when set
	calls int
}

func newMemScheduleProvider() *memScheduleProvider {
	return &memScheduleProvider{docs: make(map[string]model.OutageDocument)}
}

func (m *memScheduleProvider) Fetch(ctx context.Context, cityKey string) (model.OutageDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.docs[cityKey], nil
}

func (m *memScheduleProvider) fetchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newTestUC(t *testing.T, p *memScheduleProvider) *NavigationUC {
	t.Helper()
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	logger := zerolog.Nop()
	uc, err := NewNavigationUC(p, tr, &logger)
	if err != nil {
		t.Fatalf("NewNavigationUC: %v", err)
	}
	return uc
}
