package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/traduzo/traduzo/internal/adapter"
	"github.com/traduzo/traduzo/internal/app"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/models"
)

type clientTranslationService struct {
	adapter adapter.ServerAdapter
	session TokenSource
	logger  *logger.Logger

	mu       sync.RWMutex
	inFlight bool
	records  []models.TranslationRecord
	lastErr  string
}

// NewClientTranslationService creates a translation service whose bearer
// token comes from session on every call.
func NewClientTranslationService(session TokenSource, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientTranslationService {
	return &clientTranslationService{
		adapter: serverAdapter,
		session: session,
		logger:  log.Component("translation"),
	}
}

// begin claims the single in-flight slot. Every operation goes through it, so
// at most one server call mutates the cached history at a time.
func (t *clientTranslationService) begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight {
		return ErrOperationInFlight
	}
	t.inFlight = true
	t.lastErr = ""
	return nil
}

func (t *clientTranslationService) end() {
	t.mu.Lock()
	t.inFlight = false
	t.mu.Unlock()
}

func (t *clientTranslationService) Translate(ctx context.Context, text, source, target string, autoDetect bool) (TranslateResult, error) {
	if err := t.begin(); err != nil {
		return TranslateResult{}, err
	}
	defer t.end()

	if autoDetect || source == "" {
		source = "auto"
	}

	token := t.session.Token()
	resp, err := t.adapter.Translate(ctx, token, models.TranslateRequest{
		Text:   text,
		Source: source,
		Target: target,
	})
	if err != nil {
		t.setLastError(userMessage(err, app.MsgTranslateFailed))
		return TranslateResult{}, fmt.Errorf("translate: %w", err)
	}

	// The server stores the new entry itself, so the freshest history is its
	// list, not a locally appended record. Failing to fetch it only leaves
	// the cache one entry behind.
	if records, err := t.adapter.Translations(ctx, token); err != nil {
		t.logger.Debug().Err(err).Msg("history refresh after translate failed")
	} else {
		t.replaceRecords(records)
	}

	return TranslateResult{
		TranslatedText:   resp.TranslatedText,
		DetectedLanguage: resp.DetectedLanguage,
	}, nil
}

func (t *clientTranslationService) DetectLanguage(ctx context.Context, text string) (models.DetectResponse, error) {
	if err := t.begin(); err != nil {
		return models.DetectResponse{}, err
	}
	defer t.end()

	resp, err := t.adapter.Detect(ctx, t.session.Token(), text)
	if err != nil {
		t.setLastError(userMessage(err, app.MsgDetectFailed))
		return models.DetectResponse{}, fmt.Errorf("detect language: %w", err)
	}
	return resp, nil
}

func (t *clientTranslationService) TranslateImage(ctx context.Context, filename string, image []byte) (string, error) {
	if err := t.begin(); err != nil {
		return "", err
	}
	defer t.end()

	text, err := t.adapter.TranslateImage(ctx, t.session.Token(), filename, image)
	if err != nil {
		t.setLastError(userMessage(err, app.MsgImageProcessFailed))
		return "", fmt.Errorf("translate image: %w", err)
	}
	return text, nil
}

func (t *clientTranslationService) ListTranslations(ctx context.Context) error {
	token := t.session.Token()
	if token == "" {
		return nil
	}
	if err := t.begin(); err != nil {
		// A refresh that lost the race is stale, not wrong.
		return nil
	}
	defer t.end()

	records, err := t.adapter.Translations(ctx, token)
	if err != nil {
		t.setLastError(userMessage(err, app.MsgHistoryFetchFailed))
		return fmt.Errorf("list translations: %w", err)
	}

	t.replaceRecords(records)
	return nil
}

func (t *clientTranslationService) RemoveTranslation(ctx context.Context, id int64) error {
	if err := t.begin(); err != nil {
		return err
	}
	defer t.end()

	if err := t.adapter.DeleteTranslation(ctx, t.session.Token(), id); err != nil {
		t.setLastError(userMessage(err, app.MsgTranslationRemoveFailed))
		return fmt.Errorf("remove translation: %w", err)
	}

	// The server confirmed the delete, dropping the entry locally keeps the
	// cache correct without another round trip.
	t.mu.Lock()
	kept := t.records[:0]
	for _, record := range t.records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	t.records = kept
	t.mu.Unlock()

	return nil
}

func (t *clientTranslationService) ClearHistory(ctx context.Context) error {
	if err := t.begin(); err != nil {
		return err
	}
	defer t.end()

	if err := t.adapter.ClearTranslations(ctx, t.session.Token()); err != nil {
		t.setLastError(userMessage(err, app.MsgHistoryClearFailed))
		return fmt.Errorf("clear history: %w", err)
	}

	t.replaceRecords(nil)
	return nil
}

func (t *clientTranslationService) Records() []models.TranslationRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := make([]models.TranslationRecord, len(t.records))
	copy(records, t.records)
	return records
}

func (t *clientTranslationService) InFlight() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.inFlight
}

func (t *clientTranslationService) LastError() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

func (t *clientTranslationService) replaceRecords(records []models.TranslationRecord) {
	t.mu.Lock()
	t.records = records
	t.mu.Unlock()
}

func (t *clientTranslationService) setLastError(msg string) {
	t.mu.Lock()
	t.lastErr = msg
	t.mu.Unlock()
}
