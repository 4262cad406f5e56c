package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/pop_field_ops/internal/config"
)

func newTestWorker(cfg *config.Config) (*WebhookWorker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewWebhookWorker(nil, logger, cfg)
	delays := make([]time.Duration, 0)
	w.sleep = func(d time.Duration) {
		delays = append(delays, d)
	}
	return w, &delays
}

func testEvent(t *testing.T) (WebhookEvent, string) {
	t.Helper()
	event := NewEvent("pop", ActionCreated, 1, map[string]string{"code": "POP-099"},
		time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestNewEvent(t *testing.T) {
	event, _ := testEvent(t)

	assert.Equal(t, "pop.created", event.Event)
	assert.Equal(t, "pop", event.Resource)
	assert.Equal(t, int64(1), event.ResourceID)
}

func TestProcessWebhookEvent_DeliversWithSignature(t *testing.T) {
	event, raw := testEvent(t)
	secret := "s3cr3t"

	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(signatureHeader)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})

	ok := worker.processWebhookEvent(context.Background(), event, raw)

	require.True(t, ok)
	assert.Equal(t, raw, string(gotBody))

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
	assert.Empty(t, *delays)
}

func TestProcessWebhookEvent_NoSecretNoSignature(t *testing.T) {
	event, raw := testEvent(t)

	var hasSignature atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSignature.Store(r.Header.Get(signatureHeader) != "")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, _ := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
	})

	require.True(t, worker.processWebhookEvent(context.Background(), event, raw))
	assert.False(t, hasSignature.Load())
}

func TestProcessWebhookEvent_RetriesWithBackoff(t *testing.T) {
	event, raw := testEvent(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  100 * time.Millisecond,
	})

	ok := worker.processWebhookEvent(context.Background(), event, raw)

	require.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	event, raw := testEvent(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})

	ok := worker.processWebhookEvent(context.Background(), event, raw)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	// задержка только между попытками
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	event, raw := testEvent(t)
	worker, delays := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	assert.False(t, worker.processWebhookEvent(context.Background(), event, raw))
	assert.Empty(t, *delays)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// RFC 4231, test case 2
	got := generateHMACSHA256("what do ya want for nothing?", "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestNopPublisher(t *testing.T) {
	event, _ := testEvent(t)
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), event))
}
