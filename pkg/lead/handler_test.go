package lead_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/leadcapture/pkg/lead"
	"github.com/dmitrymomot/leadcapture/pkg/mailer"
)

type submitResponse struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func postLead(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, submitResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out submitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func newTestRouter(svc *lead.Service) http.Handler {
	r := chi.NewRouter()
	r.Mount("/api", lead.NewHandler(svc).Routes())
	return r
}

func TestHandler_Submit(t *testing.T) {
	t.Parallel()

	t.Run("success normalizes and returns provider id", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		h := newTestRouter(lead.NewService(testConfig(), sender))

		rec, out := postLead(t, h, `{"email": "  USER@Example.COM "}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, out.OK)
		assert.Equal(t, "msg-123", out.ID)
		assert.Empty(t, out.Error)

		calls := sender.sent()
		require.NotEmpty(t, calls)
		assert.Equal(t, "user@example.com", calls[0].ReplyTo)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		h := newTestRouter(lead.NewService(testConfig(), sender))

		rec, out := postLead(t, h, `{"email": `)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, out.OK)
		assert.Equal(t, lead.CodeBadJSON, out.Error)
		assert.Empty(t, sender.sent())
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		h := newTestRouter(lead.NewService(testConfig(), sender))

		rec, out := postLead(t, h, `{"email": "not-an-email"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, out.OK)
		assert.Equal(t, lead.CodeInvalidEmail, out.Error)
		assert.Empty(t, sender.sent())
	})

	t.Run("recipient unset", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.NotifyTo = ""
		sender := &mockSender{}
		h := newTestRouter(lead.NewService(cfg, sender))

		rec, out := postLead(t, h, `{"email": "user@example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, lead.CodeMissingEnv, out.Error)
		assert.Empty(t, out.Detail)
		assert.Empty(t, sender.sent())
	})

	t.Run("provider rejects gating send", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{errs: []error{errors.Join(mailer.ErrProviderRejected, errors.New("domain not verified"))}}
		h := newTestRouter(lead.NewService(testConfig(), sender))

		rec, out := postLead(t, h, `{"email": "user@example.com"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.False(t, out.OK)
		assert.Equal(t, lead.CodeProviderError, out.Error)
		assert.NotEmpty(t, out.Detail)
	})
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(lead.Recoverer(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Post("/api/lead", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec, out := postLead(t, r, `{"email": "user@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, out.OK)
	assert.Equal(t, lead.CodeServerError, out.Error)
}

func TestRecoverer_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := lead.Recoverer(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
