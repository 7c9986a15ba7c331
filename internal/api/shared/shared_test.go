package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	first := GetTraceID(ctx)
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, GetTraceID(SetTraceID(context.Background())))
}

func TestUserContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserFromContext(WithUser(context.Background(), nil))
	assert.False(t, ok)

	user := &domain.User{Username: "alice"}
	got, ok := UserFromContext(WithUser(context.Background(), user))
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Alice"}`},
		{name: "empty body", body: ``, wantErr: "request body is required"},
		{name: "malformed", body: `{"name":`, wantErr: "request body is not valid JSON"},
		{name: "oversized", body: `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, wantErr: "must not exceed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var p payload
			err := DecodeJSON(w, r, &p)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Alice", p.Name)
				return
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRespondWithPage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithPage(w, r, []string{"a"}, domain.Paging{CurrentPage: 2, Size: 1, TotalPage: 3})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":["a"],"paging":{"current_page":2,"size":1,"total_page":3}}`, w.Body.String())
}

func TestRespondWithData(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithData(w, r, http.StatusCreated, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":true}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := logger.WithLogger(SetTraceID(context.Background()), log)
	r := httptest.NewRequest(http.MethodGet, "/api/contacts", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	cause := errors.New("dial postgres://app:secret@db:5432/contacts failed")
	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", cause)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred", body.Errors)
	assert.Equal(t, GetTraceID(ctx), body.TraceID)
	assert.NotContains(t, w.Body.String(), "secret")

	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), "[REDACTED_CREDENTIAL]")
	assert.NotContains(t, logs.String(), "secret")
}

func TestRespondWithErrorLogLevels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		opts   []ResponseOption
		level  string
	}{
		{name: "client error", status: http.StatusNotFound, level: `"level":"DEBUG"`},
		{name: "elevated client error", status: http.StatusUnauthorized, opts: []ResponseOption{WithElevatedLogLevel()}, level: `"level":"WARN"`},
		{name: "server error", status: http.StatusServiceUnavailable, level: `"level":"ERROR"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(logger.WithLogger(context.Background(), log))

			RespondWithErrorAndLog(httptest.NewRecorder(), r, tc.status, "msg", nil, tc.opts...)
			assert.Contains(t, logs.String(), tc.level)
		})
	}
}
