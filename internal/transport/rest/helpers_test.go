package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			r = bytes.NewReader(data)
		}
	}
	return httptest.NewRequest(method, target, r)
}

func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := ctxutil.WithUserID(r.Context(), userID)
	ctx = ctxutil.WithUserRole(ctx, "user")
	return r.WithContext(ctx)
}

func asAdmin(r *http.Request) *http.Request {
	ctx := ctxutil.WithUserID(r.Context(), uuid.New())
	ctx = ctxutil.WithUserRole(ctx, ctxutil.RoleAdmin)
	return r.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

