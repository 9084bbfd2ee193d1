package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didley/decimal-input/pkg/requestid"
)

func serve(t *testing.T, incoming string) (header, seen string) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Header().Get(requestid.Header), seen
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("keeps valid incoming id", func(t *testing.T) {
		t.Parallel()
		header, seen := serve(t, "client-id_42")
		assert.Equal(t, "client-id_42", header)
		assert.Equal(t, "client-id_42", seen)
	})

	tests := map[string]string{
		"missing":       "",
		"bad character": "id with spaces",
		"too long":      strings.Repeat("a", 129),
		"injection":     "abc\r\nX-Evil: 1",
	}
	for name, incoming := range tests {
		t.Run("replaces "+name, func(t *testing.T) {
			t.Parallel()
			header, seen := serve(t, incoming)
			_, err := uuid.Parse(header)
			require.NoError(t, err)
			assert.Equal(t, header, seen)
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "r1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "r1", attr.Value.String())
}

func TestFromContext_Nil(t *testing.T) {
	t.Parallel()
	//nolint:staticcheck // nil context is part of the contract
	assert.Empty(t, requestid.FromContext(nil))
}
