package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-auth/internal/logger"
)

func serveWithTraceID(t *testing.T, incoming string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "test")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	return rec, buf.String()
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	rec, logs := serveWithTraceID(t, "my-trace")

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
	assert.Contains(t, logs, `"trace_id":"my-trace"`)
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	rec, logs := serveWithTraceID(t, "")

	id, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Contains(t, logs, id.String())
}
