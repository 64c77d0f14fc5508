// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingWriter() (*responseWriter, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return &responseWriter{ResponseWriter: rec, start: time.Now()}, rec
}

func TestResponseWriter_RecordsStatus(t *testing.T) {
	w, rec := newCapturingWriter()

	w.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	w, rec := newCapturingWriter()

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	w, rec := newCapturingWriter()

	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	w, _ := newCapturingWriter()

	w.Write([]byte("hello "))
	w.Write([]byte("world"))

	assert.Equal(t, 11, w.size)
}

func TestResponseWriter_StampsProcessTime(t *testing.T) {
	w, rec := newCapturingWriter()

	w.WriteHeader(http.StatusOK)

	header := rec.Header().Get(processTimeHeader)
	require.NotEmpty(t, header)

	seconds, err := strconv.ParseFloat(header, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seconds, 0.0)
	assert.Less(t, seconds, 60.0)
}

// The timing header must reflect time spent before the status line, not zero.
func TestResponseWriter_ProcessTimeGrowsWithWork(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec, start: time.Now().Add(-50 * time.Millisecond)}

	w.WriteHeader(http.StatusOK)

	seconds, err := strconv.ParseFloat(rec.Header().Get(processTimeHeader), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seconds, 0.05)
}

func TestFormatProcessTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0.0000"},
		{d: 4200 * time.Microsecond, want: "0.0042"},
		{d: 1500 * time.Millisecond, want: "1.5000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatProcessTime(tt.d))
	}
}
