package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON renders data as the JSON response body with the given status
// code. The payload is marshaled before any header is written, so a value
// that cannot serialize still yields a plain 500 instead of a half-written
// response. The returned error is non-nil only when marshaling or the write
// itself fails; handlers that have nothing useful to do with it may ignore
// it.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("marshal response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write response body: %w", err)
	}

	return nil
}
