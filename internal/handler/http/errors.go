// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/utils"
	"github.com/MKhiriev/inventory-master/models"
)

// Client-facing failure messages. Each message deliberately covers a whole
// class of causes so that responses leak nothing about which step failed.
const (
	// msgBadCredentials is the single message for every login failure:
	// unknown username, wrong password, missing or unparseable form fields.
	msgBadCredentials = "Incorrect username or password"

	// msgCouldNotValidate is the single message for every bearer-token
	// failure on protected routes: missing header, malformed header, bad
	// signature, expired token, unknown subject.
	msgCouldNotValidate = "Could not validate credentials"
)

// writeError renders err-class failures into the uniform response envelope:
//
//	{"status":"error","message":...,"path":...,"code":...,"timestamp":...}
//
// Every non-2xx response in the API goes through this function so that
// clients see exactly one failure shape regardless of which layer failed.
func writeError(w http.ResponseWriter, r *http.Request, message string, code int) {
	envelope := models.Envelope{
		Status:    "error",
		Message:   message,
		Path:      r.URL.Path,
		Code:      code,
		Timestamp: time.Now(),
	}

	if err := utils.WriteJSON(w, envelope, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to render error envelope")
	}
}
