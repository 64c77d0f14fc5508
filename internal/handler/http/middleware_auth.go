// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication on
// the protected route group.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken], resolves the subject claim to a stored
// user via [service.AuthService.GetUser], and — on success — stores the
// principal in the request context under [utils.PrincipalCtxKey] before
// delegating to the next handler.
//
// Every rejection, regardless of cause (absent header, malformed header,
// invalid or expired token, unknown subject), produces the identical
// response: HTTP 401, the uniform error envelope with msgCouldNotValidate,
// and a "WWW-Authenticate: Bearer" header. The concrete cause is written to
// the request log only.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("rejected request without usable bearer token")
			writeUnauthorized(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("rejected request with invalid token")
			writeUnauthorized(w, r)
			return
		}

		username, err := token.GetUsername()
		if err != nil {
			log.Err(err).Msg("rejected token without subject")
			writeUnauthorized(w, r)
			return
		}

		user, err := h.services.AuthService.GetUser(ctx, username)
		if err != nil {
			log.Err(err).Str("username", username).Msg("rejected token for unresolvable user")
			writeUnauthorized(w, r)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeUnauthorized renders the single 401 response used for every
// authentication failure on protected routes.
func writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, r, msgCouldNotValidate, http.StatusUnauthorized)
}
