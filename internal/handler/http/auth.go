// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/service"
	"github.com/MKhiriev/inventory-master/internal/utils"
	"github.com/MKhiriev/inventory-master/models"
)

// token exchanges a form-encoded username/password pair for a signed access
// token (OAuth2 password flow).
//
// Every credential failure — unparseable body, missing fields, unknown
// username, wrong password — produces the same 400 envelope with
// msgBadCredentials, so the endpoint cannot be used to discover which
// usernames exist.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("failed to parse login form")
		writeError(w, r, msgBadCredentials, http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Error().Str("username", username).Msg("login rejected")
			writeError(w, r, msgBadCredentials, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during login")
		writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AccessToken{
		AccessToken: token.String(),
		TokenType:   "bearer",
	}, http.StatusOK)
}

// signup accepts an email address, schedules a welcome email on the
// background mail queue, and returns 202 immediately. Delivery problems are
// logged by the worker and never change the response.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email := r.FormValue("email")
	if email == "" {
		writeError(w, r, "Email is required", http.StatusBadRequest)
		return
	}

	if err := h.mailWorker.Enqueue(r.Context(), email); err != nil {
		// the signup itself still succeeds
		log.Err(err).Msg("welcome email was not scheduled")
	}

	utils.WriteJSON(w, models.Message{
		Message: "Signup successful! Check your email in a few moments.",
	}, http.StatusAccepted)
}

// usersMe returns the profile of the authenticated user resolved by the
// auth middleware. The hashed password never serializes.
func (h *Handler) usersMe(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal in context on protected route")
		writeError(w, r, msgCouldNotValidate, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// hello is the public root endpoint.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "Hello World",
		"version": "2.0",
	}, http.StatusOK)
}
