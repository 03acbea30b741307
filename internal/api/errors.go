package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/api/respond"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

// apologyMessage is shown instead of upstream error details.
const apologyMessage = "Sorry, I encountered an error. Please try again."

const maxBodyBytes = 1 << 20

// writeServiceError maps a service error onto the HTTP error contract.
func writeServiceError(w http.ResponseWriter, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, context.Canceled):
		// client went away; nobody is listening for a body
		w.WriteHeader(499)
	case insight.IsGenerationError(err):
		log.Warn().Err(err).Msg("completion request failed")
		respond.WriteBadGateway(w, apologyMessage)
	default:
		log.Error().Stack().Err(err).Msg("request failed")
		respond.WriteInternalError(w, "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return false
	}
	return true
}

// intQuery reads a non-negative integer query parameter; absent means 0.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return n, nil
}

func boolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(name + " must be true or false")
	}
	return b, nil
}
