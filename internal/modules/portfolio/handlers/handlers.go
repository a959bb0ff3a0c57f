// Package handlers provides HTTP handlers for the option portfolio.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aristath/spreadbook/internal/domain"
	"github.com/aristath/spreadbook/internal/modules/portfolio"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

const contentTypeMsgpack = "application/msgpack"

// Handler handles portfolio HTTP requests
type Handler struct {
	service *portfolio.Service
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *portfolio.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetPositions returns the option positions grouped into multi-leg strategies
func (h *Handler) HandleGetPositions(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context())
	if err != nil {
		// The router's Timeout middleware answers once the request's own deadline has passed
		if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
			h.log.Debug().Err(err).Msg("Request deadline exceeded")
			return
		}
		h.writeServiceError(w, r, err)
		return
	}

	h.write(w, r, http.StatusOK, newPositionsResponse(view))
}

// writeServiceError maps broker and projection failures to HTTP statuses
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *domain.RemoteAPIError
	var malformed *domain.MalformedPositionError
	var cancelled *domain.CancelledError

	switch {
	case errors.As(err, &apiErr):
		h.log.Warn().Err(err).Int("broker_status", apiErr.StatusCode).Msg("Broker request failed")
		h.write(w, r, http.StatusBadGateway, ErrorResponse{
			Error:        "broker request failed",
			BrokerStatus: apiErr.StatusCode,
			ErrorCode:    apiErr.ErrorCode,
			Message:      apiErr.Message,
		})
	case errors.As(err, &malformed):
		h.log.Error().Err(err).Msg("Broker returned a malformed position")
		h.write(w, r, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.As(err, &cancelled):
		status := http.StatusServiceUnavailable
		if cancelled.DeadlineExceeded() {
			status = http.StatusGatewayTimeout
		}
		h.log.Debug().Err(err).Msg("Request cancelled")
		h.write(w, r, status, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error().Err(err).Msg("Failed to get portfolio positions")
		h.write(w, r, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// write encodes data as msgpack when the client asks for it, JSON otherwise
func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if wantsMsgpack(r) {
		h.writeMsgpack(w, status, data)
		return
	}
	h.writeJSON(w, status, data)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeMsgpack(w http.ResponseWriter, status int, data interface{}) {
	body, err := msgpack.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode msgpack response")
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to encode response"})
		return
	}
	w.Header().Set("Content-Type", contentTypeMsgpack)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Error().Err(err).Msg("Failed to write msgpack response")
	}
}

func wantsMsgpack(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, contentTypeMsgpack) || strings.Contains(accept, "application/x-msgpack")
}
