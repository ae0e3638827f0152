package user

import (
	"errors"
	"net/http"

	"bookstore/internal/httpx"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Register handles POST /customer/register
// @Summary Register a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body Credentials true "Registration request"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /customer/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds := ReadCredentials(r)
	if details := httpx.ValidateStruct(creds); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Username and password required", details)
		return
	}

	if err := h.service.Register(r.Context(), creds.Username, creds.Password); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.JSONError(w, http.StatusBadRequest, "Username and password required", nil)
		case errors.Is(err, ErrAlreadyExists):
			httpx.JSONError(w, http.StatusBadRequest, "User already exists", nil)
		default:
			h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("register failed")
			httpx.JSONError(w, http.StatusInternalServerError, "Internal server error", nil)
		}
		return
	}

	h.log.Info().Str("username", creds.Username).Msg("customer registered")
	httpx.JSONMessage(w, http.StatusOK, "User registered successfully")
}
