package auth

import (
	"errors"
	"net/http"

	"bookstore/internal/httpx"
	"bookstore/internal/user"

	"github.com/rs/zerolog"
)

// FailureRecorder counts gate rejections by reason.
type FailureRecorder interface {
	AuthFailure(reason string)
}

type HTTPHandler struct {
	service  *Service
	log      zerolog.Logger
	failures FailureRecorder
}

func NewHTTPHandler(service *Service, log zerolog.Logger, failures FailureRecorder) *HTTPHandler {
	return &HTTPHandler{service: service, log: log, failures: failures}
}

// Login handles POST /customer/login
// @Summary Customer login
// @Description Authenticate, receive an access token and a session cookie
// @Tags customers
// @Accept json
// @Produce json
// @Param request body user.Credentials true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /customer/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds := user.ReadCredentials(r)
	if details := httpx.ValidateStruct(creds); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Username and password required", details)
		return
	}

	cookie := h.service.Cookie()
	sess, err := h.service.Login(r.Context(), creds.Username, creds.Password, cookie.Read(r))
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.log.Info().Str("username", creds.Username).Msg("login rejected")
			httpx.JSONError(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("login failed")
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	cookie.Write(w, sess.ID)
	httpx.JSON(w, http.StatusOK, LoginResponse{
		Message:     "Logged in successfully",
		AccessToken: sess.AccessToken,
	})
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// Middleware guards the authenticated area.
func (h *HTTPHandler) Middleware() func(http.Handler) http.Handler {
	return httpx.AuthMiddleware(h.service, h.reject)
}

func (h *HTTPHandler) reject(w http.ResponseWriter, r *http.Request, err error) {
	reason, message := "internal", "Unauthorized"
	switch {
	case errors.Is(err, ErrNoSession):
		reason, message = "no_session", "Unauthorized - no session"
	case errors.Is(err, ErrExpired):
		reason, message = "expired", "Invalid or expired token"
	case errors.Is(err, ErrInvalidToken):
		reason, message = "invalid_token", "Invalid or expired token"
	default:
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("session lookup failed")
	}

	if h.failures != nil {
		h.failures.AuthFailure(reason)
	}
	h.log.Warn().
		Str("reason", reason).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", httpx.RequestIDFrom(r)).
		Msg("request rejected")
	httpx.JSONError(w, http.StatusUnauthorized, message, nil)
}
