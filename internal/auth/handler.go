package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/templat/internal/pkg/message"
	"github.com/ferdiebergado/templat/internal/pkg/web"
	"github.com/ferdiebergado/templat/internal/user"
)

const tokenType = "bearer"

type Handler struct {
	svc Service
}

// NewHandler returns the auth handler. svc may be nil in delegated mode, where only Me is routed.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HasService reports whether register and login can be served.
func (h *Handler) HasService() bool {
	return h.svc != nil
}

type RegisterRequest struct {
	Email           string `json:"email,omitempty" validate:"required,email,max=254"`
	Password        string `json:"password,omitempty" validate:"required,min=8,maxbytes=72"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.Register(r.Context(), RegisterParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondConflict(w, err, "User already exists.", nil)
			return
		}
		if errors.Is(err, ErrPasswordTooLong) {
			web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{
				"password": "password must be at most 72 bytes long",
			})
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.RegisterSuccess
	web.RespondCreated(w, &msg, user.ToData(&u))
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	res, err := h.svc.Login(r.Context(), LoginParams(req))
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.LoginSuccess
	web.RespondOK(w, &msg, &LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   tokenType,
		ExpiresAt:   res.ExpiresAt,
	})
}

// Me returns the identity verified by RequireToken.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, err := IdentityFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	web.RespondOK(w, nil, id)
}
