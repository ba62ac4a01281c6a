package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/templat/internal/pkg/message"
	"github.com/ferdiebergado/templat/internal/pkg/web"
)

// PathUserID is the route wildcard holding the target user id.
const PathUserID = "user_id"

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type UserData struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ListResponse struct {
	Users []UserData `json:"users"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]UserData, 0, len(users))
	for _, u := range users {
		data = append(data, *ToData(&u))
	}

	web.RespondOK(w, nil, &ListResponse{Users: data})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue(PathUserID)

	u, err := h.svc.FindUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.NotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, ToData(u))
}

// ToData converts a user to its public representation. The password hash is never included.
func ToData(u *User) *UserData {
	return &UserData{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Metadata:  u.Metadata,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
