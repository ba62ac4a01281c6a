package app

import (
	"net/http"

	"github.com/ferdiebergado/templat/internal/auth"
	"github.com/ferdiebergado/templat/internal/file"
	"github.com/ferdiebergado/templat/internal/middleware"
	"github.com/ferdiebergado/templat/internal/pkg/web"
	"github.com/ferdiebergado/templat/internal/platform/router"
	"github.com/ferdiebergado/templat/internal/platform/validation"
	"github.com/ferdiebergado/templat/internal/user"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	adminOnly   = []auth.Role{auth.RoleAdmin}
	fileClients = []auth.Role{auth.RoleAdmin, auth.RoleUser}
)

func mountOpsRoutes(r router.Router) {
	r.Get("/health", health)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

type healthResponse struct {
	Status string `json:"status"`
}

func health(w http.ResponseWriter, _ *http.Request) {
	web.RespondOK(w, nil, &healthResponse{Status: "ok"})
}

// mountAuthRoutes registers /auth/me in every mode, plus register and login when
// the handler has a service behind it.
func mountAuthRoutes(r router.Router, h *auth.Handler, v validation.Validator, verifier auth.Verifier, maxBody int64) {
	if h.HasService() {
		r.Post("/auth/register", h.Register,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.RegisterRequest](maxBody),
			middleware.ValidateInput[auth.RegisterRequest](v))
		r.Post("/auth/login", h.Login,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.LoginRequest](maxBody),
			middleware.ValidateInput[auth.LoginRequest](v))
	}

	r.Get("/auth/me", h.Me, auth.RequireToken(verifier))
}

func mountUserRoutes(r router.Router, h *user.Handler, verifier auth.Verifier) {
	requireToken := auth.RequireToken(verifier)

	r.Get("/users", h.List, requireToken, auth.Authorize(adminOnly))
	r.Get("/users/{"+user.PathUserID+"}", h.Show,
		requireToken,
		auth.Authorize(adminOnly, auth.AllowSameID(auth.PathValue(user.PathUserID))))
}

func mountFileRoutes(r router.Router, h *file.Handler, verifier auth.Verifier) {
	requireToken := auth.RequireToken(verifier)
	clients := auth.Authorize(fileClients)

	r.Get("/files", h.List, requireToken, clients)
	r.Put("/files/{"+file.PathKey+"...}", h.Upload, requireToken, clients)
	r.Get("/files/{"+file.PathKey+"...}", h.Download, requireToken, clients)
	r.Delete("/files/{"+file.PathKey+"...}", h.Delete, requireToken, clients)
	r.Get("/links/{"+file.PathKey+"...}", h.Link, requireToken, clients)
	r.Delete("/folders/{"+file.PathFolder+"...}", h.DeleteFolder, requireToken, auth.Authorize(adminOnly))
}
