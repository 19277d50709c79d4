package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/wedding-rsvp/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, rsvpHandler *RSVPHandler, enableDocs bool) huma.API {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(authHandler.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, huma.Error404NotFound(http.StatusText(http.StatusNotFound)))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, huma.Error405MethodNotAllowed(http.StatusText(http.StatusMethodNotAllowed)))
	})

	// Initialize Huma API
	config := huma.DefaultConfig("Wedding RSVP", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: {
			Type:   "http",
			Scheme: "basic",
		},
	}
	if !enableDocs {
		config.DocsPath = ""
		config.OpenAPIPath = ""
		config.SchemasPath = ""
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	huma.Get(api, "/registreren", rsvpHandler.HandleRegisterForm)
	huma.Post(api, "/registreren", rsvpHandler.HandleRegister)
	huma.Get(api, "/registreren-met-partner", rsvpHandler.HandleRegisterFormWithPartner)
	huma.Post(api, "/registreren-met-partner", rsvpHandler.HandleRegisterWithPartner)

	// Admin routes
	adminOnly := func(o *huma.Operation) {
		o.Security = []map[string][]string{{auth.SecurityScheme: {}}}
	}
	huma.Get(api, "/admin", rsvpHandler.HandleAdminList, adminOnly)
	huma.Get(api, "/admin/rsvp.csv", rsvpHandler.HandleExport, adminOnly)
	huma.Get(api, "/admin/{code}/history", rsvpHandler.HandleHistory, adminOnly)

	// Management routes, keyed by the registration code
	huma.Get(api, "/{code}", rsvpHandler.HandleManageForm)
	huma.Post(api, "/{code}", rsvpHandler.HandleUpdate)
	huma.Get(api, "/{code}/qr.png", rsvpHandler.HandleQRCode)

	return api
}

// writeError renders router-level errors in the same problem format as the
// API operations.
func writeError(w http.ResponseWriter, err huma.StatusError) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(err.GetStatus())
	json.NewEncoder(w).Encode(err)
}
