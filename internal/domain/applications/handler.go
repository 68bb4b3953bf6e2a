package applications

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"willow-pups/internal/middleware"
	"willow-pups/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Submit público (el form de adopción no pide login)
	r.Post("/applications", submitHandler(svc))

	// Gestión de solicitudes (solo admin)
	r.Route("/admin/applications", func(ar chi.Router) {
		ar.Get("/", listApplicationsHandler(svc))
		ar.Get("/{appID}", getApplicationHandler(svc))
		ar.Patch("/{appID}/status", updateStatusHandler(svc))
	})
}

type submitRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PuppyID         *string `json:"puppy_id"`
	PuppyPreference string  `json:"puppy_preference"`
	Notes           string  `json:"notes"`
}

type updateStatusRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes"` // nil = no tocar
}

type applicationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PuppyID         *string   `json:"puppy_id,omitempty"`
	PuppyPreference string    `json:"puppy_preference,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	AdminNotes      string    `json:"admin_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// submitHandler godoc
// @Summary Enviar solicitud de adopción
// @Tags applications
// @Accept json
// @Produce json
// @Success 201 {object} map[string]bool
// @Failure 400 {string} string "validation error"
// @Router /applications [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		_, err := svc.Submit(r.Context(), SubmitInput{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			PuppyID:         req.PuppyID,
			PuppyPreference: req.PuppyPreference,
			Notes:           req.Notes,
		})
		if err != nil {
			writeApplicationError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
	}
}

// listApplicationsHandler godoc
// @Summary Lista de solicitudes (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} applications.applicationResponse
// @Failure 403 {string} string "admin access required"
// @Router /admin/applications [get]
func listApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appID"))
		if err != nil {
			writeApplicationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appID"), UpdateStatusInput{
			Status:     req.Status,
			AdminNotes: req.AdminNotes,
		})
		if err != nil {
			writeApplicationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"application": toApplicationResponse(a),
		})
	}
}

// requireAdmin: 401 sin principal, 403 sin rol admin. Nunca 404 ni lista
// vacía — un no-admin no puede inferir qué existe detrás del gate.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok || strings.TrimSpace(principal.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if principal.Role != auth.RoleAdmin {
		http.Error(w, "admin access required", http.StatusForbidden)
		return false
	}
	return true
}

func writeApplicationError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ErrNotFound:
		http.Error(w, "application not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		PuppyID:         a.PuppyID,
		PuppyPreference: a.PuppyPreference,
		Notes:           a.Notes,
		Status:          string(a.Status),
		AdminNotes:      a.AdminNotes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
