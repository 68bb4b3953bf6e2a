package hearts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Todo el subsistema de hearts es público: el visitante se identifica
	// con un token opaco autogenerado en el cliente, no con una sesión.
	r.Route("/hearts", func(hr chi.Router) {
		hr.Get("/status", statusHandler(svc))
		hr.Post("/toggle", toggleHandler(svc))
	})
}

type toggleRequest struct {
	PuppyID   string `json:"puppy_id"`
	VisitorID string `json:"visitor_id"`
}

type toggleResponse struct {
	Hearted bool `json:"hearted"`
	Count   int  `json:"count"`
}

type statusResponse struct {
	Counts        map[string]int `json:"counts"`
	VisitorHearts []string       `json:"visitor_hearts"`
}

// statusHandler godoc
// @Summary Counts de hearts + cuáles tiene este visitante
// @Tags hearts
// @Produce json
// @Param visitor_id query string true "Visitor token"
// @Success 200 {object} hearts.statusResponse
// @Router /hearts/status [get]
func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Status(r.Context(), r.URL.Query().Get("visitor_id"))
		if err != nil {
			writeHeartError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{
			Counts:        res.Counts,
			VisitorHearts: res.VisitorHearts,
		})
	}
}

// toggleHandler godoc
// @Summary Flip del heart de un visitante sobre un cachorro
// @Tags hearts
// @Accept json
// @Produce json
// @Success 200 {object} hearts.toggleResponse
// @Router /hearts/toggle [post]
func toggleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Toggle(r.Context(), req.PuppyID, req.VisitorID)
		if err != nil {
			writeHeartError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{
			Hearted: res.Hearted,
			Count:   res.Count,
		})
	}
}

func writeHeartError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
