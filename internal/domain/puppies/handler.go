package puppies

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
	// Lectura pública (la galería no requiere login)
	r.Route("/puppies", func(pr chi.Router) {
		pr.Get("/", listPuppiesHandler(svc))
		pr.Get("/slug/{slug}", getPuppyBySlugHandler(svc))
		pr.Get("/{puppyID}", getPuppyHandler(svc))
	})

	// Administración de la camada (solo admin)
	r.Route("/admin/puppies", func(ar chi.Router) {
		ar.Post("/", createPuppyHandler(svc))
		ar.Patch("/{puppyID}", updatePuppyHandler(svc))
		ar.Post("/{puppyID}/photos", addPhotoHandler(svc))
		ar.Post("/{puppyID}/weights", addWeightHandler(svc))
	})
}

type photoResponse struct {
	ID        string    `json:"id"`
	PuppyID   string    `json:"puppy_id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	TakenAt   time.Time `json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}

type weightLogResponse struct {
	ID          string    `json:"id"`
	PuppyID     string    `json:"puppy_id"`
	WeightGrams int       `json:"weight_grams"`
	MeasuredAt  time.Time `json:"measured_at"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type puppyViewResponse struct {
	ID                 string              `json:"id"`
	Slug               string              `json:"slug"`
	Name               string              `json:"name"`
	Nickname           string              `json:"nickname,omitempty"`
	Sex                string              `json:"sex"`
	Coat               string              `json:"coat"`
	BirthWeightGrams   int                 `json:"birth_weight_grams"`
	CurrentWeightGrams int                 `json:"current_weight_grams"`
	Status             string              `json:"status"`
	Notes              string              `json:"notes,omitempty"`
	BirthOrder         int                 `json:"birth_order"`
	BornAt             *time.Time          `json:"born_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	Photos             []photoResponse     `json:"photos"`
	WeightLogs         []weightLogResponse `json:"weight_logs"`
}

type createPuppyRequest struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	Nickname         string `json:"nickname"`
	Sex              string `json:"sex"`
	Coat             string `json:"coat"`
	BirthWeightGrams int    `json:"birth_weight_grams"`
	Notes            string `json:"notes"`
	BirthOrder       int    `json:"birth_order"`
	BornAt           string `json:"born_at"` // RFC3339 opcional
}

type updatePuppyRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name               *string `json:"name"`
	Nickname           *string `json:"nickname"`
	Coat               *string `json:"coat"`
	CurrentWeightGrams *int    `json:"current_weight_grams"`
	Status             *string `json:"status"`
	Notes              *string `json:"notes"`
}

type addPhotoRequest struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	TakenAt string `json:"taken_at"` // RFC3339 o YYYY-MM-DD
}

type addWeightRequest struct {
	WeightGrams int    `json:"weight_grams"`
	MeasuredAt  string `json:"measured_at"` // RFC3339 o YYYY-MM-DD
	Note        string `json:"note"`
}

// listPuppiesHandler godoc
// @Summary Lista la camada con fotos y registro de pesos
// @Tags puppies
// @Produce json
// @Success 200 {array} puppies.puppyViewResponse
// @Router /puppies [get]
func listPuppiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.List(r.Context())
		if err != nil {
			// Un error de store NUNCA se degrada a lista vacía.
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]puppyViewResponse, 0, len(views))
		for _, v := range views {
			out = append(out, toPuppyViewResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPuppyHandler godoc
// @Summary Perfil agregado de un cachorro
// @Tags puppies
// @Produce json
// @Param puppyID path string true "Puppy ID"
// @Success 200 {object} puppies.puppyViewResponse
// @Failure 404 {string} string "not found"
// @Router /puppies/{puppyID} [get]
func getPuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "puppyID"))
		if err != nil {
			writePuppyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPuppyViewResponse(v))
	}
}

func getPuppyBySlugHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writePuppyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPuppyViewResponse(v))
	}
}

// createPuppyHandler godoc
// @Summary Alta de cachorro (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} puppies.puppyViewResponse
// @Router /admin/puppies [post]
func createPuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req createPuppyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bornAt *time.Time
		if strings.TrimSpace(req.BornAt) != "" {
			t, err := parseFlexibleTime(req.BornAt)
			if err != nil {
				http.Error(w, "born_at must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bornAt = &t
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Slug:             req.Slug,
			Name:             req.Name,
			Nickname:         req.Nickname,
			Sex:              req.Sex,
			Coat:             req.Coat,
			BirthWeightGrams: req.BirthWeightGrams,
			Notes:            req.Notes,
			BirthOrder:       req.BirthOrder,
			BornAt:           bornAt,
		})
		if err != nil {
			writePuppyError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPuppyViewResponse(PuppyView{
			Puppy:      p,
			Photos:     []Photo{},
			WeightLogs: []WeightLogEntry{},
		}))
	}
}

func updatePuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req updatePuppyRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "puppyID"), UpdateProfileInput{
			Name:               req.Name,
			Nickname:           req.Nickname,
			Coat:               req.Coat,
			CurrentWeightGrams: req.CurrentWeightGrams,
			Status:             req.Status,
			Notes:              req.Notes,
		})
		if err != nil {
			writePuppyError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"puppy":   toPuppyViewResponse(PuppyView{Puppy: p, Photos: []Photo{}, WeightLogs: []WeightLogEntry{}}),
		})
	}
}

func addPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req addPhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		takenAt, err := parseFlexibleTime(req.TakenAt)
		if err != nil {
			http.Error(w, "taken_at must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		ph, err := svc.AddPhoto(r.Context(), AddPhotoInput{
			PuppyID: chi.URLParam(r, "puppyID"),
			URL:     req.URL,
			Caption: req.Caption,
			TakenAt: takenAt,
		})
		if err != nil {
			writePuppyError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"photo":   toPhotoResponse(ph),
		})
	}
}

// addWeightHandler: la entrada insertada pasa a ser el peso actual
// del cachorro, sin importar measured_at.
func addWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req addWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		measuredAt, err := parseFlexibleTime(req.MeasuredAt)
		if err != nil {
			http.Error(w, "measured_at must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.AddWeight(r.Context(), AddWeightInput{
			PuppyID:     chi.URLParam(r, "puppyID"),
			WeightGrams: req.WeightGrams,
			MeasuredAt:  measuredAt,
			Note:        req.Note,
		})
		if err != nil {
			writePuppyError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"success":    true,
			"weight_log": toWeightLogResponse(e),
		})
	}
}

// requireAdmin corta con 401 si no hay principal y 403 si el rol no es admin.
// Importante: nunca 404 — el cliente distingue "re-loguearse" de "no existe".
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

func writePuppyError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ErrNotFound:
		http.Error(w, "puppy not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func parseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toPhotoResponse(ph Photo) photoResponse {
	return photoResponse{
		ID:        ph.ID,
		PuppyID:   ph.PuppyID,
		URL:       ph.URL,
		Caption:   ph.Caption,
		TakenAt:   ph.TakenAt,
		CreatedAt: ph.CreatedAt,
	}
}

func toWeightLogResponse(e WeightLogEntry) weightLogResponse {
	return weightLogResponse{
		ID:          e.ID,
		PuppyID:     e.PuppyID,
		WeightGrams: e.WeightGrams,
		MeasuredAt:  e.MeasuredAt,
		Note:        e.Note,
		CreatedAt:   e.CreatedAt,
	}
}

func toPuppyViewResponse(v PuppyView) puppyViewResponse {
	photos := make([]photoResponse, 0, len(v.Photos))
	for _, ph := range v.Photos {
		photos = append(photos, toPhotoResponse(ph))
	}
	weights := make([]weightLogResponse, 0, len(v.WeightLogs))
	for _, e := range v.WeightLogs {
		weights = append(weights, toWeightLogResponse(e))
	}

	return puppyViewResponse{
		ID:                 v.ID,
		Slug:               v.Slug,
		Name:               v.Name,
		Nickname:           v.Nickname,
		Sex:                string(v.Sex),
		Coat:               v.Coat,
		BirthWeightGrams:   v.BirthWeightGrams,
		CurrentWeightGrams: v.CurrentWeightGrams,
		Status:             string(v.Status),
		Notes:              v.Notes,
		BirthOrder:         v.BirthOrder,
		BornAt:             v.BornAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		Photos:             photos,
		WeightLogs:         weights,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (puppies/hearts/applications) para evitar crear helpers compartidos
// demasiado pronto; si aparece un cuarto módulo, recién conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
