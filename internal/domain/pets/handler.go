package pets

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets", createPetHandler(svc))
	r.Get("/pets", listPetsHandler(svc))

	r.Get("/pets/{petID}", getPetHandler(svc))
	r.Patch("/pets/{petID}", updatePetHandler(svc))

	// Borra también los recordatorios de la mascota
	r.Delete("/pets/{petID}", deletePetHandler(svc))
}

type createPetRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type" enums:"dog,cat,bird,other"`
	Breed    string  `json:"breed"`
	Age      float64 `json:"age"`
	Weight   float64 `json:"weight"`
	Color    string  `json:"color"`
	Gender   string  `json:"gender"`
	ImageURL string  `json:"image_url"`
}

type updatePetRequest struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Breed    *string  `json:"breed"`
	Age      *float64 `json:"age"`
	Weight   *float64 `json:"weight"`
	Color    *string  `json:"color"`
	Gender   *string  `json:"gender"`
	ImageURL *string  `json:"image_url"`
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Type        PetType   `json:"type"`
	Breed       string    `json:"breed"`
	Age         float64   `json:"age"`
	Weight      float64   `json:"weight"`
	Color       string    `json:"color,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description name, type y breed son obligatorios; age y weight deben ser >= 0.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} map[string]any "validación"
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req createPetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:     req.Name,
			Type:     req.Type,
			Breed:    req.Breed,
			Age:      req.Age,
			Weight:   req.Weight,
			Color:    req.Color,
			Gender:   req.Gender,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} petResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Ver mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description PATCH parcial; la mascota resultante se vuelve a validar completa.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} map[string]any "validación"
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "petID"), UpdateInput{
			Name:     req.Name,
			Type:     req.Type,
			Breed:    req.Breed,
			Age:      req.Age,
			Weight:   req.Weight,
			Color:    req.Color,
			Gender:   req.Gender,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y todos sus recordatorios. Un id desconocido responde 204 igual.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "petID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		Weight:      p.Weight,
		Color:       p.Color,
		Gender:      p.Gender,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Invalid(w, err)
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "pet not found")
	default:
		httpjson.Internal(w, r, err)
	}
}
