package reports

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service, actors posts.ActorResolver) {
	r.Post("/posts/{postID}/reports", createHandler(svc, actors))
	r.Get("/reports", listHandler(svc, actors))
	r.Post("/reports/{reportID}/review", reviewHandler(svc, actors))
}

type createReportRequest struct {
	Reason      string `json:"reason" enums:"spam,harassment,inappropriate,misinformation,other"`
	Description string `json:"description"`
}

type reviewRequest struct {
	Status Status `json:"status" enums:"resolved,dismissed"`
}

// createHandler godoc
// @Summary Reportar post
// @Tags reports
// @Accept json
// @Produce json
// @Param postID path string true "ID del post"
// @Param payload body createReportRequest true "Motivo"
// @Success 201 {object} Report
// @Failure 400 {object} map[string]any "validación"
// @Failure 404 {object} map[string]string "post not found"
// @Router /posts/{postID}/reports [post]
func createHandler(svc *Service, actors posts.ActorResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, actors)
		if !ok {
			return
		}

		var req createReportRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rep, err := svc.Create(r.Context(), actor, CreateInput{
			PostID:      chi.URLParam(r, "postID"),
			Reason:      req.Reason,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, rep)
	}
}

// listHandler godoc
// @Summary Listar reportes
// @Tags reports
// @Produce json
// @Param status query string false "pending|resolved|dismissed"
// @Success 200 {array} Report
// @Failure 403 {object} map[string]string "forbidden"
// @Router /reports [get]
func listHandler(svc *Service, actors posts.ActorResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, actors)
		if !ok {
			return
		}

		status := Status(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))))
		items, err := svc.List(r.Context(), actor, status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

// reviewHandler godoc
// @Summary Revisar reporte
// @Tags reports
// @Accept json
// @Produce json
// @Param reportID path string true "ID del reporte"
// @Param payload body reviewRequest true "Resultado"
// @Success 200 {object} Report
// @Failure 403 {object} map[string]string "forbidden"
// @Failure 404 {object} map[string]string "report not found"
// @Router /reports/{reportID}/review [post]
func reviewHandler(svc *Service, actors posts.ActorResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, actors)
		if !ok {
			return
		}

		var req reviewRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rep, err := svc.Review(r.Context(), actor, chi.URLParam(r, "reportID"), req.Status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, rep)
	}
}

func resolveActor(w http.ResponseWriter, r *http.Request, actors posts.ActorResolver) (posts.Actor, bool) {
	claims, ok := middleware.RequireUser(w, r)
	if !ok {
		return posts.Actor{}, false
	}
	u, err := actors.Actor(r.Context(), claims.UserID)
	if err != nil {
		httpjson.Internal(w, r, err)
		return posts.Actor{}, false
	}
	return posts.Actor{ID: u.ID, Name: u.DisplayName, Role: u.Role}, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Invalid(w, err)
	case errors.Is(err, posts.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "post not found")
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "report not found")
	case errors.Is(err, ErrForbidden):
		httpjson.Error(w, http.StatusForbidden, "forbidden")
	default:
		httpjson.Internal(w, r, err)
	}
}
