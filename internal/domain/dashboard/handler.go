package dashboard

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/duedate"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service, defaultLoc *time.Location) {
	r.Get("/me/dashboard", dashboardHandler(svc, defaultLoc))
	r.Get("/me/stats", statsHandler(svc, defaultLoc))
}

// dashboardHandler godoc
// @Summary Inicio
// @Description Cantidad de mascotas, próximos recordatorios con bucket, vencidos, de hoy, completados, racha y no leídas.
// @Tags dashboard
// @Produce json
// @Param tz query string false "Zona IANA para calcular hoy"
// @Param limit query int false "Cantidad de próximos (default 5)"
// @Success 200 {object} Dashboard
// @Failure 400 {object} map[string]string "tz inválido"
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /me/dashboard [get]
func dashboardHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := requestNow(w, r, svc, loc)
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		d, err := svc.Dashboard(r.Context(), claims.UserID, now, limit)
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, d)
	}
}

// statsHandler godoc
// @Summary Estadísticas del perfil
// @Tags dashboard
// @Produce json
// @Param tz query string false "Zona IANA para calcular hoy"
// @Success 200 {object} Stats
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /me/stats [get]
func statsHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := requestNow(w, r, svc, loc)
		if !ok {
			return
		}

		st, err := svc.Stats(r.Context(), claims.UserID, now)
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, st)
	}
}

func requestNow(w http.ResponseWriter, r *http.Request, svc *Service, loc *time.Location) (time.Time, bool) {
	now, err := duedate.NowIn(svc.Now(), strings.TrimSpace(r.URL.Query().Get("tz")), loc)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return now, true
}
