package notifications

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
)

// RegisterRoutes monta el polling; stream (websocket) es opcional.
func RegisterRoutes(r chi.Router, svc *Service, stream http.Handler) {
	r.Route("/me/notifications", func(nr chi.Router) {
		nr.Get("/", listHandler(svc))
		nr.Post("/read", markAllReadHandler(svc))
		nr.Post("/{notificationID}/read", markReadHandler(svc))
		if stream != nil {
			nr.Get("/ws", stream.ServeHTTP)
		}
	})
}

type listResponse struct {
	Items  []Notification `json:"items"`
	Unread int            `json:"unread"`
}

// listHandler godoc
// @Summary Notificaciones (polling)
// @Description El cliente hace polling cada ~30s; since permite traer solo las nuevas.
// @Tags notifications
// @Produce json
// @Param unread query bool false "Solo no leídas"
// @Param since query string false "RFC3339; solo posteriores"
// @Param limit query int false "Máximo (1-200)"
// @Success 200 {object} listResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /me/notifications [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		q := ListQuery{}
		if v := r.URL.Query().Get("unread"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, "unread must be a boolean")
				return
			}
			q.UnreadOnly = b
		}
		if v := strings.TrimSpace(r.URL.Query().Get("since")); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, "since must be RFC3339")
				return
			}
			q.Since = &t
		}
		if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
			q.Limit = n
		}

		items, err := svc.List(r.Context(), claims.UserID, q)
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}
		unread, err := svc.UnreadCount(r.Context(), claims.UserID)
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, listResponse{Items: items, Unread: unread})
	}
}

// markAllReadHandler godoc
// @Summary Marcar todas como leídas
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int
// @Router /me/notifications/read [post]
func markAllReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		n, err := svc.MarkAllRead(r.Context(), claims.UserID)
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, map[string]int{"marked": n})
	}
}

// markReadHandler godoc
// @Summary Marcar una notificación como leída
// @Tags notifications
// @Param notificationID path string true "ID de la notificación"
// @Success 204
// @Failure 404 {object} map[string]string "notification not found"
// @Router /me/notifications/{notificationID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		err := svc.MarkRead(r.Context(), claims.UserID, chi.URLParam(r, "notificationID"))
		if errors.Is(err, ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "notification not found")
			return
		}
		if err != nil {
			httpjson.Internal(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
