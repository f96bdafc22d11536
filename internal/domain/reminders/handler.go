package reminders

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/duedate"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
)

// PetNamer resuelve petID -> nombre para enriquecer las respuestas.
type PetNamer interface {
	Names(ctx context.Context, ownerUserID string) (map[string]string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, pets PetNamer, defaultLoc *time.Location) {
	h := &handlers{svc: svc, pets: pets, loc: defaultLoc}

	r.Get("/pets/{petID}/reminders", h.listByPet())
	r.Post("/pets/{petID}/reminders", h.create(true))

	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", h.list())
		rr.Post("/", h.create(false))
		rr.Get("/upcoming", h.upcoming())
		rr.Get("/calendar", h.calendar())

		rr.Patch("/{reminderID}", h.update())
		rr.Delete("/{reminderID}", h.delete())

		// Toggle completed <-> pending (idempotente de a pares)
		rr.Post("/{reminderID}/toggle", h.toggle())
	})
}

type handlers struct {
	svc  *Service
	pets PetNamer
	loc  *time.Location
}

// createReminderRequest: en /pets/{petID}/reminders el pet_id sale del path.
type createReminderRequest struct {
	PetID      string `json:"pet_id"`
	Title      string `json:"title"`
	Date       string `json:"date"` // YYYY-MM-DD
	Type       string `json:"type" enums:"vaccination,medication,grooming,vet_visit,other"`
	Recurrence string `json:"recurrence" enums:"none,daily,weekly,monthly"`
	Notes      string `json:"notes"`
}

type updateReminderRequest struct {
	Title      *string `json:"title"`
	Date       *string `json:"date"`
	Type       *string `json:"type"`
	Recurrence *string `json:"recurrence"`
	Notes      *string `json:"notes"`
}

type calendarDayResponse struct {
	Date      string `json:"date"`
	Reminders []View `json:"reminders"`
}

// create godoc
// @Summary Crear recordatorio
// @Description pet_id debe ser una mascota propia; date en formato YYYY-MM-DD. type por defecto other, recurrence por defecto none.
// @Tags reminders
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Param tz query string false "Zona horaria IANA para calcular el bucket"
// @Param payload body createReminderRequest true "Datos del recordatorio"
// @Success 201 {object} View
// @Failure 400 {object} map[string]any "validación"
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /reminders [post]
// @Router /pets/{petID}/reminders [post]
func (h *handlers) create(petFromPath bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		var req createReminderRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if petFromPath {
			req.PetID = chi.URLParam(r, "petID")
		}

		rem, err := h.svc.Create(r.Context(), claims.UserID, CreateInput{
			PetID:      req.PetID,
			Title:      req.Title,
			Date:       req.Date,
			Type:       req.Type,
			Recurrence: req.Recurrence,
			Notes:      req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, NewView(rem, h.petNames(r.Context(), claims.UserID)[rem.PetID], now))
	}
}

// list godoc
// @Summary Listar recordatorios
// @Description Ordenados por fecha ascendente. status acepta pending, completed o un bucket (today, upcoming, overdue, future).
// @Tags reminders
// @Produce json
// @Param status query string false "pending | completed | today | upcoming | overdue | future"
// @Param type query string false "Tipo de recordatorio"
// @Param pet_id query string false "Filtrar por mascota"
// @Param from query string false "Fecha mínima YYYY-MM-DD"
// @Param to query string false "Fecha máxima YYYY-MM-DD"
// @Param limit query int false "Máximo (1-500)"
// @Param tz query string false "Zona horaria IANA"
// @Success 200 {array} View
// @Failure 400 {object} map[string]string "filtros inválidos"
// @Router /reminders [get]
func (h *handlers) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := h.svc.List(r.Context(), claims.UserID, filter, now)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, NewViews(items, h.petNames(r.Context(), claims.UserID), now))
	}
}

// listByPet godoc
// @Summary Recordatorios de una mascota
// @Tags reminders
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} View
// @Failure 404 {object} map[string]string "pet not found"
// @Router /pets/{petID}/reminders [get]
func (h *handlers) listByPet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		items, err := h.svc.ByPet(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.Error(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, NewViews(items, h.petNames(r.Context(), claims.UserID), now))
	}
}

// upcoming godoc
// @Summary Próximos recordatorios
// @Description Solo incompletos, por fecha ascendente (incluye vencidos).
// @Tags reminders
// @Produce json
// @Param limit query int false "Máximo"
// @Param tz query string false "Zona horaria IANA"
// @Success 200 {array} View
// @Router /reminders/upcoming [get]
func (h *handlers) upcoming() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		items, err := h.svc.Upcoming(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 && n < len(items) {
			items = items[:n]
		}
		httpjson.Write(w, http.StatusOK, NewViews(items, h.petNames(r.Context(), claims.UserID), now))
	}
}

// calendar godoc
// @Summary Calendario mensual
// @Description Recordatorios del mes agrupados por día. month=YYYY-MM (por defecto el mes actual).
// @Tags reminders
// @Produce json
// @Param month query string false "YYYY-MM"
// @Param tz query string false "Zona horaria IANA"
// @Success 200 {array} calendarDayResponse
// @Failure 400 {object} map[string]string "month inválido"
// @Router /reminders/calendar [get]
func (h *handlers) calendar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		year, month := now.Year(), now.Month()
		if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
			t, err := time.Parse("2006-01", v)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, "month must be YYYY-MM")
				return
			}
			year, month = t.Year(), t.Month()
		}

		days, err := h.svc.Calendar(r.Context(), claims.UserID, year, month)
		if err != nil {
			writeError(w, r, err)
			return
		}

		names := h.petNames(r.Context(), claims.UserID)
		out := make([]calendarDayResponse, 0, len(days))
		for _, d := range days {
			out = append(out, calendarDayResponse{
				Date:      d.Date.Format(time.DateOnly),
				Reminders: NewViews(d.Reminders, names, now),
			})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// update godoc
// @Summary Editar recordatorio
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body updateReminderRequest true "Campos a modificar"
// @Success 200 {object} View
// @Failure 400 {object} map[string]any "validación"
// @Failure 404 {object} map[string]string "reminder not found"
// @Router /reminders/{reminderID} [patch]
func (h *handlers) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		var req updateReminderRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rem, err := h.svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "reminderID"), UpdateInput{
			Title:      req.Title,
			Date:       req.Date,
			Type:       req.Type,
			Recurrence: req.Recurrence,
			Notes:      req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, NewView(rem, h.petNames(r.Context(), claims.UserID)[rem.PetID], now))
	}
}

// toggle godoc
// @Summary Marcar/desmarcar completado
// @Tags reminders
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Success 200 {object} View
// @Failure 404 {object} map[string]string "reminder not found"
// @Router /reminders/{reminderID}/toggle [post]
func (h *handlers) toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		now, ok := h.now(w, r)
		if !ok {
			return
		}

		rem, err := h.svc.Toggle(r.Context(), claims.UserID, chi.URLParam(r, "reminderID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, NewView(rem, h.petNames(r.Context(), claims.UserID)[rem.PetID], now))
	}
}

// delete godoc
// @Summary Borrar recordatorio
// @Tags reminders
// @Param reminderID path string true "ID del recordatorio"
// @Success 204
// @Router /reminders/{reminderID} [delete]
func (h *handlers) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		if err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "reminderID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// now resuelve "hoy" con ?tz= o la zona por defecto. Escribe 400 si tz es inválido.
func (h *handlers) now(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	now, err := duedate.NowIn(h.svc.Now(), strings.TrimSpace(r.URL.Query().Get("tz")), h.loc)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return now, true
}

// petNames es best-effort: sin nombres la respuesta sigue siendo válida.
func (h *handlers) petNames(ctx context.Context, ownerUserID string) map[string]string {
	if h.pets == nil {
		return nil
	}
	names, err := h.pets.Names(ctx, ownerUserID)
	if err != nil {
		return nil
	}
	return names
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	filter := ListFilter{
		Status: strings.ToLower(strings.TrimSpace(q.Get("status"))),
		Type:   Type(strings.ToLower(strings.TrimSpace(q.Get("type")))),
		PetID:  strings.TrimSpace(q.Get("pet_id")),
	}

	switch filter.Status {
	case "", StatusPending, StatusCompleted,
		string(duedate.StatusToday), string(duedate.StatusUpcoming), string(duedate.StatusOverdue), string(duedate.StatusFuture):
	default:
		return ListFilter{}, errors.New("unknown status filter")
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return ListFilter{}, errors.New("limit must be between 1 and 500")
		}
		filter.Limit = n
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := duedate.ParseDate(v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := duedate.ParseDate(v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	return filter, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Invalid(w, err)
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "reminder not found")
	default:
		httpjson.Internal(w, r, err)
	}
}
