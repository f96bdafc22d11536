package posts

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/users"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
)

// ActorResolver resuelve nombre y rol del usuario autenticado.
type ActorResolver interface {
	Actor(ctx context.Context, id string) (users.User, error)
}

func RegisterRoutes(r chi.Router, svc *Service, actors ActorResolver) {
	h := handlers{svc: svc, actors: actors}

	r.Get("/posts", h.feed)
	r.Post("/posts", h.create)
	r.Get("/posts/pending", h.pending)

	r.Get("/posts/{postID}", h.get)
	r.Patch("/posts/{postID}", h.edit)
	r.Delete("/posts/{postID}", h.remove)

	r.Post("/posts/{postID}/like", h.like)
	r.Delete("/posts/{postID}/like", h.unlike)

	r.Post("/posts/{postID}/comments", h.addComment)
	r.Delete("/posts/{postID}/comments/{commentID}", h.deleteComment)

	r.Post("/posts/{postID}/moderation", h.moderate)
}

type handlers struct {
	svc    *Service
	actors ActorResolver
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category" enums:"general,advice,question,adoption,health,tips"`
}

type editPostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type moderationRequest struct {
	Decision Decision `json:"decision" enums:"approve,reject"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type postResponse struct {
	ID         string            `json:"id"`
	AuthorID   string            `json:"author_id"`
	AuthorName string            `json:"author_name"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Category   Category          `json:"category"`
	Likes      int               `json:"likes"`
	Comments   []commentResponse `json:"comments"`
	Views      int               `json:"views"`
	Status     Status            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// feed godoc
// @Summary Feed de la comunidad
// @Description Posts aprobados más los propios. sort: recent (default), popular o discussed.
// @Tags posts
// @Produce json
// @Param category query string false "Categoría"
// @Param q query string false "Texto a buscar en título o contenido"
// @Param sort query string false "recent|popular|discussed"
// @Param author query string false "ID del autor"
// @Success 200 {array} postResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /posts [get]
func (h handlers) feed(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	sortMode := strings.TrimSpace(q.Get("sort"))
	switch sortMode {
	case "", SortRecent, SortPopular, SortDiscussed:
	default:
		httpjson.Error(w, http.StatusBadRequest, "sort must be recent, popular or discussed")
		return
	}

	items, err := h.svc.Feed(r.Context(), actor, FeedFilter{
		Category: Category(strings.ToLower(strings.TrimSpace(q.Get("category")))),
		Query:    q.Get("q"),
		Sort:     sortMode,
		AuthorID: strings.TrimSpace(q.Get("author")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponses(items))
}

// create godoc
// @Summary Publicar post
// @Description Queda pending si la moderación está activa para el usuario.
// @Tags posts
// @Accept json
// @Produce json
// @Param payload body createPostRequest true "Post"
// @Success 201 {object} postResponse
// @Failure 400 {object} map[string]any "validación"
// @Router /posts [post]
func (h handlers) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req createPostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.svc.Create(r.Context(), actor, CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, toPostResponse(p))
}

// pending godoc
// @Summary Cola de moderación
// @Tags posts
// @Produce json
// @Success 200 {array} postResponse
// @Failure 403 {object} map[string]string "forbidden"
// @Router /posts/pending [get]
func (h handlers) pending(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	items, err := h.svc.Pending(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponses(items))
}

// get godoc
// @Summary Ver post
// @Description Suma una vista.
// @Tags posts
// @Produce json
// @Param postID path string true "ID del post"
// @Success 200 {object} postResponse
// @Failure 404 {object} map[string]string "post not found"
// @Router /posts/{postID} [get]
func (h handlers) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), actor, chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponse(p))
}

// edit godoc
// @Summary Editar post
// @Tags posts
// @Accept json
// @Produce json
// @Param postID path string true "ID del post"
// @Param payload body editPostRequest true "Campos a modificar"
// @Success 200 {object} postResponse
// @Failure 403 {object} map[string]string "forbidden"
// @Failure 404 {object} map[string]string "post not found"
// @Router /posts/{postID} [patch]
func (h handlers) edit(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req editPostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.svc.Edit(r.Context(), actor, chi.URLParam(r, "postID"), EditInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponse(p))
}

// remove godoc
// @Summary Borrar post
// @Tags posts
// @Param postID path string true "ID del post"
// @Success 204
// @Failure 403 {object} map[string]string "forbidden"
// @Router /posts/{postID} [delete]
func (h handlers) remove(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), actor, chi.URLParam(r, "postID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// like godoc
// @Summary Like
// @Tags posts
// @Produce json
// @Param postID path string true "ID del post"
// @Success 200 {object} postResponse
// @Failure 404 {object} map[string]string "post not found"
// @Router /posts/{postID}/like [post]
func (h handlers) like(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Like(r.Context(), actor, chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponse(p))
}

// unlike godoc
// @Summary Quitar like
// @Description Solo disponible con DEDUP_LIKES activo; si no responde 409.
// @Tags posts
// @Produce json
// @Param postID path string true "ID del post"
// @Success 200 {object} postResponse
// @Failure 409 {object} map[string]string "conflict"
// @Router /posts/{postID}/like [delete]
func (h handlers) unlike(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Unlike(r.Context(), actor, chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponse(p))
}

// addComment godoc
// @Summary Comentar
// @Description Un texto vacío no agrega nada y devuelve el post sin cambios.
// @Tags posts
// @Accept json
// @Produce json
// @Param postID path string true "ID del post"
// @Param payload body commentRequest true "Comentario"
// @Success 201 {object} postResponse
// @Failure 404 {object} map[string]string "post not found"
// @Router /posts/{postID}/comments [post]
func (h handlers) addComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.svc.AddComment(r.Context(), actor, chi.URLParam(r, "postID"), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, toPostResponse(p))
}

// deleteComment godoc
// @Summary Borrar comentario
// @Tags posts
// @Param postID path string true "ID del post"
// @Param commentID path string true "ID del comentario"
// @Success 204
// @Failure 403 {object} map[string]string "forbidden"
// @Router /posts/{postID}/comments/{commentID} [delete]
func (h handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	err := h.svc.DeleteComment(r.Context(), actor, chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// moderate godoc
// @Summary Moderar post
// @Tags posts
// @Accept json
// @Produce json
// @Param postID path string true "ID del post"
// @Param payload body moderationRequest true "approve o reject"
// @Success 200 {object} postResponse
// @Failure 403 {object} map[string]string "forbidden"
// @Router /posts/{postID}/moderation [post]
func (h handlers) moderate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req moderationRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.svc.Moderate(r.Context(), actor, chi.URLParam(r, "postID"), req.Decision)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toPostResponse(p))
}

func (h handlers) actor(w http.ResponseWriter, r *http.Request) (Actor, bool) {
	claims, ok := middleware.RequireUser(w, r)
	if !ok {
		return Actor{}, false
	}
	u, err := h.actors.Actor(r.Context(), claims.UserID)
	if err != nil {
		httpjson.Internal(w, r, err)
		return Actor{}, false
	}
	return Actor{ID: u.ID, Name: u.DisplayName, Role: u.Role}, true
}

func toPostResponse(p Post) postResponse {
	comments := make([]commentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, commentResponse{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt,
		})
	}
	return postResponse{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Title:      p.Title,
		Content:    p.Content,
		Category:   p.Category,
		Likes:      p.Likes,
		Comments:   comments,
		Views:      p.Views,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toPostResponses(items []Post) []postResponse {
	out := make([]postResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPostResponse(p))
	}
	return out
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Invalid(w, err)
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "post not found")
	case errors.Is(err, ErrForbidden):
		httpjson.Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ErrConflict):
		httpjson.Error(w, http.StatusConflict, err.Error())
	default:
		httpjson.Internal(w, r, err)
	}
}
