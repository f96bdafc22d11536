package posts

import "context"

type Repository interface {
	Create(ctx context.Context, p Post) error
	// Update persiste título, contenido, categoría, estado y updated_at.
	Update(ctx context.Context, p Post) error
	// GetByID incluye los comentarios en orden de inserción.
	GetByID(ctx context.Context, id string) (Post, error)
	List(ctx context.Context) ([]Post, error)
	Delete(ctx context.Context, id string) (bool, error)

	// Contadores atómicos.
	IncrementLikes(ctx context.Context, id string, delta int) error
	IncrementViews(ctx context.Context, id string) error

	// Registro de likes por usuario (solo con dedup activo).
	AddLike(ctx context.Context, postID, userID string) (added bool, err error)
	RemoveLike(ctx context.Context, postID, userID string) (removed bool, err error)

	AddComment(ctx context.Context, c Comment) error
	DeleteComment(ctx context.Context, postID, commentID string) (bool, error)
}
