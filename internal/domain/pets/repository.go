package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)

	// DeleteCascade borra la mascota y todos sus recordatorios en una sola operación.
	// deleted=false si no existía (o no era del owner).
	DeleteCascade(ctx context.Context, ownerUserID, id string) (deleted bool, err error)
}
