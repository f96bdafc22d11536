package reports

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	Update(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	// List filtra por estado si status != "".
	List(ctx context.Context, status Status) ([]Report, error)
}
