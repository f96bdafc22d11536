package memory

import (
	"context"
	"strings"

	"pet-care-hub/internal/domain/reports"
)

type reportRepo struct {
	s *Store
}

func (r *reportRepo) Create(ctx context.Context, rep reports.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(rep.ID) == "" {
		return errIDRequired
	}
	r.s.reports[rep.ID] = rep
	return nil
}

func (r *reportRepo) Update(ctx context.Context, rep reports.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reports[rep.ID]; !ok {
		return reports.ErrNotFound
	}
	r.s.reports[rep.ID] = rep
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return reports.Report{}, reports.ErrNotFound
	}
	return rep, nil
}

func (r *reportRepo) List(ctx context.Context, status reports.Status) ([]reports.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]reports.Report, 0)
	for _, rep := range r.s.reports {
		if status == "" || rep.Status == status {
			out = append(out, rep)
		}
	}
	return out, nil
}
