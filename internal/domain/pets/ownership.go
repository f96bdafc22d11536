package pets

import "context"

// OwnerOf expone el ownerUserID de una mascota.
// reminders lo usa para validar petId sin importar este paquete completo.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}

// Names devuelve petID -> nombre para las mascotas del owner (para enriquecer listados).
func (s *Service) Names(ctx context.Context, ownerUserID string) (map[string]string, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, p := range items {
		out[p.ID] = p.Name
	}
	return out, nil
}
