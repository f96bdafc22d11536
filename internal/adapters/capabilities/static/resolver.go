// Package static resuelve capabilities desde configuración local (sin upstream).
package static

import (
	"context"

	"pet-care-hub/internal/ports/capabilities"
)

// Resolver: cada feature está prendida o apagada para todos los usuarios.
type Resolver struct {
	features map[string]bool
}

func NewResolver(features map[string]bool) *Resolver {
	cp := make(map[string]bool, len(features))
	for k, v := range features {
		cp[k] = v
	}
	return &Resolver{features: cp}
}

func (r *Resolver) HasFeature(_ context.Context, in capabilities.CapabilityCheck) (bool, error) {
	return r.features[in.Feature], nil
}
