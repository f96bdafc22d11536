package capabilities

import "context"

// Features conocidas por el motor.
const (
	// FeaturePostModeration: si está activa, los posts nuevos de ese usuario quedan pending.
	FeaturePostModeration = "community:moderation"
)

type CapabilityCheck struct {
	UserID  string
	Feature string
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
