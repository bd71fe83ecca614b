package providerRepo

import (
	"context"

	"coachly/models"
)

// ProviderRepository is the durable store for providers and the
// availability documents they publish.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	Update(ctx context.Context, provider *models.Provider) error
	Delete(ctx context.Context, providerID string) error

	GetAvailability(ctx context.Context, providerID string) (*models.ProviderAvailability, error)
	SaveAvailability(ctx context.Context, availability *models.ProviderAvailability) error
}
