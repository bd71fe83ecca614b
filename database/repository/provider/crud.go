package providerRepo

import (
	"context"
	"fmt"
	"time"

	"coachly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new provider document.
func (repo *MongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.providerColl.InsertOne(ctxWithTimeout, provider)
	if err != nil {
		return fmt.Errorf("error creating provider %s: %w", provider.ID, err)
	}
	return nil
}

// GetByID retrieves a provider by its ID.
func (repo *MongoProviderRepo) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	err := repo.providerColl.FindOne(ctxWithTimeout, bson.M{"id": providerID}).Decode(&provider)
	if err != nil {
		return nil, fmt.Errorf("provider %s not found: %w", providerID, err)
	}
	return &provider, nil
}

// Update replaces an existing provider document.
func (repo *MongoProviderRepo) Update(ctx context.Context, provider *models.Provider) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": provider.ID}
	update := bson.M{"$set": provider}
	_, err := repo.providerColl.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error updating provider %s: %w", provider.ID, err)
	}
	return nil
}

// Delete removes a provider document.
func (repo *MongoProviderRepo) Delete(ctx context.Context, providerID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.providerColl.DeleteOne(ctxWithTimeout, bson.M{"id": providerID})
	if err != nil {
		return fmt.Errorf("error deleting provider %s: %w", providerID, err)
	}
	return nil
}

// GetAvailability loads a provider's availability document. A provider
// with no document yet gets an empty one with all weekdays present.
func (repo *MongoProviderRepo) GetAvailability(ctx context.Context, providerID string) (*models.ProviderAvailability, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var availability models.ProviderAvailability
	err := repo.availabilityColl.FindOne(ctxWithTimeout, bson.M{"providerId": providerID}).Decode(&availability)
	if err == mongo.ErrNoDocuments {
		return &models.ProviderAvailability{
			ProviderID: providerID,
			Weekly:     models.NewWeeklyAvailability(),
			Custom:     models.CustomAvailability{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading availability for provider %s: %w", providerID, err)
	}
	if availability.Weekly == nil {
		availability.Weekly = models.NewWeeklyAvailability()
	}
	for _, day := range models.Weekdays {
		if _, ok := availability.Weekly[day]; !ok {
			availability.Weekly[day] = models.DaySchedule{}
		}
	}
	return &availability, nil
}

// SaveAvailability upserts a provider's availability document.
func (repo *MongoProviderRepo) SaveAvailability(ctx context.Context, availability *models.ProviderAvailability) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": availability.ProviderID}
	update := bson.M{"$set": availability}
	opts := options.Update().SetUpsert(true)
	_, err := repo.availabilityColl.UpdateOne(ctxWithTimeout, filter, update, opts)
	if err != nil {
		return fmt.Errorf("error saving availability for provider %s: %w", availability.ProviderID, err)
	}
	return nil
}
