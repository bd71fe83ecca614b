package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"coachly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByProvider returns all bookings owned by a provider, newest first.
func (repo *MongoBookingRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"providerId": providerID})
}

// GetByProviderAndDate returns a provider's bookings on one date.
func (repo *MongoBookingRepo) GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"providerId": providerID, "date": date})
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
