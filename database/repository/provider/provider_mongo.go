package providerRepo

import (
	"coachly/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository backed by MongoDB.
type MongoProviderRepo struct {
	providerColl     *mongo.Collection
	availabilityColl *mongo.Collection
}

// NewMongoProviderRepo returns a repository over the providers and
// availability collections.
func NewMongoProviderRepo() *MongoProviderRepo {
	return &MongoProviderRepo{
		providerColl:     database.Collection("providers"),
		availabilityColl: database.Collection("availability"),
	}
}
