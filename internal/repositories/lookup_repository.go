package repositories

import (
	"context"
	"time"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/database"
	"radarcontacts/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const lookupsCollection = "lookups"

type lookupRepository struct {
	db *mongo.Database
}

func NewLookupRepository() LookupRepository {
	return &lookupRepository{
		db: database.DB,
	}
}

func (r *lookupRepository) SaveBatch(ctx context.Context, batch *models.LookupBatch) error {
	collection := r.db.Collection(lookupsCollection)
	start := time.Now()
	_, err := collection.InsertOne(ctx, batch)
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("insert", lookupsCollection).Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", lookupsCollection).Inc()
		return err
	}
	return nil
}

func (r *lookupRepository) FindRecent(ctx context.Context, limit int) ([]models.LookupBatch, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	collection := r.db.Collection(lookupsCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	start := time.Now()
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("find", lookupsCollection).Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", lookupsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var batches []models.LookupBatch
	if err := cursor.All(ctx, &batches); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("decode", lookupsCollection).Inc()
		return nil, err
	}
	return batches, nil
}
