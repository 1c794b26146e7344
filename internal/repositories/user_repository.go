package repositories

import (
	"context"
	"time"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/cache"
	"radarcontacts/pkg/database"
	"radarcontacts/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

type userRepository struct {
	db *mongo.Database
}

func NewUserRepository() UserRepository {
	return &userRepository{
		db: database.DB,
	}
}

// userCacheTTL is short: a stale read only delays seeing a password change.
const userCacheTTL = 15 * time.Minute

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := cache.Get(ctx, cache.UserKey(email), &user); err == nil {
		metrics.CacheHitsTotal.Inc()
		return &user, nil
	}
	metrics.CacheMissesTotal.Inc()

	collection := r.db.Collection(usersCollection)
	start := time.Now()
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("find_one", usersCollection).Observe(duration)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", usersCollection).Inc()
		}
		return nil, err
	}

	// Best effort; a cache write failure never fails the read.
	cache.Set(ctx, cache.UserKey(email), &user, userCacheTTL)
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	collection := r.db.Collection(usersCollection)
	start := time.Now()
	_, err := collection.InsertOne(ctx, user)
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("insert", usersCollection).Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", usersCollection).Inc()
		return err
	}
	return nil
}
