package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskplanner/entities"
	"taskplanner/pkg/plan/repository"
	"taskplanner/pkg/plan/types"
)

const PlansCollection = "plans"

type mongoRepo struct{ coll *mongo.Collection }

// NewMongo stores plan records as documents in the "plans" collection.
func NewMongo(db *mongo.Database) repository.PlanRepository {
	if db == nil {
		return &mongoRepo{}
	}
	return &mongoRepo{coll: db.Collection(PlansCollection)}
}

func (r *mongoRepo) Insert(ctx context.Context, p *entities.PlanRecord) (string, error) {
	if r.coll == nil {
		return "", fmt.Errorf("mongo client is not initialized: %w", types.ErrStorageUnavailable)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if connectionFailure(err) {
			return "", fmt.Errorf("insert plan: %v: %w", err, types.ErrStorageUnavailable)
		}
		return "", fmt.Errorf("insert plan: %w", err)
	}
	id := insertedID(res.InsertedID)
	p.ID = id
	return id, nil
}

func insertedID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}

func connectionFailure(err error) bool {
	return errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err)
}
