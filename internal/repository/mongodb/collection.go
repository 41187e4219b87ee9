package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// newestFirst orders by createdAt DESC with _id DESC as the tiebreak.
// ObjectIDs grow with insertion, so equal timestamps still list deterministically.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// insertOne inserts doc and returns its generated ObjectID.
func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", coll.Name(), res.InsertedID)
	}
	return id, nil
}

// findMany runs filter with the given sort and decodes every document.
// Returns an empty slice (never nil) when nothing matches.
func findMany[T any](ctx context.Context, coll *mongo.Collection, filter, sort bson.D) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, optionsFind(sort))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return results, nil
}

// findOneByID fetches a single document by _id.
func findOneByID[T any](ctx context.Context, coll *mongo.Collection, resource string, id primitive.ObjectID) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Resource: resource, ID: id.Hex()}
		}
		return nil, fmt.Errorf("get %s: %w", resource, err)
	}
	return &doc, nil
}

// exists reports whether a document with _id is present.
func exists(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (bool, error) {
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, optionsIDOnly()).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("lookup in %s: %w", coll.Name(), err)
	}
	return true, nil
}

// setByID replaces the listed fields of one document.
func setByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, patch models.JSONMap) (*models.UpdateResult, error) {
	if _, ok := patch["_id"]; ok {
		return nil, domain.NewValidationError("the _id field cannot be updated")
	}

	res, err := coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: bson.M(patch)}})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	return &models.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// deleteByID removes one document and returns the deleted count.
func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (int64, error) {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return res.DeletedCount, nil
}
