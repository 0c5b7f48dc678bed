package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripgen/internal/types"
)

// CollectionName is the Mongo collection holding saved trips.
const CollectionName = "aitrips"

// codeNamespaceExists is returned by createCollection when the collection is already there.
const codeNamespaceExists = 48

type tripDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	types.Itinerary `bson:",inline"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

func (d tripDocument) toTrip() Trip {
	t := Trip{
		ID:        d.ID.Hex(),
		Itinerary: d.Itinerary,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	normalize(&t)
	return t
}

// MongoStore keeps trips as documents in a single collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(CollectionName)}
}

func (s *MongoStore) Insert(ctx context.Context, t *Trip) error {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return fmt.Errorf("trip id: %w", err)
	}
	_, err = s.coll.InsertOne(ctx, tripDocument{
		ID:        oid,
		Itinerary: t.Itinerary,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	})
	return err
}

func (s *MongoStore) List(ctx context.Context) ([]Trip, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []tripDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Trip, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toTrip())
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) (*Trip, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc tripDocument
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t := doc.toTrip()
	return &t, nil
}

// EnsureMongoSchema creates the trips collection with a $jsonSchema validator,
// or refreshes the validator when the collection already exists.
func EnsureMongoSchema(ctx context.Context, db *mongo.Database) error {
	validator := bson.M{"$jsonSchema": tripJSONSchema}
	err := db.CreateCollection(ctx, CollectionName, options.CreateCollection().SetValidator(validator))
	if err == nil {
		return nil
	}
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != codeNamespaceExists {
		return fmt.Errorf("create collection %s: %w", CollectionName, err)
	}
	if err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: CollectionName},
		{Key: "validator", Value: validator},
	}).Err(); err != nil {
		return fmt.Errorf("update validator on %s: %w", CollectionName, err)
	}
	return nil
}

var stringArray = bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}

var tripJSONSchema = bson.M{
	"bsonType": "object",
	"required": bson.A{
		"destination", "best_time", "duration_days", "top_attractions",
		"sample_itinerary", "estimated_budget_inr", "local_tips", "createdAt", "updatedAt",
	},
	"properties": bson.M{
		"destination":     bson.M{"bsonType": "string", "minLength": 1},
		"best_time":       bson.M{"bsonType": "string", "minLength": 1},
		"duration_days":   bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
		"top_attractions": stringArray,
		"sample_itinerary": bson.M{
			"bsonType": "array",
			"items": bson.M{
				"bsonType": "object",
				"required": bson.A{"day", "plan"},
				"properties": bson.M{
					"day":  bson.M{"bsonType": bson.A{"int", "long"}},
					"plan": bson.M{"bsonType": "string"},
				},
			},
		},
		"estimated_budget_inr": bson.M{
			"bsonType": "object",
			"required": bson.A{"low", "mid", "high"},
			"properties": bson.M{
				"low":  bson.M{"bsonType": "number"},
				"mid":  bson.M{"bsonType": "number"},
				"high": bson.M{"bsonType": "number"},
			},
		},
		"local_tips": stringArray,
		"createdAt":  bson.M{"bsonType": "date"},
		"updatedAt":  bson.M{"bsonType": "date"},
	},
}
