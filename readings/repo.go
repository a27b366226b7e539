package readings

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/insulinpump/readings/store"
)

const (
	readingsCollectionName = "readings"
)

// Listings are returned most recent first.
var timestampSort = store.Sort{Attribute: "timestamp", Ascending: false}

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/insulinpump/readings/readings=readings.go MockRepository

// Repository is the persistence contract for readings. It owns the reading
// lifecycle; enrichment never touches storage.
type Repository interface {
	Create(ctx context.Context, reading Reading) (*Reading, error)
	Get(ctx context.Context, id string) (*Reading, error)
	Update(ctx context.Context, id string, reading Reading) (*Reading, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, pagination store.Pagination) ([]*Reading, error)
	ListByDeviceId(ctx context.Context, deviceId uint64) ([]*Reading, error)
	ListByDeviceIdAndTimeRange(ctx context.Context, deviceId uint64, start, end time.Time) ([]*Reading, error)
	ListByStatus(ctx context.Context, status ReadingStatus) ([]*Reading, error)
	ListRequiringAction(ctx context.Context) ([]*Reading, error)
	GetLatestByDeviceId(ctx context.Context, deviceId uint64) (*Reading, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(readingsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "deviceId", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().
				SetName("DeviceReadings"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("ReadingStatus"),
		},
		{
			Keys: bson.D{
				{Key: "requiresAction", Value: 1},
			},
			Options: options.Index().
				SetName("ReadingsRequiringAction"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, reading Reading) (*Reading, error) {
	id := primitive.NewObjectID()
	reading.Id = &id

	if _, err := r.collection.InsertOne(ctx, reading); err != nil {
		return nil, fmt.Errorf("error creating reading: %w", err)
	}

	return &reading, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Reading, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	reading := &Reading{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(reading)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return reading, nil
}

func (r *repository) Update(ctx context.Context, id string, reading Reading) (*Reading, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	reading.Id = &objId

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	updated := &Reading{}
	err = r.collection.FindOneAndReplace(ctx, bson.M{"_id": objId}, reading, opts).Decode(updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error updating reading: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context, pagination store.Pagination) ([]*Reading, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: timestampSort.Attribute, Value: timestampSort.Order()}})

	return r.find(ctx, bson.M{}, opts)
}

func (r *repository) ListByDeviceId(ctx context.Context, deviceId uint64) ([]*Reading, error) {
	return r.find(ctx, bson.M{"deviceId": deviceId}, nil)
}

func (r *repository) ListByDeviceIdAndTimeRange(ctx context.Context, deviceId uint64, start, end time.Time) ([]*Reading, error) {
	selector := bson.M{
		"deviceId": deviceId,
		"timestamp": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	return r.find(ctx, selector, nil)
}

func (r *repository) ListByStatus(ctx context.Context, status ReadingStatus) ([]*Reading, error) {
	return r.find(ctx, bson.M{"status": status}, nil)
}

func (r *repository) ListRequiringAction(ctx context.Context) ([]*Reading, error) {
	return r.find(ctx, bson.M{"requiresAction": true}, nil)
}

func (r *repository) GetLatestByDeviceId(ctx context.Context, deviceId uint64) (*Reading, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: timestampSort.Attribute, Value: timestampSort.Order()}})

	reading := &Reading{}
	err := r.collection.FindOne(ctx, bson.M{"deviceId": deviceId}, opts).Decode(reading)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return reading, nil
}

func (r *repository) find(ctx context.Context, selector bson.M, opts *options.FindOptions) ([]*Reading, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, selector, opts)
	} else {
		cursor, err = r.collection.Find(ctx, selector)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing readings: %w", err)
	}

	var readings []*Reading
	if err = cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("error decoding readings list: %w", err)
	}

	return readings, nil
}
