package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingserrors "rechargetravels/internal/bookings/errors"
	"rechargetravels/pkg/config"
	"rechargetravels/pkg/model"
)

// Collections holding the entities bookings reference by id.
const (
	UsersCollection   = "users"
	DriversCollection = "drivers"
	HotelsCollection  = "hotels"
	ToursCollection   = "tour_packages"
)

// RelatedLookup resolves the display projections the enrichment step
// attaches to bookings. A missing document surfaces as ErrNotFound.
type RelatedLookup interface {
	User(ctx context.Context, id string) (*model.UserSummary, error)
	Driver(ctx context.Context, id string) (*model.DriverSummary, error)
	Hotel(ctx context.Context, id string) (*model.HotelSummary, error)
	Tour(ctx context.Context, id string) (*model.TourSummary, error)
}

type mongoRelatedLookup struct {
	cfg *config.Config
	db  *mongo.Database
}

func NewMongoRelatedLookup(cfg *config.Config) RelatedLookup {
	return &mongoRelatedLookup{
		cfg: cfg,
		db:  cfg.Client.Mongo.Database(cfg.MongoDatabaseName),
	}
}

func (r *mongoRelatedLookup) User(ctx context.Context, id string) (*model.UserSummary, error) {
	var out model.UserSummary
	if err := r.findProjected(ctx, UsersCollection, id,
		bson.D{{Key: "email", Value: 1}, {Key: "full_name", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoRelatedLookup) Driver(ctx context.Context, id string) (*model.DriverSummary, error) {
	var out model.DriverSummary
	if err := r.findProjected(ctx, DriversCollection, id,
		bson.D{{Key: "name", Value: 1}, {Key: "phone", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoRelatedLookup) Hotel(ctx context.Context, id string) (*model.HotelSummary, error) {
	var out model.HotelSummary
	if err := r.findProjected(ctx, HotelsCollection, id,
		bson.D{{Key: "name", Value: 1}, {Key: "location", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoRelatedLookup) Tour(ctx context.Context, id string) (*model.TourSummary, error) {
	var out model.TourSummary
	if err := r.findProjected(ctx, ToursCollection, id,
		bson.D{{Key: "name", Value: 1}, {Key: "duration", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoRelatedLookup) findProjected(ctx context.Context, collection, id string, projection bson.D, out any) error {
	ctx, cancel := context.WithTimeout(ctx, r.lookupTimeout())
	defer cancel()

	err := r.db.Collection(collection).
		FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(projection)).
		Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return bookingserrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *mongoRelatedLookup) lookupTimeout() time.Duration {
	return r.cfg.ReadTimeout
}
