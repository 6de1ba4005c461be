package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rechargetravels/pkg/config"
	"rechargetravels/pkg/model"
)

const (
	CollectionName = "payout_schedules"

	defaultTimeout = 10 * time.Second
)

var (
	ErrNotFound = errors.New("payout schedule not found")
	// ErrDuplicate means a schedule already exists for the booking. The
	// unique index on booking_id enforces this; consumers treat it as
	// successful idempotent delivery.
	ErrDuplicate = errors.New("payout schedule already exists for booking")
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.PayoutSchedule) error
	FindByID(ctx context.Context, id string) (*model.PayoutSchedule, error)
	FindByBookingID(ctx context.Context, bookingID string) (*model.PayoutSchedule, error)
	FindAll(ctx context.Context, ownerID string) ([]*model.PayoutSchedule, error)
	UpdateInstallment(ctx context.Context, id, slot string, inst model.Installment) error
	WithholdByBookingID(ctx context.Context, bookingID, reason string) error
}

type mongoScheduleRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoScheduleRepository(cfg *config.Config) ScheduleRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoScheduleRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoScheduleRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultTimeout)
}

func (r *mongoScheduleRepository) Create(ctx context.Context, schedule *model.PayoutSchedule) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *mongoScheduleRepository) FindByID(ctx context.Context, id string) (*model.PayoutSchedule, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var schedule model.PayoutSchedule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoScheduleRepository) FindByBookingID(ctx context.Context, bookingID string) (*model.PayoutSchedule, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var schedule model.PayoutSchedule
	err := r.collection.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// FindAll lists schedules newest first; an empty ownerID lists all
// owners.
func (r *mongoScheduleRepository) FindAll(ctx context.Context, ownerID string) ([]*model.PayoutSchedule, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := bson.M{}
	if ownerID != "" {
		query["owner_id"] = ownerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*model.PayoutSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// UpdateInstallment replaces one installment slot ("first" or
// "second") of the schedule.
func (r *mongoScheduleRepository) UpdateInstallment(ctx context.Context, id, slot string, inst model.Installment) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{slot: inst}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// WithholdByBookingID marks all non-terminal installments of the
// booking's schedule as withheld.
func (r *mongoScheduleRepository) WithholdByBookingID(ctx context.Context, bookingID, reason string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	for _, slot := range []string{"first", "second"} {
		_, err := r.collection.UpdateOne(ctx,
			bson.M{
				"booking_id":    bookingID,
				slot + ".status": bson.M{"$in": []string{model.PayoutPending, model.PayoutProcessing}},
			},
			bson.M{"$set": bson.M{
				slot + ".status":          model.PayoutWithheld,
				slot + ".withhold_reason": reason,
			}},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
