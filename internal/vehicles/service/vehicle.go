package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"rechargetravels/internal/content/store"
	"rechargetravels/pkg/clock"
	apperrors "rechargetravels/pkg/errors"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
	"rechargetravels/pkg/sanitizer"
)

const CollectionName = "group_vehicles"

// VehicleStore is the persistence surface the service needs. The Mongo
// content store satisfies it.
type VehicleStore interface {
	List(ctx context.Context) ([]*model.GroupVehicle, error)
	FindByID(ctx context.Context, id string) (*model.GroupVehicle, error)
	Replace(ctx context.Context, id string, doc *model.GroupVehicle) error
	Delete(ctx context.Context, id string) error
}

type VehicleService interface {
	List(ctx context.Context) ([]*model.GroupVehicle, error)
	GetByID(ctx context.Context, id string) (*model.GroupVehicle, error)
	Create(ctx context.Context, vehicle *model.GroupVehicle) error
	Update(ctx context.Context, id string, vehicle *model.GroupVehicle) error
	Delete(ctx context.Context, id string) error
}

type vehicleService struct {
	store    VehicleStore
	validate *validator.Validate
	clk      clock.Clock
	log      *logger.Logger
}

func NewVehicleService(store VehicleStore, clk clock.Clock, log *logger.Logger) VehicleService {
	return &vehicleService{
		store:    store,
		validate: validator.New(),
		clk:      clk,
		log:      log,
	}
}

func (s *vehicleService) List(ctx context.Context) ([]*model.GroupVehicle, error) {
	vehicles, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("Failed to list vehicles", "error", err)
		return nil, apperrors.Internal("Failed to list vehicles", err)
	}
	return vehicles, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id string) (*model.GroupVehicle, error) {
	vehicle, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Vehicle", id)
		}
		return nil, apperrors.Internal("Failed to load vehicle", err)
	}
	return vehicle, nil
}

func (s *vehicleService) Create(ctx context.Context, vehicle *model.GroupVehicle) error {
	vehicle.Name = sanitizer.NormalizeName(vehicle.Name)

	if err := s.validate.Struct(vehicle); err != nil {
		return apperrors.Validation("Vehicle validation failed", map[string]any{"error": err.Error()})
	}

	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	now := s.clk.Now().UTC()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if err := s.store.Replace(ctx, vehicle.ID, vehicle); err != nil {
		s.log.Error("Failed to create vehicle", "error", err)
		return apperrors.Internal("Failed to create vehicle", err)
	}

	s.log.Info("Vehicle created", "id", vehicle.ID, "name", vehicle.Name)
	return nil
}

// Update replaces the stored document wholesale, keeping the original
// creation timestamp.
func (s *vehicleService) Update(ctx context.Context, id string, vehicle *model.GroupVehicle) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	vehicle.ID = id
	vehicle.Name = sanitizer.NormalizeName(vehicle.Name)
	vehicle.CreatedAt = existing.CreatedAt
	vehicle.UpdatedAt = s.clk.Now().UTC()

	if err := s.validate.Struct(vehicle); err != nil {
		return apperrors.Validation("Vehicle validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.store.Replace(ctx, id, vehicle); err != nil {
		s.log.Error("Failed to update vehicle", "id", id, "error", err)
		return apperrors.Internal("Failed to update vehicle", err)
	}

	s.log.Info("Vehicle updated", "id", id)
	return nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Vehicle", id)
		}
		s.log.Error("Failed to delete vehicle", "id", id, "error", err)
		return apperrors.Internal("Failed to delete vehicle", err)
	}

	s.log.Info("Vehicle deleted", "id", id)
	return nil
}
