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

const CollectionName = "hero_slides"

type SlideStore interface {
	List(ctx context.Context) ([]*model.HeroSlide, error)
	FindByID(ctx context.Context, id string) (*model.HeroSlide, error)
	Replace(ctx context.Context, id string, doc *model.HeroSlide) error
	Delete(ctx context.Context, id string) error
}

type SlideService interface {
	List(ctx context.Context) ([]*model.HeroSlide, error)
	GetByID(ctx context.Context, id string) (*model.HeroSlide, error)
	Create(ctx context.Context, slide *model.HeroSlide) error
	Update(ctx context.Context, id string, slide *model.HeroSlide) error
	Delete(ctx context.Context, id string) error
}

type slideService struct {
	store    SlideStore
	validate *validator.Validate
	clk      clock.Clock
	log      *logger.Logger
}

func NewSlideService(store SlideStore, clk clock.Clock, log *logger.Logger) SlideService {
	return &slideService{
		store:    store,
		validate: validator.New(),
		clk:      clk,
		log:      log,
	}
}

// List returns slides in carousel order; the store sorts by the order
// field.
func (s *slideService) List(ctx context.Context) ([]*model.HeroSlide, error) {
	slides, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("Failed to list hero slides", "error", err)
		return nil, apperrors.Internal("Failed to list hero slides", err)
	}
	return slides, nil
}

func (s *slideService) GetByID(ctx context.Context, id string) (*model.HeroSlide, error) {
	slide, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Hero slide", id)
		}
		return nil, apperrors.Internal("Failed to load hero slide", err)
	}
	return slide, nil
}

func (s *slideService) Create(ctx context.Context, slide *model.HeroSlide) error {
	slide.Title = sanitizer.TrimAndNormalize(slide.Title)

	if err := s.validate.Struct(slide); err != nil {
		return apperrors.Validation("Hero slide validation failed", map[string]any{"error": err.Error()})
	}

	if slide.ID == "" {
		slide.ID = uuid.NewString()
	}
	now := s.clk.Now().UTC()
	slide.CreatedAt = now
	slide.UpdatedAt = now

	if err := s.store.Replace(ctx, slide.ID, slide); err != nil {
		s.log.Error("Failed to create hero slide", "error", err)
		return apperrors.Internal("Failed to create hero slide", err)
	}

	s.log.Info("Hero slide created", "id", slide.ID, "order", slide.Order)
	return nil
}

func (s *slideService) Update(ctx context.Context, id string, slide *model.HeroSlide) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	slide.ID = id
	slide.Title = sanitizer.TrimAndNormalize(slide.Title)
	slide.CreatedAt = existing.CreatedAt
	slide.UpdatedAt = s.clk.Now().UTC()

	if err := s.validate.Struct(slide); err != nil {
		return apperrors.Validation("Hero slide validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.store.Replace(ctx, id, slide); err != nil {
		s.log.Error("Failed to update hero slide", "id", id, "error", err)
		return apperrors.Internal("Failed to update hero slide", err)
	}

	s.log.Info("Hero slide updated", "id", id)
	return nil
}

func (s *slideService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Hero slide", id)
		}
		s.log.Error("Failed to delete hero slide", "id", id, "error", err)
		return apperrors.Internal("Failed to delete hero slide", err)
	}

	s.log.Info("Hero slide deleted", "id", id)
	return nil
}
