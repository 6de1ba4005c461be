package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"rechargetravels/internal/content/store"
	"rechargetravels/pkg/clock"
	apperrors "rechargetravels/pkg/errors"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
	"rechargetravels/pkg/sanitizer"
)

const CollectionName = "family_activities"

type ActivityStore interface {
	List(ctx context.Context) ([]*model.FamilyActivity, error)
	FindByID(ctx context.Context, id string) (*model.FamilyActivity, error)
	Replace(ctx context.Context, id string, doc *model.FamilyActivity) error
	Delete(ctx context.Context, id string) error
}

type ActivityService interface {
	List(ctx context.Context) ([]*model.FamilyActivity, error)
	GetByID(ctx context.Context, id string) (*model.FamilyActivity, error)
	Create(ctx context.Context, activity *model.FamilyActivity) error
	Update(ctx context.Context, id string, activity *model.FamilyActivity) error
	Delete(ctx context.Context, id string) error
}

type activityService struct {
	store    ActivityStore
	validate *validator.Validate
	clk      clock.Clock
	log      *logger.Logger
}

func NewActivityService(store ActivityStore, clk clock.Clock, log *logger.Logger) ActivityService {
	return &activityService{
		store:    store,
		validate: validator.New(),
		clk:      clk,
		log:      log,
	}
}

func (s *activityService) List(ctx context.Context) ([]*model.FamilyActivity, error) {
	activities, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("Failed to list family activities", "error", err)
		return nil, apperrors.Internal("Failed to list family activities", err)
	}
	return activities, nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*model.FamilyActivity, error) {
	activity, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Family activity", id)
		}
		return nil, apperrors.Internal("Failed to load family activity", err)
	}
	return activity, nil
}

func (s *activityService) Create(ctx context.Context, activity *model.FamilyActivity) error {
	s.normalize(activity)

	if err := s.validate.Struct(activity); err != nil {
		return apperrors.Validation("Family activity validation failed", map[string]any{"error": err.Error()})
	}

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	now := s.clk.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if err := s.store.Replace(ctx, activity.ID, activity); err != nil {
		s.log.Error("Failed to create family activity", "error", err)
		return apperrors.Internal("Failed to create family activity", err)
	}

	s.log.Info("Family activity created", "id", activity.ID, "slug", activity.Slug)
	return nil
}

func (s *activityService) Update(ctx context.Context, id string, activity *model.FamilyActivity) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	activity.ID = id
	s.normalize(activity)
	activity.CreatedAt = existing.CreatedAt
	activity.UpdatedAt = s.clk.Now().UTC()

	if err := s.validate.Struct(activity); err != nil {
		return apperrors.Validation("Family activity validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.store.Replace(ctx, id, activity); err != nil {
		s.log.Error("Failed to update family activity", "id", id, "error", err)
		return apperrors.Internal("Failed to update family activity", err)
	}

	s.log.Info("Family activity updated", "id", id)
	return nil
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Family activity", id)
		}
		s.log.Error("Failed to delete family activity", "id", id, "error", err)
		return apperrors.Internal("Failed to delete family activity", err)
	}

	s.log.Info("Family activity deleted", "id", id)
	return nil
}

func (s *activityService) normalize(activity *model.FamilyActivity) {
	activity.Title = sanitizer.TrimAndNormalize(activity.Title)
	if activity.Slug == "" {
		activity.Slug = Slugify(activity.Title)
	}
}

// Slugify lowercases the title and joins word runs with hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastWasHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastWasHyphen = false
		default:
			if !lastWasHyphen {
				b.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
