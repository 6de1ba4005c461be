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

const (
	SitesCollection = "pilgrimage_sites"
	ToursCollection = "pilgrimage_tours"
	FAQsCollection  = "pilgrimage_faqs"
)

type SiteStore interface {
	List(ctx context.Context) ([]*model.PilgrimageSite, error)
	FindByID(ctx context.Context, id string) (*model.PilgrimageSite, error)
	Replace(ctx context.Context, id string, doc *model.PilgrimageSite) error
	Delete(ctx context.Context, id string) error
}

type TourStore interface {
	List(ctx context.Context) ([]*model.PilgrimageTour, error)
	FindByID(ctx context.Context, id string) (*model.PilgrimageTour, error)
	Replace(ctx context.Context, id string, doc *model.PilgrimageTour) error
	Delete(ctx context.Context, id string) error
}

type FAQStore interface {
	List(ctx context.Context) ([]*model.PilgrimageFAQ, error)
	FindByID(ctx context.Context, id string) (*model.PilgrimageFAQ, error)
	Replace(ctx context.Context, id string, doc *model.PilgrimageFAQ) error
	Delete(ctx context.Context, id string) error
}

// PilgrimageService manages the three pilgrimage content collections
// behind the spiritual-journeys section of the site.
type PilgrimageService interface {
	ListSites(ctx context.Context) ([]*model.PilgrimageSite, error)
	SaveSite(ctx context.Context, id string, site *model.PilgrimageSite) error
	DeleteSite(ctx context.Context, id string) error

	ListTours(ctx context.Context) ([]*model.PilgrimageTour, error)
	SaveTour(ctx context.Context, id string, tour *model.PilgrimageTour) error
	DeleteTour(ctx context.Context, id string) error

	ListFAQs(ctx context.Context) ([]*model.PilgrimageFAQ, error)
	SaveFAQ(ctx context.Context, id string, faq *model.PilgrimageFAQ) error
	DeleteFAQ(ctx context.Context, id string) error
}

type pilgrimageService struct {
	sites    SiteStore
	tours    TourStore
	faqs     FAQStore
	validate *validator.Validate
	clk      clock.Clock
	log      *logger.Logger
}

func NewPilgrimageService(sites SiteStore, tours TourStore, faqs FAQStore, clk clock.Clock, log *logger.Logger) PilgrimageService {
	return &pilgrimageService{
		sites:    sites,
		tours:    tours,
		faqs:     faqs,
		validate: validator.New(),
		clk:      clk,
		log:      log,
	}
}

func (s *pilgrimageService) ListSites(ctx context.Context) ([]*model.PilgrimageSite, error) {
	sites, err := s.sites.List(ctx)
	if err != nil {
		s.log.Error("Failed to list pilgrimage sites", "error", err)
		return nil, apperrors.Internal("Failed to list pilgrimage sites", err)
	}
	return sites, nil
}

// SaveSite creates or replaces a site. An empty id means create.
func (s *pilgrimageService) SaveSite(ctx context.Context, id string, site *model.PilgrimageSite) error {
	site.Name = sanitizer.NormalizeName(site.Name)

	now := s.clk.Now().UTC()
	if id == "" {
		site.ID = uuid.NewString()
		site.CreatedAt = now
	} else {
		existing, err := s.sites.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFoundWithID("Pilgrimage site", id)
			}
			return apperrors.Internal("Failed to load pilgrimage site", err)
		}
		site.ID = id
		site.CreatedAt = existing.CreatedAt
	}
	site.UpdatedAt = now

	if err := s.validate.Struct(site); err != nil {
		return apperrors.Validation("Pilgrimage site validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.sites.Replace(ctx, site.ID, site); err != nil {
		s.log.Error("Failed to save pilgrimage site", "id", site.ID, "error", err)
		return apperrors.Internal("Failed to save pilgrimage site", err)
	}

	s.log.Info("Pilgrimage site saved", "id", site.ID, "name", site.Name)
	return nil
}

func (s *pilgrimageService) DeleteSite(ctx context.Context, id string) error {
	if err := s.sites.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Pilgrimage site", id)
		}
		s.log.Error("Failed to delete pilgrimage site", "id", id, "error", err)
		return apperrors.Internal("Failed to delete pilgrimage site", err)
	}
	s.log.Info("Pilgrimage site deleted", "id", id)
	return nil
}

func (s *pilgrimageService) ListTours(ctx context.Context) ([]*model.PilgrimageTour, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		s.log.Error("Failed to list pilgrimage tours", "error", err)
		return nil, apperrors.Internal("Failed to list pilgrimage tours", err)
	}
	return tours, nil
}

func (s *pilgrimageService) SaveTour(ctx context.Context, id string, tour *model.PilgrimageTour) error {
	tour.Title = sanitizer.TrimAndNormalize(tour.Title)

	now := s.clk.Now().UTC()
	if id == "" {
		tour.ID = uuid.NewString()
		tour.CreatedAt = now
	} else {
		existing, err := s.tours.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFoundWithID("Pilgrimage tour", id)
			}
			return apperrors.Internal("Failed to load pilgrimage tour", err)
		}
		tour.ID = id
		tour.CreatedAt = existing.CreatedAt
	}
	tour.UpdatedAt = now

	if err := s.validate.Struct(tour); err != nil {
		return apperrors.Validation("Pilgrimage tour validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.tours.Replace(ctx, tour.ID, tour); err != nil {
		s.log.Error("Failed to save pilgrimage tour", "id", tour.ID, "error", err)
		return apperrors.Internal("Failed to save pilgrimage tour", err)
	}

	s.log.Info("Pilgrimage tour saved", "id", tour.ID, "title", tour.Title)
	return nil
}

func (s *pilgrimageService) DeleteTour(ctx context.Context, id string) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Pilgrimage tour", id)
		}
		s.log.Error("Failed to delete pilgrimage tour", "id", id, "error", err)
		return apperrors.Internal("Failed to delete pilgrimage tour", err)
	}
	s.log.Info("Pilgrimage tour deleted", "id", id)
	return nil
}

func (s *pilgrimageService) ListFAQs(ctx context.Context) ([]*model.PilgrimageFAQ, error) {
	faqs, err := s.faqs.List(ctx)
	if err != nil {
		s.log.Error("Failed to list pilgrimage FAQs", "error", err)
		return nil, apperrors.Internal("Failed to list pilgrimage FAQs", err)
	}
	return faqs, nil
}

func (s *pilgrimageService) SaveFAQ(ctx context.Context, id string, faq *model.PilgrimageFAQ) error {
	faq.Question = sanitizer.TrimAndNormalize(faq.Question)

	now := s.clk.Now().UTC()
	if id == "" {
		faq.ID = uuid.NewString()
		faq.CreatedAt = now
	} else {
		existing, err := s.faqs.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFoundWithID("Pilgrimage FAQ", id)
			}
			return apperrors.Internal("Failed to load pilgrimage FAQ", err)
		}
		faq.ID = id
		faq.CreatedAt = existing.CreatedAt
	}
	faq.UpdatedAt = now

	if err := s.validate.Struct(faq); err != nil {
		return apperrors.Validation("Pilgrimage FAQ validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.faqs.Replace(ctx, faq.ID, faq); err != nil {
		s.log.Error("Failed to save pilgrimage FAQ", "id", faq.ID, "error", err)
		return apperrors.Internal("Failed to save pilgrimage FAQ", err)
	}

	s.log.Info("Pilgrimage FAQ saved", "id", faq.ID)
	return nil
}

func (s *pilgrimageService) DeleteFAQ(ctx context.Context, id string) error {
	if err := s.faqs.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Pilgrimage FAQ", id)
		}
		s.log.Error("Failed to delete pilgrimage FAQ", "id", id, "error", err)
		return apperrors.Internal("Failed to delete pilgrimage FAQ", err)
	}
	s.log.Info("Pilgrimage FAQ deleted", "id", id)
	return nil
}
