package service

import (
	"context"
	"testing"
	"time"

	"rechargetravels/internal/content/store"
	"rechargetravels/pkg/clock"
	apperrors "rechargetravels/pkg/errors"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

type mockSiteStore struct {
	FindByIDFunc func(ctx context.Context, id string) (*model.PilgrimageSite, error)
	ReplaceFunc  func(ctx context.Context, id string, doc *model.PilgrimageSite) error
}

func (m *mockSiteStore) List(context.Context) ([]*model.PilgrimageSite, error) { return nil, nil }

func (m *mockSiteStore) FindByID(ctx context.Context, id string) (*model.PilgrimageSite, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSiteStore) Replace(ctx context.Context, id string, doc *model.PilgrimageSite) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, doc)
	}
	return nil
}

func (m *mockSiteStore) Delete(context.Context, string) error { return nil }

type mockTourStore struct{}

func (mockTourStore) List(context.Context) ([]*model.PilgrimageTour, error) { return nil, nil }
func (mockTourStore) FindByID(context.Context, string) (*model.PilgrimageTour, error) {
	return nil, store.ErrNotFound
}
func (mockTourStore) Replace(context.Context, string, *model.PilgrimageTour) error { return nil }
func (mockTourStore) Delete(context.Context, string) error                         { return nil }

type mockFAQStore struct {
	ReplaceFunc func(ctx context.Context, id string, doc *model.PilgrimageFAQ) error
}

func (m *mockFAQStore) List(context.Context) ([]*model.PilgrimageFAQ, error) { return nil, nil }
func (m *mockFAQStore) FindByID(context.Context, string) (*model.PilgrimageFAQ, error) {
	return nil, store.ErrNotFound
}
func (m *mockFAQStore) Replace(ctx context.Context, id string, doc *model.PilgrimageFAQ) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, doc)
	}
	return nil
}
func (m *mockFAQStore) Delete(context.Context, string) error { return nil }

func newTestService(sites SiteStore, faqs FAQStore, now time.Time) PilgrimageService {
	log := logger.New(logger.Config{Level: "error", Service: "pilgrimage-test"})
	return NewPilgrimageService(sites, mockTourStore{}, faqs, clock.Fixed(now), log)
}

func validSite() *model.PilgrimageSite {
	return &model.PilgrimageSite{
		Name:        "Moulay Idriss",
		Location:    "Zerhoun",
		Description: "Hilltop town overlooking Volubilis.",
		IsPublished: true,
	}
}

func TestSaveSiteCreateAssignsID(t *testing.T) {
	var stored *model.PilgrimageSite
	sites := &mockSiteStore{
		ReplaceFunc: func(_ context.Context, id string, doc *model.PilgrimageSite) error {
			if id != doc.ID {
				t.Errorf("replace id %q != document id %q", id, doc.ID)
			}
			stored = doc
			return nil
		},
	}
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(sites, &mockFAQStore{}, now)

	if err := svc.SaveSite(context.Background(), "", validSite()); err != nil {
		t.Fatalf("SaveSite() error = %v", err)
	}

	if stored.ID == "" {
		t.Error("id not assigned on create")
	}
	if !stored.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", stored.CreatedAt, now)
	}
}

func TestSaveSiteUpdatePreservesCreatedAt(t *testing.T) {
	createdAt := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	var stored *model.PilgrimageSite
	sites := &mockSiteStore{
		FindByIDFunc: func(_ context.Context, id string) (*model.PilgrimageSite, error) {
			s := validSite()
			s.ID = id
			s.CreatedAt = createdAt
			return s, nil
		},
		ReplaceFunc: func(_ context.Context, _ string, doc *model.PilgrimageSite) error {
			stored = doc
			return nil
		},
	}
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(sites, &mockFAQStore{}, now)

	s := validSite()
	s.Description = "Revised description."
	if err := svc.SaveSite(context.Background(), "site-1", s); err != nil {
		t.Fatalf("SaveSite() error = %v", err)
	}

	if !stored.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want original %v", stored.CreatedAt, createdAt)
	}
	if !stored.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", stored.UpdatedAt, now)
	}
}

func TestSaveSiteUnknownID(t *testing.T) {
	svc := newTestService(&mockSiteStore{}, &mockFAQStore{}, time.Now())

	err := svc.SaveSite(context.Background(), "ghost", validSite())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestSaveSiteRejectsMissingRequiredFields(t *testing.T) {
	svc := newTestService(&mockSiteStore{}, &mockFAQStore{}, time.Now())

	s := validSite()
	s.Location = ""
	err := svc.SaveSite(context.Background(), "", s)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}

func TestSaveFAQNormalizesQuestion(t *testing.T) {
	var stored *model.PilgrimageFAQ
	faqs := &mockFAQStore{
		ReplaceFunc: func(_ context.Context, _ string, doc *model.PilgrimageFAQ) error {
			stored = doc
			return nil
		},
	}
	svc := newTestService(&mockSiteStore{}, faqs, time.Now())

	faq := &model.PilgrimageFAQ{
		Question: "  What   should I wear?  ",
		Answer:   "Modest clothing is expected at the sites.",
	}
	if err := svc.SaveFAQ(context.Background(), "", faq); err != nil {
		t.Fatalf("SaveFAQ() error = %v", err)
	}

	if stored.Question != "What should I wear?" {
		t.Errorf("question = %q, want normalized", stored.Question)
	}
}
