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

type mockStore struct {
	FindByIDFunc func(ctx context.Context, id string) (*model.FamilyActivity, error)
	ReplaceFunc  func(ctx context.Context, id string, doc *model.FamilyActivity) error
}

func (m *mockStore) List(context.Context) ([]*model.FamilyActivity, error) { return nil, nil }

func (m *mockStore) FindByID(ctx context.Context, id string) (*model.FamilyActivity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockStore) Replace(ctx context.Context, id string, doc *model.FamilyActivity) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, doc)
	}
	return nil
}

func (m *mockStore) Delete(context.Context, string) error { return nil }

func validActivity() *model.FamilyActivity {
	return &model.FamilyActivity{
		Title:       "Camel Ride at Sunset",
		Description: "A gentle ride suitable for all ages.",
		Difficulty:  "Easy",
		Location:    "Merzouga",
		Active:      true,
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Camel Ride at Sunset", "camel-ride-at-sunset"},
		{"  Kayak & Picnic!  ", "kayak-picnic"},
		{"Atlas 4x4 Day Trip", "atlas-4x4-day-trip"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	var stored *model.FamilyActivity
	s := &mockStore{
		ReplaceFunc: func(_ context.Context, _ string, doc *model.FamilyActivity) error {
			stored = doc
			return nil
		},
	}
	svc := NewActivityService(s, clock.Fixed(time.Now()), testLogger())

	a := validActivity()
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if stored.Slug != "camel-ride-at-sunset" {
		t.Errorf("slug = %q, want derived from title", stored.Slug)
	}
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	var stored *model.FamilyActivity
	s := &mockStore{
		ReplaceFunc: func(_ context.Context, _ string, doc *model.FamilyActivity) error {
			stored = doc
			return nil
		},
	}
	svc := NewActivityService(s, clock.Fixed(time.Now()), testLogger())

	a := validActivity()
	a.Slug = "sunset-camels"
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if stored.Slug != "sunset-camels" {
		t.Errorf("slug = %q, want explicit value kept", stored.Slug)
	}
}

func TestCreateRejectsUnknownDifficulty(t *testing.T) {
	svc := NewActivityService(&mockStore{}, clock.Fixed(time.Now()), testLogger())

	a := validActivity()
	a.Difficulty = "Extreme"
	err := svc.Create(context.Background(), a)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}

func TestCreateValidatesNestedFAQs(t *testing.T) {
	svc := NewActivityService(&mockStore{}, clock.Fixed(time.Now()), testLogger())

	a := validActivity()
	a.FAQs = []model.ActivityFAQ{{Question: "Is it safe?", Answer: ""}}
	err := svc.Create(context.Background(), a)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Errorf("error = %v, want VALIDATION_ERROR for empty FAQ answer", err)
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "activities-test"})
}
