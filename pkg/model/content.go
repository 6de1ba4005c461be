package model

import "time"

// GroupVehicle is a coach/van offered on the group transport pages.
type GroupVehicle struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Type         string    `json:"type" bson:"type" validate:"required,oneof=van minibus coach luxury-coach"`
	Capacity     int       `json:"capacity" bson:"capacity" validate:"required,min=1,max=100"`
	Features     []string  `json:"features" bson:"features"`
	Image        string    `json:"image" bson:"image" validate:"omitempty,url"`
	PricePerDay  float64   `json:"price_per_day" bson:"price_per_day" validate:"gte=0"`
	PricePerKm   float64   `json:"price_per_km" bson:"price_per_km" validate:"gte=0"`
	MinimumHours int       `json:"minimum_hours" bson:"minimum_hours" validate:"gte=0"`
	HourlyRate   float64   `json:"hourly_rate" bson:"hourly_rate" validate:"gte=0"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	Popular      bool      `json:"popular,omitempty" bson:"popular,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HeroSlide is one slide of the homepage hero carousel.
type HeroSlide struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Subtitle  string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Image     string    `json:"image" bson:"image" validate:"required,url"`
	CTALabel  string    `json:"cta_label,omitempty" bson:"cta_label,omitempty"`
	CTALink   string    `json:"cta_link,omitempty" bson:"cta_link,omitempty"`
	Order     int       `json:"order" bson:"order" validate:"gte=0"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type PilgrimageSite struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Location     string    `json:"location" bson:"location" validate:"required"`
	Description  string    `json:"description" bson:"description" validate:"required"`
	Thumbnail    string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty" validate:"omitempty,url"`
	Significance string    `json:"significance,omitempty" bson:"significance,omitempty"`
	BestTime     string    `json:"best_time,omitempty" bson:"best_time,omitempty"`
	Features     []string  `json:"features,omitempty" bson:"features,omitempty"`
	IsPublished  bool      `json:"is_published" bson:"is_published"`
	Order        int       `json:"order" bson:"order" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type PilgrimageTour struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string    `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Thumbnail       string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty" validate:"omitempty,url"`
	Badges          []string  `json:"badges,omitempty" bson:"badges,omitempty"`
	Duration        string    `json:"duration" bson:"duration" validate:"required"`
	SalePriceUSD    float64   `json:"sale_price_usd" bson:"sale_price_usd" validate:"gte=0"`
	RegularPriceUSD float64   `json:"regular_price_usd" bson:"regular_price_usd" validate:"gte=0"`
	Highlights      []string  `json:"highlights,omitempty" bson:"highlights,omitempty"`
	Included        []string  `json:"included,omitempty" bson:"included,omitempty"`
	Type            string    `json:"type" bson:"type" validate:"required"`
	Sites           []string  `json:"sites,omitempty" bson:"sites,omitempty"`
	IsPublished     bool      `json:"is_published" bson:"is_published"`
	Order           int       `json:"order" bson:"order" validate:"gte=0"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

type PilgrimageFAQ struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Question  string    `json:"question" bson:"question" validate:"required"`
	Answer    string    `json:"answer" bson:"answer" validate:"required"`
	Order     int       `json:"order" bson:"order" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type ActivityFAQ struct {
	Question string `json:"question" bson:"question" validate:"required"`
	Answer   string `json:"answer" bson:"answer" validate:"required"`
}

// FamilyActivity is a curated family experience page.
type FamilyActivity struct {
	ID          string        `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Slug        string        `json:"slug" bson:"slug" validate:"required,min=2,max=200"`
	Description string        `json:"description" bson:"description" validate:"required"`
	Highlights  []string      `json:"highlights,omitempty" bson:"highlights,omitempty"`
	SafetyTips  []string      `json:"safety_tips,omitempty" bson:"safety_tips,omitempty"`
	WhatToBring []string      `json:"what_to_bring,omitempty" bson:"what_to_bring,omitempty"`
	BestTime    string        `json:"best_time,omitempty" bson:"best_time,omitempty"`
	Duration    string        `json:"duration,omitempty" bson:"duration,omitempty"`
	Difficulty  string        `json:"difficulty" bson:"difficulty" validate:"required,oneof=Easy Moderate Challenging"`
	Location    string        `json:"location" bson:"location" validate:"required"`
	Featured    bool          `json:"featured" bson:"featured"`
	Active      bool          `json:"active" bson:"active"`
	HeroImages  []string      `json:"hero_images,omitempty" bson:"hero_images,omitempty"`
	FAQs        []ActivityFAQ `json:"faqs,omitempty" bson:"faqs,omitempty" validate:"omitempty,dive"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
