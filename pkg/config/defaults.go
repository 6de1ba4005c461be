package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "rechargetravels"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Dashboard auto-refresh cadence; matches the 30s interval the
	// admin UI used for its polling loop.
	DefaultDashboardPollInterval = 30 * time.Second

	// Owner payout policy: 15% platform commission, first half released
	// 6 hours after payment, second half after the 72 hour verification
	// window.
	DefaultPayoutCommissionPercent = 15
	DefaultPayoutFirstDelay        = 6 * time.Hour
	DefaultPayoutSecondDelay       = 72 * time.Hour

	DefaultPaginationLimit = 100
)
