package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDashboardPollInterval = "DASHBOARD_POLL_INTERVAL"

	EnvPayoutCommissionPercent = "PAYOUT_COMMISSION_PERCENT"
	EnvPayoutFirstDelay        = "PAYOUT_FIRST_DELAY"
	EnvPayoutSecondDelay       = "PAYOUT_SECOND_DELAY"
)
