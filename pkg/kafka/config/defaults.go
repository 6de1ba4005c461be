package kafka_config

import "time"

const (
	DefaultKafkaBrokers = "localhost:9092"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 100 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // all
	DefaultProducerCompression  = "snappy"

	DefaultConsumerMinBytes   = 1
	DefaultConsumerMaxBytes   = 10 * 1024 * 1024 // 10MB
	DefaultConsumerMaxWait    = 500 * time.Millisecond
	DefaultConsumerMaxRetries = 3
)
