package settings

import "time"

type Config struct {
	Logger  Logger  `mapstructure:"logger"`
	Queue   Queue   `mapstructure:"queue"`
	Pool    Pool    `mapstructure:"pool"`
	Batcher Batcher `mapstructure:"batcher"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Queue is the configuration for a bounded queue
type Queue struct {
	Capacity int `mapstructure:"capacity"`
}

// Pool is the configuration for the worker pool
type Pool struct {
	Workers       int `mapstructure:"workers"`
	QueueCapacity int `mapstructure:"queue_capacity"`
}

// Batcher is the configuration for the batching consumer
type Batcher struct {
	BatchSize   int           `mapstructure:"batch_size"`
	MaxBatchAge time.Duration `mapstructure:"max_batch_age"`
}
