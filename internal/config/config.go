package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log       LogConfig       `mapstructure:"log"       validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SchedulerConfig contains all scheduler-related configuration settings.
type SchedulerConfig struct {
	WorkerCount int    `mapstructure:"worker_count" validate:"required,gt=0,lte=128"`
	QueueSize   int    `mapstructure:"queue_size"   validate:"required,gt=0"`
	Mode        string `mapstructure:"mode"         validate:"required,oneof=eager lazy"`
	Delivery    string `mapstructure:"delivery"     validate:"required,oneof=shared rehome"`
}
