package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	LogFormat                                string
	DBPath                                   string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

// Load reads config.yaml from the working directory, or path when given.
// A missing default file is fine; a missing explicit file is not.
// CPUSCHED_* environment variables override file values, e.g. CPUSCHED_PORT.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("db_path", "cpusched.db")
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{4, 8})

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	v.SetEnvPrefix("CPUSCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log.level"),
		LogFormat:                                v.GetString("log.format"),
		DBPath:                                   v.GetString("db_path"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects values no scheduler or listener can use.
func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.New("config: multilevel feedback queue needs at least one level")
	}
	for i, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("config: multilevel feedback queue level %d has quantum %d", i, q)
		}
	}
	return nil
}

// SchedulerOptions returns the configured scheduler parameters.
func (c *SchedulerConfig) SchedulerOptions() schedulers.Options {
	levels := make([]int, len(c.MultilevelFeedbackQueueLevelsTimeQuantum))
	copy(levels, c.MultilevelFeedbackQueueLevelsTimeQuantum)
	return schedulers.Options{
		TimeQuantum:       c.RoundRobinTimeQuantum,
		LevelsTimeQuantum: levels,
	}
}
