package config

import (
	"os"
	"strconv"
	"time"
)

// CheckinConfig tunes the single-use event check-in codes.
type CheckinConfig struct {
	CodeTTL          time.Duration
	ImageSize        int
	MaxCodesPerEvent int
}

func LoadCheckinConfig() *CheckinConfig {
	return &CheckinConfig{
		CodeTTL:          getEnvAsDuration("CHECKIN_CODE_TTL", 5*time.Minute),
		ImageSize:        getEnvAsInt("CHECKIN_IMAGE_SIZE", 256),
		MaxCodesPerEvent: getEnvAsInt("CHECKIN_MAX_PER_EVENT", 10),
	}
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
