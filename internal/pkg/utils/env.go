package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns defaultValue when key is unset, blank or unparsable.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	value = strings.TrimSpace(value)
	if !exists || value == "" {
		return defaultValue
	}

	parsed, err := parse(value)
	if err != nil {
		log.Printf("Error parsing %s=%q: %v, will use default value", key, value, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(value string) (string, error) { return value, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	})
}

// GetEnvSeconds reads an integer number of seconds.
func GetEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(GetEnvInt(key, defaultSeconds)) * time.Second
}
