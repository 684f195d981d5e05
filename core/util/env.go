package util

import "os"

// Getenv returns the value of the environment variable or the fallback when unset.
func Getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
