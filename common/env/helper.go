package env

import (
	"fmt"
	"os"
	"strconv"
)

func Bool(env string, defaultValue bool) bool {
	if env == "" || os.Getenv(env) == "" {
		return defaultValue
	}
	return os.Getenv(env) == "true"
}

func Int(env string, defaultValue int) int {
	if env == "" || os.Getenv(env) == "" {
		return defaultValue
	}
	num, err := strconv.Atoi(os.Getenv(env))
	if err != nil {
		fmt.Printf("failed to parse %s: %s, using default value: %d\n", env, err.Error(), defaultValue)
		return defaultValue
	}
	return num
}

func Int64(env string, defaultValue int64) int64 {
	if env == "" || os.Getenv(env) == "" {
		return defaultValue
	}
	num, err := strconv.ParseInt(os.Getenv(env), 10, 64)
	if err != nil {
		fmt.Printf("failed to parse %s: %s, using default value: %d\n", env, err.Error(), defaultValue)
		return defaultValue
	}
	return num
}

func String(env string, defaultValue string) string {
	if env == "" || os.Getenv(env) == "" {
		return defaultValue
	}
	return os.Getenv(env)
}
