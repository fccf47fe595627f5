package helper

import (
	"fmt"
	"time"

	"github.com/nanoedit/nanoedit/common/random"
)

const RequestIdKey = "X-Nanoedit-Request-Id"

func GetTimestamp() int64 {
	return time.Now().Unix()
}

func GenRequestID() string {
	return fmt.Sprintf("%d%s", GetTimestamp(), random.GetRandomNumberString(8))
}

func MessageWithRequestId(message string, id string) string {
	return fmt.Sprintf("%s (request id: %s)", message, id)
}

func AssignOrDefault(value string, defaultValue string) string {
	if len(value) != 0 {
		return value
	}
	return defaultValue
}
