package random

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

func GetUUID() string {
	code := uuid.New().String()
	code = strings.Replace(code, "-", "", -1)
	return code
}

const numberChars = "0123456789"

func GetRandomNumberString(length int) string {
	key := make([]byte, length)
	for i := 0; i < length; i++ {
		key[i] = numberChars[rand.Intn(len(numberChars))]
	}
	return string(key)
}
