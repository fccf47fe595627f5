package gemini

import (
	"github.com/nanoedit/nanoedit/common/logger"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

const errorType = "nanoedit_error"

func NewError(message string, code string, statusCode int) *relaymodel.ErrorWithStatusCode {
	return &relaymodel.ErrorWithStatusCode{
		Error: relaymodel.Error{
			Message: message,
			Type:    errorType,
			Code:    code,
		},
		StatusCode: statusCode,
	}
}

// ErrorWrapper logs the underlying error and returns a generic envelope,
// so internals never reach the client.
func ErrorWrapper(err error, code string, statusCode int) *relaymodel.ErrorWithStatusCode {
	logger.SysErrorf("%s: %s", code, err.Error())
	return NewError("internal error", code, statusCode)
}
