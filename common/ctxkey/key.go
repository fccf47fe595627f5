package ctxkey

const (
	KeyRequestBody = "key_request_body"
)
