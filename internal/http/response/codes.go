package response

// 业务状态码沿用 HTTP 语义，HTTP 层始终返回 200
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)

// IsClientError 4xx 业务码
func IsClientError(code int) bool {
	return code >= 400 && code < 500
}
