package response

import "github.com/gin-gonic/gin"

// AppError 处理器层错误：业务码 + 已翻译消息 + 原始错误
type AppError struct {
	Code    int
	Key     string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误，key 为空表示消息未经 i18n
func WrapError(code int, key, message string, err error) *AppError {
	if message == "" {
		message = key
	}
	return &AppError{
		Code:    code,
		Key:     key,
		Message: message,
		Err:     err,
	}
}

// Write 以 AppError 输出错误信封
func (e *AppError) Write(c *gin.Context) {
	Error(c, e.Code, e.Message)
}
