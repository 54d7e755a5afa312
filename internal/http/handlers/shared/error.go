package shared

import (
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 带 request_id / session_id 的日志实例
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	kv := make([]interface{}, 0, 4)
	if id := c.GetString("request_id"); id != "" {
		kv = append(kv, "request_id", id)
	}
	if id := c.GetString(SessionIDContextKey); id != "" {
		kv = append(kv, "session_id", id)
	}
	if len(kv) == 0 {
		return logger.S()
	}
	return logger.SW(kv...)
}

// RespondError 按 i18n key 输出错误响应
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	respond(c, response.WrapError(code, key, msg, err))
}

// RespondErrorWithMsg 输出已拼好的错误消息
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	respond(c, response.WrapError(code, "", msg, err))
}

// 客户端错误只记 warn，服务端错误记 error
func respond(c *gin.Context, appErr *response.AppError) {
	if appErr.Err != nil {
		log := RequestLog(c)
		kv := []interface{}{"code", appErr.Code, "key", appErr.Key, "error", appErr.Err}
		if response.IsClientError(appErr.Code) {
			log.Warnw("handler_rejected", kv...)
		} else {
			log.Errorw("handler_error", kv...)
		}
	}
	appErr.Write(c)
}
