package shared

import (
	"strings"

	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// SessionIDContextKey 会话中间件写入的会话 ID
	SessionIDContextKey = "session_id"
	// UserClaimsContextKey 用户鉴权中间件写入的令牌声明
	UserClaimsContextKey = "user_claims"
	// SessionIDHeader 会话 ID 请求/响应头
	SessionIDHeader = "X-Session-ID"
)

// GetSessionID 从上下文读取会话 ID，缺失时直接返回错误响应。
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionIDContextKey)
	if !exists {
		RespondError(c, response.CodeBadRequest, "error.session_invalid", nil)
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || strings.TrimSpace(sessionID) == "" {
		RespondError(c, response.CodeBadRequest, "error.session_invalid", nil)
		return "", false
	}
	return sessionID, true
}

// GetUserClaims 读取已校验的用户令牌声明。
func GetUserClaims(c *gin.Context) (*service.UserClaims, bool) {
	value, exists := c.Get(UserClaimsContextKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return nil, false
	}
	claims, ok := value.(*service.UserClaims)
	if !ok || claims == nil {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return nil, false
	}
	return claims, true
}
