package public

import (
	"strings"

	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// UserLogin 模拟登录
func (h *Handler) UserLogin(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	result, err := h.AuthService.Login(c.Request.Context(), sessionID, req)
	if err != nil {
		respondAuthError(c, err, "error.login_failed")
		return
	}
	response.Success(c, result)
}

// UserRegister 模拟注册
func (h *Handler) UserRegister(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	result, err := h.AuthService.Register(c.Request.Context(), sessionID, req)
	if err != nil {
		respondAuthError(c, err, "error.register_failed")
		return
	}
	response.Success(c, result)
}

// UserLogout 退出登录；携带有效令牌时一并吊销
func (h *Handler) UserLogout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var claims *service.UserClaims
	if token := bearerToken(c); token != "" {
		if parsed, err := h.AuthService.ParseUserJWT(token); err == nil {
			claims = parsed
		}
	}
	if err := h.AuthService.Logout(c.Request.Context(), sessionID, claims); err != nil {
		respondAuthError(c, err, "error.logout_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.logged_out"), gin.H{"logged_out": true})
}

// GetCurrentUser 当前登录用户
func (h *Handler) GetCurrentUser(c *gin.Context) {
	if _, ok := getUserClaims(c); !ok {
		return
	}
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.Current(c.Request.Context(), sessionID)
	if err != nil {
		respondAuthError(c, err, "error.user_not_found")
		return
	}
	response.Success(c, user)
}

// UpdateUserProfile 更新资料
func (h *Handler) UpdateUserProfile(c *gin.Context) {
	if _, ok := getUserClaims(c); !ok {
		return
	}
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req service.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.AuthService.UpdateProfile(c.Request.Context(), sessionID, req)
	if err != nil {
		respondAuthError(c, err, "error.profile_update_failed")
		return
	}
	response.Success(c, user)
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
