package public

import (
	"errors"

	handlershared "github.com/bgcollection/storefront/internal/http/handlers/shared"
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func getSessionID(c *gin.Context) (string, bool) {
	return handlershared.GetSessionID(c)
}

func getUserClaims(c *gin.Context) (*service.UserClaims, bool) {
	return handlershared.GetUserClaims(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// 评论列表默认每页条数
const reviewPageSize = 10

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize, reviewPageSize)
}

// respondValidationError 字段级校验失败时附带字段明细
func respondValidationError(c *gin.Context, key string, err error) bool {
	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}
	msg := i18n.T(i18n.ResolveLocale(c), key)
	response.ErrorWithData(c, response.CodeBadRequest, msg, gin.H{"fields": validationErr.Fields})
	return true
}
