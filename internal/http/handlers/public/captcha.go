package public

import (
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

var captchaGenerateErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaConfigInvalid, code: response.CodeBadRequest, key: "error.captcha_unavailable"},
}

// GetImageCaptcha 生成图片验证码，附带当前各表单场景的开关
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondWithMappedError(c, err, captchaGenerateErrorRules, response.CodeInternal, "error.captcha_generate_failed")
		return
	}
	setting := h.CaptchaService.PublicSetting()
	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
		"expires_in":   challenge.ExpiresIn,
		"scenes":       setting.Scenes,
	})
}
