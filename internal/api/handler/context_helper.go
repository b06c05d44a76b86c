package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-library/internal/web"
)

// 页面上的通用提示
const (
	msgInvalidSubmission = "Invalid form submission."
	msgUnexpectedError   = "An unexpected error occurred. Please try again."
)

// flash 提示通过短期 Cookie 在重定向之间传递
const (
	flashCookie = "flash"
	flashMaxAge = 60 // 秒
)

// setFlash 写入一次性提示，随后应立即重定向
func setFlash(c *gin.Context, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(message))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, flashMaxAge, "/", "", false, true)
}

// popFlash 读取并清除一次性提示，没有时返回空串
func popFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return ""
	}
	return string(raw)
}

// redirectWithFlash 成功提交后 303 跳回表单页（PRG）
func redirectWithFlash(c *gin.Context, location, message string) {
	setFlash(c, message)
	c.Redirect(http.StatusSeeOther, location)
}

func render(c *gin.Context, status int, name string, page *web.Page) {
	c.HTML(status, name, page)
}
