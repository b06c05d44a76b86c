package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-library/pkg/response"
)

// BodyLimit 请求体大小限制
// 声明长度超限直接返回 413，未声明长度的请求读取时截断
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body too large")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
