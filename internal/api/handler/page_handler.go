package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-library/internal/service"
	"campus-library/internal/web"
)

// PageHandler 首页与健康检查
type PageHandler struct {
	bookSvc service.BookService
}

// NewPageHandler 创建 PageHandler
func NewPageHandler(bookSvc service.BookService) *PageHandler {
	return &PageHandler{bookSvc: bookSvc}
}

// Home 首页，统计失败时仍正常展示导航
// GET / 与 GET /home
func (h *PageHandler) Home(c *gin.Context) {
	page := web.NewPage("Campus Library", nil)
	page.Flash = popFlash(c)
	if stats, err := h.bookSvc.Stats(c.Request.Context()); err == nil {
		page.Stats = stats
	}
	render(c, http.StatusOK, web.HomeTemplate, page)
}

// Health 健康检查
// GET /health
func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
