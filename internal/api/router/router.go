package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-library/config"
	"campus-library/internal/api/handler"
	"campus-library/internal/api/middleware"
	"campus-library/internal/web"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 只作用于表单提交（POST）路由
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.Limiter, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("加载页面模板失败: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", h.Page.Health)

	// ── 页面 ──
	limit := middleware.RateLimit(limiter, logger)

	r.GET("/", h.Page.Home)
	r.GET("/home", h.Page.Home)

	r.GET("/add_book", h.Book.AddBookForm)
	r.POST("/add_book", limit, h.Book.AddBook)

	r.GET("/book_borrow", h.Borrow.BorrowForm)
	r.POST("/book_borrow", limit, h.Borrow.Borrow)

	r.GET("/book_suggestions", h.Suggestion.SuggestionForm)
	r.POST("/book_suggestions", limit, h.Suggestion.Suggest)

	// ── API v1（只读） ──
	v1 := r.Group("/api/v1")
	{
		v1.GET("/books", h.Book.ListBooks)
		v1.GET("/students/:student_id/borrows", h.Borrow.History)
		v1.GET("/suggestions", h.Suggestion.SuggestAPI)

		export := v1.Group("/export")
		{
			export.GET("/books", h.Export.ExportBooks)
			export.GET("/borrows", h.Export.ExportBorrows)
		}
	}

	return r, nil
}
