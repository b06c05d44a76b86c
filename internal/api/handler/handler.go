package handler

import "campus-library/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Page       *PageHandler
	Book       *BookHandler
	Borrow     *BorrowHandler
	Suggestion *SuggestionHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Page:       NewPageHandler(svc.Book),
		Book:       NewBookHandler(svc.Book),
		Borrow:     NewBorrowHandler(svc.Book, svc.Borrow),
		Suggestion: NewSuggestionHandler(svc.Suggestion),
		Export:     NewExportHandler(svc.Export),
	}
}
