package service

import (
	"go.uber.org/zap"

	"campus-library/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Book       BookService
	Borrow     BorrowService
	Suggestion SuggestionService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Book:       NewBookService(repo, logger),
		Borrow:     NewBorrowService(repo, logger),
		Suggestion: NewSuggestionService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
