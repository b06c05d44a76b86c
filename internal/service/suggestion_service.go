package service

import (
	"context"

	"go.uber.org/zap"

	"campus-library/internal/dto"
	"campus-library/internal/model"
	"campus-library/internal/repository"
)

// SuggestionService 图书推荐业务接口
type SuggestionService interface {
	// Suggest 返回院系、年级匹配且该学生从未借过的全部图书，按 id 升序
	Suggest(ctx context.Context, q dto.SuggestionQuery) ([]dto.BookResponse, error)
}

type suggestionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSuggestionService 创建 SuggestionService 实例
func NewSuggestionService(repo *repository.Repository, logger *zap.Logger) SuggestionService {
	return &suggestionService{repo: repo, logger: logger}
}

func (s *suggestionService) Suggest(ctx context.Context, q dto.SuggestionQuery) ([]dto.BookResponse, error) {
	var books []model.Book

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		// 借阅历史按 student_id 全量统计，忽略借阅时登记的院系与年级
		borrowed, err := tx.BorrowRecord.BorrowedBookIDs(ctx, q.StudentID)
		if err != nil {
			return err
		}

		books, err = tx.Book.Filter(ctx, repository.BookFilter{
			Department: model.Department(q.Department),
			Year:       q.Year,
			ExcludeIDs: borrowed,
		})
		return err
	})
	if err != nil {
		s.logger.Error("查询推荐图书失败",
			zap.String("student_id", q.StudentID),
			zap.Error(err),
		)
		return nil, err
	}

	return toBookResponses(books), nil
}
