package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"campus-library/internal/dto"
	"campus-library/internal/form"
	"campus-library/internal/model"
	"campus-library/internal/repository"
	pkgerrors "campus-library/pkg/errors"
)

// ── 图书模块业务错误 ──

var (
	ErrDuplicateSerial = errors.New("图书编号已存在")
)

// BookService 图书业务接口
type BookService interface {
	// Add 新增图书，入参须已通过 form.ValidateAddBook 校验
	Add(ctx context.Context, book model.Book) (*dto.BookResponse, error)
	List(ctx context.Context) ([]dto.BookResponse, error)
	// Choices 借阅表单的图书选项，每次调用都实时查询
	Choices(ctx context.Context) ([]model.Choice, error)
	// Stats 首页展示的馆藏与借阅总数
	Stats(ctx context.Context) (*dto.LibraryStats, error)
}

type bookService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBookService 创建 BookService 实例
func NewBookService(repo *repository.Repository, logger *zap.Logger) BookService {
	return &bookService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

func (s *bookService) Add(ctx context.Context, book model.Book) (*dto.BookResponse, error) {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		return tx.Book.Insert(ctx, &book)
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			s.logger.Info("图书编号重复", zap.String("serial_number", book.SerialNumber))
			return nil, ErrDuplicateSerial
		}
		s.logger.Error("新增图书失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("新增图书",
		zap.Int64("id", book.ID),
		zap.String("serial_number", book.SerialNumber),
	)
	return toBookResponse(&book), nil
}

// ────────────────────── Stats ──────────────────────

func (s *bookService) Stats(ctx context.Context) (*dto.LibraryStats, error) {
	books, err := s.repo.Book.Count(ctx)
	if err != nil {
		s.logger.Error("统计图书数量失败", zap.Error(err))
		return nil, err
	}
	borrows, err := s.repo.BorrowRecord.Count(ctx)
	if err != nil {
		s.logger.Error("统计借阅数量失败", zap.Error(err))
		return nil, err
	}
	return &dto.LibraryStats{Books: books, Borrows: borrows}, nil
}

// ────────────────────── List ──────────────────────

func (s *bookService) List(ctx context.Context) ([]dto.BookResponse, error) {
	books, err := s.repo.Book.List(ctx)
	if err != nil {
		s.logger.Error("列出图书失败", zap.Error(err))
		return nil, err
	}
	return toBookResponses(books), nil
}

// ────────────────────── Choices ──────────────────────

func (s *bookService) Choices(ctx context.Context) ([]model.Choice, error) {
	books, err := s.repo.Book.List(ctx)
	if err != nil {
		s.logger.Error("查询图书选项失败", zap.Error(err))
		return nil, err
	}
	return form.BookChoices(books), nil
}

// ── 内部辅助方法 ──

func toBookResponse(b *model.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:              b.ID,
		Name:            b.Name,
		Author:          b.Author,
		SerialNumber:    b.SerialNumber,
		Department:      string(b.Department),
		DepartmentLabel: model.ChoiceLabel(model.DepartmentChoices, string(b.Department)),
		Major:           string(b.Major),
		MajorLabel:      model.ChoiceLabel(model.MajorChoices, string(b.Major)),
		Year:            b.Year,
		YearLabel:       model.YearLabel(b.Year),
	}
}

func toBookResponses(books []model.Book) []dto.BookResponse {
	result := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		result = append(result, *toBookResponse(&books[i]))
	}
	return result
}
