package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-library/internal/dto"
	"campus-library/internal/form"
	"campus-library/internal/model"
	"campus-library/internal/repository"
	pkgerrors "campus-library/pkg/errors"
)

// ── 借阅模块业务错误 ──

var (
	ErrBookNotFound = errors.New("图书不存在")
)

// BorrowService 借阅业务接口
//
// 说明：
//   - 不跟踪图书是否在借，同一本书可被重复借出
//   - 借阅记录只追加，不存在归还流程
type BorrowService interface {
	// Borrow 登记借阅，入参须已通过 form.ValidateBorrow 校验
	Borrow(ctx context.Context, rec model.BorrowRecord) (*dto.BorrowRecordResponse, error)
	// History 学生借阅历史（含图书信息），最近的在前
	History(ctx context.Context, studentID string) ([]dto.BorrowHistoryItem, error)
}

type borrowService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBorrowService 创建 BorrowService 实例
func NewBorrowService(repo *repository.Repository, logger *zap.Logger) BorrowService {
	return &borrowService{repo: repo, logger: logger}
}

// ────────────────────── Borrow ──────────────────────

func (s *borrowService) Borrow(ctx context.Context, rec model.BorrowRecord) (*dto.BorrowRecordResponse, error) {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		// 表单选项与提交之间图书可能已不存在，写入前在同一事务内复查
		if _, err := tx.Book.FindByID(ctx, rec.BookID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if err := tx.BorrowRecord.Insert(ctx, &rec); err != nil {
			if errors.Is(err, pkgerrors.ErrForeignKey) {
				return ErrBookNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			s.logger.Info("借阅的图书不存在", zap.Int64("book_id", rec.BookID))
			return nil, err
		}
		s.logger.Error("登记借阅失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("登记借阅",
		zap.Int64("id", rec.ID),
		zap.String("student_id", rec.StudentID),
		zap.Int64("book_id", rec.BookID),
	)
	return toBorrowRecordResponse(&rec), nil
}

// ────────────────────── History ──────────────────────

func (s *borrowService) History(ctx context.Context, studentID string) ([]dto.BorrowHistoryItem, error) {
	rows, err := s.repo.Report.StudentHistory(ctx, studentID)
	if err != nil {
		s.logger.Error("查询借阅历史失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.BorrowHistoryItem, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.BorrowHistoryItem{
			RecordID:     r.RecordID,
			StudentName:  r.StudentName,
			StudentID:    r.StudentID,
			Department:   r.Department,
			Year:         r.Year,
			BorrowDate:   r.BorrowDate.Format(form.DateLayout),
			BookID:       r.BookID,
			BookName:     r.BookName,
			BookAuthor:   r.BookAuthor,
			SerialNumber: r.SerialNumber,
		})
	}
	return result, nil
}

// ── 内部辅助方法 ──

func toBorrowRecordResponse(r *model.BorrowRecord) *dto.BorrowRecordResponse {
	return &dto.BorrowRecordResponse{
		ID:          r.ID,
		StudentName: r.StudentName,
		StudentID:   r.StudentID,
		Department:  string(r.Department),
		Year:        r.Year,
		BookID:      r.BookID,
		BorrowDate:  r.BorrowDate.Format(form.DateLayout),
	}
}
