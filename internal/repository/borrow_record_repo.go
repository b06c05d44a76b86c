package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-library/internal/model"
	pkgerrors "campus-library/pkg/errors"
)

// BorrowRecordRepository 借阅记录数据访问接口
type BorrowRecordRepository interface {
	Insert(ctx context.Context, rec *model.BorrowRecord) error
	FindByID(ctx context.Context, id int64) (*model.BorrowRecord, error)
	BorrowedBookIDs(ctx context.Context, studentID string) ([]int64, error)
	Count(ctx context.Context) (int64, error)
}

type borrowRecordRepo struct {
	db *gorm.DB
}

// NewBorrowRecordRepo 创建 BorrowRecordRepository 实例
func NewBorrowRecordRepo(db *gorm.DB) BorrowRecordRepository {
	return &borrowRecordRepo{db: db}
}

// Insert 新增借阅记录；book_id 不存在时返回 pkgerrors.ErrForeignKey
func (r *borrowRecordRepo) Insert(ctx context.Context, rec *model.BorrowRecord) error {
	return pkgerrors.Classify(r.db.WithContext(ctx).Omit("Book").Create(rec).Error)
}

// FindByID 按 ID 查询借阅记录，并加载所借图书
func (r *borrowRecordRepo) FindByID(ctx context.Context, id int64) (*model.BorrowRecord, error) {
	var rec model.BorrowRecord
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// BorrowedBookIDs 学生借过的全部图书 ID（不区分借阅时登记的院系与年级）
func (r *borrowRecordRepo) BorrowedBookIDs(ctx context.Context, studentID string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.BorrowRecord{}).
		Where("student_id = ?", studentID).
		Distinct().
		Pluck("book_id", &ids).Error
	return ids, err
}

func (r *borrowRecordRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BorrowRecord{}).Count(&count).Error
	return count, err
}
