package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-library/internal/model"
	pkgerrors "campus-library/pkg/errors"
)

// BookFilter 图书筛选条件，零值字段不参与过滤
type BookFilter struct {
	Department model.Department
	Year       int
	ExcludeIDs []int64
}

// BookRepository 图书数据访问接口
type BookRepository interface {
	Insert(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Filter(ctx context.Context, f BookFilter) ([]model.Book, error)
	Count(ctx context.Context) (int64, error)
}

// bookRepo BookRepository 的 GORM 实现
type bookRepo struct {
	db *gorm.DB
}

// NewBookRepo 创建 BookRepository 实例
func NewBookRepo(db *gorm.DB) BookRepository {
	return &bookRepo{db: db}
}

// Insert 新增图书；serial_number 冲突时返回 pkgerrors.ErrDuplicateKey
func (r *bookRepo) Insert(ctx context.Context, book *model.Book) error {
	return pkgerrors.Classify(r.db.WithContext(ctx).Create(book).Error)
}

func (r *bookRepo) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepo) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

func (r *bookRepo) Filter(ctx context.Context, f BookFilter) ([]model.Book, error) {
	var books []model.Book
	db := r.db.WithContext(ctx)

	if f.Department != "" {
		db = db.Where("department = ?", f.Department)
	}
	if f.Year != 0 {
		db = db.Where("year = ?", f.Year)
	}
	// 空切片会生成 NOT IN (NULL)，导致结果恒为空
	if len(f.ExcludeIDs) > 0 {
		db = db.Where("id NOT IN ?", f.ExcludeIDs)
	}

	err := db.Order("id ASC").Find(&books).Error
	return books, err
}

func (r *bookRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&count).Error
	return count, err
}
