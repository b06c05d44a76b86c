package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Book         BookRepository
	BorrowRecord BorrowRecordRepository
	Report       ReportRepository
}

// NewRepository 创建 Repository 聚合
// 报表查询复用 GORM 的连接池，通过 sqlx 执行 goqu 生成的 SQL
func NewRepository(db *gorm.DB) (*Repository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	return &Repository{
		db:           db,
		Book:         NewBookRepo(db),
		BorrowRecord: NewBorrowRecordRepo(db),
		Report:       NewReportRepo(sqlx.NewDb(sqlDB, "pgx")),
	}, nil
}

// WithTx 返回绑定到事务连接的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{
		db:           tx,
		Book:         NewBookRepo(tx),
		BorrowRecord: NewBorrowRecordRepo(tx),
		Report:       r.Report,
	}
}

// Transaction 在单个事务中执行 fn，fn 返回错误时回滚
// 未持有数据库连接时（单元测试注入的 mock 仓储）直接执行 fn
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
