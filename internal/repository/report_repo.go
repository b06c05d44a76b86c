package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // 注册 postgres 方言
	"github.com/jmoiron/sqlx"
)

const dialectPostgres = "postgres"

// BorrowHistoryRow 借阅记录与图书信息的联表行
type BorrowHistoryRow struct {
	RecordID     int64     `db:"record_id"`
	StudentName  string    `db:"student_name"`
	StudentID    string    `db:"student_id"`
	Department   string    `db:"department"`
	Year         int       `db:"year"`
	BorrowDate   time.Time `db:"borrow_date"`
	BookID       int64     `db:"book_id"`
	BookName     string    `db:"book_name"`
	BookAuthor   string    `db:"book_author"`
	SerialNumber string    `db:"serial_number"`
}

// ReportRepository 只读报表查询
type ReportRepository interface {
	// StudentHistory 某学生的借阅历史，最近的在前
	StudentHistory(ctx context.Context, studentID string) ([]BorrowHistoryRow, error)
	// BorrowLog 全部借阅流水，最近的在前
	BorrowLog(ctx context.Context) ([]BorrowHistoryRow, error)
}

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *sqlx.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) StudentHistory(ctx context.Context, studentID string) ([]BorrowHistoryRow, error) {
	return r.query(ctx, borrowHistoryQuery(studentID))
}

func (r *reportRepo) BorrowLog(ctx context.Context) ([]BorrowHistoryRow, error) {
	return r.query(ctx, borrowHistoryQuery(""))
}

func (r *reportRepo) query(ctx context.Context, ds *goqu.SelectDataset) ([]BorrowHistoryRow, error) {
	sqlQuery, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("构建借阅查询失败: %w", err)
	}

	rows := make([]BorrowHistoryRow, 0)
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// borrowHistoryQuery studentID 为空时查询全部
func borrowHistoryQuery(studentID string) *goqu.SelectDataset {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("borrow_records").As("r")).
		InnerJoin(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("r.book_id")))).
		Select(
			goqu.I("r.id").As("record_id"),
			goqu.I("r.student_name"),
			goqu.I("r.student_id"),
			goqu.I("r.department"),
			goqu.I("r.year"),
			goqu.I("r.borrow_date"),
			goqu.I("r.book_id"),
			goqu.I("b.name").As("book_name"),
			goqu.I("b.author").As("book_author"),
			goqu.I("b.serial_number"),
		).
		Order(goqu.I("r.borrow_date").Desc(), goqu.I("r.id").Desc())

	if studentID != "" {
		ds = ds.Where(goqu.I("r.student_id").Eq(studentID))
	}
	return ds
}
