package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-library/internal/form"
	"campus-library/internal/model"
	"campus-library/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 或 CLI 决定写入 HTTP 响应还是文件。
// 空表同样导出（仅含表头）。
type ExportService interface {
	// ExportBooks 导出图书目录
	ExportBooks(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportBorrowLog 导出全部借阅流水
	ExportBorrowLog(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

const (
	sheetBooks   = "Books"
	sheetBorrows = "Borrows"
)

var (
	bookHeaders   = []string{"ID", "Name", "Author", "Serial Number", "Department", "Major", "Year"}
	borrowHeaders = []string{"Record ID", "Borrow Date", "Student Name", "Student ID", "Department", "Year", "Book ID", "Book", "Author", "Serial Number"}
)

// ────────────────────── ExportBooks ──────────────────────

func (s *exportService) ExportBooks(ctx context.Context) (*bytes.Buffer, string, error) {
	books, err := s.repo.Book.List(ctx)
	if err != nil {
		s.logger.Error("查询图书失败", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(books))
	for _, b := range books {
		rows = append(rows, []interface{}{
			b.ID,
			b.Name,
			b.Author,
			b.SerialNumber,
			model.ChoiceLabel(model.DepartmentChoices, string(b.Department)),
			model.ChoiceLabel(model.MajorChoices, string(b.Major)),
			model.YearLabel(b.Year),
		})
	}

	buf, err := s.writeSheet(sheetBooks, bookHeaders, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, s.filename("books"), nil
}

// ────────────────────── ExportBorrowLog ──────────────────────

func (s *exportService) ExportBorrowLog(ctx context.Context) (*bytes.Buffer, string, error) {
	records, err := s.repo.Report.BorrowLog(ctx)
	if err != nil {
		s.logger.Error("查询借阅流水失败", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.RecordID,
			r.BorrowDate.Format(form.DateLayout),
			r.StudentName,
			r.StudentID,
			r.Department,
			r.Year,
			r.BookID,
			r.BookName,
			r.BookAuthor,
			r.SerialNumber,
		})
	}

	buf, err := s.writeSheet(sheetBorrows, borrowHeaders, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, s.filename("borrows"), nil
}

// ── 内部辅助方法 ──

func (s *exportService) writeSheet(sheet string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		s.logger.Error("重命名工作表失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	f.SetColWidth(sheet, "A", lastCol, 18)

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("row", i+2), zap.Error(err))
			return nil, ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

func (s *exportService) filename(kind string) string {
	return fmt.Sprintf("%s_%s.xlsx", kind, s.now().Format("20060102"))
}
