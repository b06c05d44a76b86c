package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"campus-library/internal/model"
	"campus-library/internal/repository"
	pkgerrors "campus-library/pkg/errors"
)

// ── Mock BookRepository ──

type mockBookRepo struct {
	books   []model.Book
	nextID  int64
	listErr error
}

func newMockBookRepo() *mockBookRepo {
	return &mockBookRepo{nextID: 1}
}

func (m *mockBookRepo) Insert(_ context.Context, book *model.Book) error {
	for _, b := range m.books {
		if b.SerialNumber == book.SerialNumber {
			return errors.Join(pkgerrors.ErrDuplicateKey, errors.New("uq_books_serial_number"))
		}
	}
	book.ID = m.nextID
	m.nextID++
	m.books = append(m.books, *book)
	return nil
}

func (m *mockBookRepo) FindByID(_ context.Context, id int64) (*model.Book, error) {
	for i := range m.books {
		if m.books[i].ID == id {
			b := m.books[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookRepo) List(_ context.Context) ([]model.Book, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.Book(nil), m.books...), nil
}

func (m *mockBookRepo) Filter(_ context.Context, f repository.BookFilter) ([]model.Book, error) {
	excluded := make(map[int64]bool, len(f.ExcludeIDs))
	for _, id := range f.ExcludeIDs {
		excluded[id] = true
	}

	var result []model.Book
	for _, b := range m.books {
		if f.Department != "" && b.Department != f.Department {
			continue
		}
		if f.Year != 0 && b.Year != f.Year {
			continue
		}
		if excluded[b.ID] {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.books)), nil
}

// ── Mock BorrowRecordRepository ──

type mockBorrowRecordRepo struct {
	books     *mockBookRepo
	records   []model.BorrowRecord
	nextID    int64
	insertErr error
}

func newMockBorrowRecordRepo(books *mockBookRepo) *mockBorrowRecordRepo {
	return &mockBorrowRecordRepo{books: books, nextID: 1}
}

func (m *mockBorrowRecordRepo) Insert(ctx context.Context, rec *model.BorrowRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, err := m.books.FindByID(ctx, rec.BookID); err != nil {
		return errors.Join(pkgerrors.ErrForeignKey, err)
	}
	rec.ID = m.nextID
	m.nextID++
	m.records = append(m.records, *rec)
	return nil
}

func (m *mockBorrowRecordRepo) FindByID(_ context.Context, id int64) (*model.BorrowRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			r := m.records[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBorrowRecordRepo) BorrowedBookIDs(_ context.Context, studentID string) ([]int64, error) {
	seen := make(map[int64]bool)
	var ids []int64
	for _, r := range m.records {
		if r.StudentID == studentID && !seen[r.BookID] {
			seen[r.BookID] = true
			ids = append(ids, r.BookID)
		}
	}
	return ids, nil
}

func (m *mockBorrowRecordRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	books   *mockBookRepo
	borrows *mockBorrowRecordRepo
	err     error
}

func (m *mockReportRepo) StudentHistory(_ context.Context, studentID string) ([]repository.BorrowHistoryRow, error) {
	rows, err := m.rows()
	if err != nil {
		return nil, err
	}
	result := make([]repository.BorrowHistoryRow, 0)
	for _, r := range rows {
		if r.StudentID == studentID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReportRepo) BorrowLog(_ context.Context) ([]repository.BorrowHistoryRow, error) {
	return m.rows()
}

func (m *mockReportRepo) rows() ([]repository.BorrowHistoryRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]repository.BorrowHistoryRow, 0, len(m.borrows.records))
	for _, r := range m.borrows.records {
		book, _ := m.books.FindByID(context.Background(), r.BookID)
		rows = append(rows, repository.BorrowHistoryRow{
			RecordID:     r.ID,
			StudentName:  r.StudentName,
			StudentID:    r.StudentID,
			Department:   string(r.Department),
			Year:         r.Year,
			BorrowDate:   r.BorrowDate,
			BookID:       r.BookID,
			BookName:     book.Name,
			BookAuthor:   book.Author,
			SerialNumber: book.SerialNumber,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].BorrowDate.Equal(rows[j].BorrowDate) {
			return rows[i].BorrowDate.After(rows[j].BorrowDate)
		}
		return rows[i].RecordID > rows[j].RecordID
	})
	return rows, nil
}

// ── 测试辅助 ──

type testRepos struct {
	books   *mockBookRepo
	borrows *mockBorrowRecordRepo
	report  *mockReportRepo
	repo    *repository.Repository
}

func newTestRepos() *testRepos {
	books := newMockBookRepo()
	borrows := newMockBorrowRecordRepo(books)
	report := &mockReportRepo{books: books, borrows: borrows}
	return &testRepos{
		books:   books,
		borrows: borrows,
		report:  report,
		repo: &repository.Repository{
			Book:         books,
			BorrowRecord: borrows,
			Report:       report,
		},
	}
}
