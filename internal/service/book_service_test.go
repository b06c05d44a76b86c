package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"campus-library/internal/model"
)

func setupTestBookService() (BookService, *testRepos) {
	repos := newTestRepos()
	return NewBookService(repos.repo, zap.NewNop()), repos
}

func sampleBook(serial string, dept model.Department, year int) model.Book {
	return model.Book{
		Name:         "Book " + serial,
		Author:       "Author " + serial,
		SerialNumber: serial,
		Department:   dept,
		Major:        model.MajorSE,
		Year:         year,
	}
}

// ── Add 测试 ──

func TestBookService_Add_Success(t *testing.T) {
	svc, repos := setupTestBookService()

	book := model.Book{
		Name:         "Intro to Algorithms",
		Author:       "Cormen",
		SerialNumber: "SN-001",
		Department:   model.DepartmentCS,
		Major:        model.MajorSE,
		Year:         2,
	}
	result, err := svc.Add(context.Background(), book)
	if err != nil {
		t.Fatalf("Add 应成功: %v", err)
	}
	if result.ID == 0 {
		t.Error("期望生成 ID")
	}
	if result.DepartmentLabel != "Computer Science" || result.YearLabel != "2nd Year" {
		t.Errorf("展示文本不符: %+v", result)
	}

	// 新增后立即出现在列表中
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("期望 1 本图书，实际=%d", len(list))
	}
	got := repos.books.books[0]
	book.ID = got.ID
	if got != book {
		t.Errorf("持久化字段不符: %+v", got)
	}
}

func TestBookService_Add_DuplicateSerial(t *testing.T) {
	svc, repos := setupTestBookService()
	ctx := context.Background()

	if _, err := svc.Add(ctx, sampleBook("SN-001", model.DepartmentCS, 1)); err != nil {
		t.Fatalf("首次 Add 应成功: %v", err)
	}

	_, err := svc.Add(ctx, sampleBook("SN-001", model.DepartmentMATH, 3))
	if !errors.Is(err, ErrDuplicateSerial) {
		t.Fatalf("期望 ErrDuplicateSerial，实际: %v", err)
	}
	if n, _ := repos.books.Count(ctx); n != 1 {
		t.Errorf("重复编号后图书数量应保持 1，实际=%d", n)
	}
}

// ── Choices 测试 ──

func TestBookService_Choices_ReflectsNewBooks(t *testing.T) {
	svc, _ := setupTestBookService()
	ctx := context.Background()

	choices, err := svc.Choices(ctx)
	if err != nil {
		t.Fatalf("Choices 应成功: %v", err)
	}
	if len(choices) != 0 {
		t.Errorf("期望无选项，实际=%d", len(choices))
	}

	_, _ = svc.Add(ctx, model.Book{Name: "Linear Algebra", Author: "Strang", SerialNumber: "SN-9", Department: model.DepartmentMATH, Major: model.MajorDS, Year: 1})

	choices, _ = svc.Choices(ctx)
	if len(choices) != 1 {
		t.Fatalf("期望 1 个选项，实际=%d", len(choices))
	}
	if choices[0].Value != "1" || choices[0].Label != "Linear Algebra by Strang" {
		t.Errorf("选项不符: %+v", choices[0])
	}
}

func TestBookService_List_Error(t *testing.T) {
	svc, repos := setupTestBookService()
	repos.books.listErr = errors.New("db down")

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("期望返回错误")
	}
	if _, err := svc.Choices(context.Background()); err == nil {
		t.Error("期望返回错误")
	}
}

// ── Stats 测试 ──

func TestBookService_Stats(t *testing.T) {
	svc, repos := setupTestBookService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, sampleBook("SN-1", model.DepartmentCS, 1))
	_, _ = svc.Add(ctx, sampleBook("SN-2", model.DepartmentENG, 2))
	repos.borrows.records = append(repos.borrows.records, model.BorrowRecord{ID: 1, StudentID: "S1", BookID: 1})

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats 应成功: %v", err)
	}
	if stats.Books != 2 || stats.Borrows != 1 {
		t.Errorf("统计不符: %+v", stats)
	}
}
