package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"campus-library/internal/dto"
	"campus-library/internal/model"
)

func setupTestSuggestionService() (SuggestionService, *testRepos) {
	repos := newTestRepos()
	return NewSuggestionService(repos.repo, zap.NewNop()), repos
}

func suggestionIDs(books []dto.BookResponse) []int64 {
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestSuggestionService_NoHistory_ReturnsDepartmentYearMatches(t *testing.T) {
	svc, repos := setupTestSuggestionService()
	ctx := context.Background()
	for _, b := range []model.Book{
		sampleBook("A", model.DepartmentCS, 2),
		sampleBook("B", model.DepartmentCS, 3),
		sampleBook("C", model.DepartmentMATH, 2),
		sampleBook("D", model.DepartmentCS, 2),
	} {
		b := b
		_ = repos.books.Insert(ctx, &b)
	}

	result, err := svc.Suggest(ctx, dto.SuggestionQuery{StudentID: "S1", Department: "CS", Year: 2})
	if err != nil {
		t.Fatalf("Suggest 应成功: %v", err)
	}
	if got := suggestionIDs(result); !reflect.DeepEqual(got, []int64{1, 4}) {
		t.Errorf("期望 [1 4]，实际=%v", got)
	}
}

func TestSuggestionService_NoMatch_ReturnsEmptyList(t *testing.T) {
	svc, _ := setupTestSuggestionService()

	result, err := svc.Suggest(context.Background(), dto.SuggestionQuery{StudentID: "S1", Department: "ENG", Year: 4})
	if err != nil {
		t.Fatalf("Suggest 应成功: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("期望空列表，实际=%v", result)
	}
}

// 借阅历史按 student_id 统计，与借阅时登记的院系/年级无关
func TestSuggestionService_ExcludesBorrowedRegardlessOfRecordDepartment(t *testing.T) {
	svc, repos := setupTestSuggestionService()
	ctx := context.Background()
	book := sampleBook("A", model.DepartmentCS, 2)
	_ = repos.books.Insert(ctx, &book)

	rec := borrowOf("S1", book.ID, time.Now())
	rec.Department = model.DepartmentENG
	rec.Year = 4
	_ = repos.borrows.Insert(ctx, &rec)

	result, _ := svc.Suggest(ctx, dto.SuggestionQuery{StudentID: "S1", Department: "CS", Year: 2})
	if len(result) != 0 {
		t.Errorf("已借图书不应被推荐，实际=%v", suggestionIDs(result))
	}

	// 其他学生不受影响
	result, _ = svc.Suggest(ctx, dto.SuggestionQuery{StudentID: "S2", Department: "CS", Year: 2})
	if len(result) != 1 {
		t.Errorf("期望其他学生仍可看到该书，实际=%v", suggestionIDs(result))
	}
}

func TestSuggestionService_Idempotent(t *testing.T) {
	svc, repos := setupTestSuggestionService()
	ctx := context.Background()
	for _, serial := range []string{"A", "B", "C"} {
		b := sampleBook(serial, model.DepartmentMATH, 1)
		_ = repos.books.Insert(ctx, &b)
	}
	rec := borrowOf("S1", 2, time.Now())
	_ = repos.borrows.Insert(ctx, &rec)

	q := dto.SuggestionQuery{StudentID: "S1", Department: "MATH", Year: 1}
	first, _ := svc.Suggest(ctx, q)
	second, _ := svc.Suggest(ctx, q)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("两次查询结果不一致: %v vs %v", first, second)
	}
}

// 完整场景：新增 → 借阅 → 推荐
func TestLibraryScenario_AddBorrowSuggest(t *testing.T) {
	repos := newTestRepos()
	svc := NewService(repos.repo, zap.NewNop())
	ctx := context.Background()

	algo, err := svc.Book.Add(ctx, model.Book{
		Name:         "Intro to Algorithms",
		Author:       "Cormen",
		SerialNumber: "SN-001",
		Department:   model.DepartmentCS,
		Major:        model.MajorSE,
		Year:         2,
	})
	if err != nil {
		t.Fatalf("新增图书失败: %v", err)
	}

	_, err = svc.Borrow.Borrow(ctx, model.BorrowRecord{
		StudentName: "Alice",
		StudentID:   "S1",
		Department:  model.DepartmentCS,
		Year:        2,
		BookID:      algo.ID,
		BorrowDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("登记借阅失败: %v", err)
	}

	second, err := svc.Book.Add(ctx, model.Book{
		Name:         "Data Structures",
		Author:       "Weiss",
		SerialNumber: "SN-002",
		Department:   model.DepartmentCS,
		Major:        model.MajorSE,
		Year:         2,
	})
	if err != nil {
		t.Fatalf("新增图书失败: %v", err)
	}

	result, err := svc.Suggestion.Suggest(ctx, dto.SuggestionQuery{StudentName: "Alice", StudentID: "S1", Department: "CS", Year: 2})
	if err != nil {
		t.Fatalf("Suggest 应成功: %v", err)
	}
	if got := suggestionIDs(result); !reflect.DeepEqual(got, []int64{second.ID}) {
		t.Errorf("期望仅推荐 SN-002 (id=%d)，实际=%v", second.ID, got)
	}
}
