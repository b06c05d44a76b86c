package form

import (
	"strconv"
	"strings"

	"campus-library/internal/dto"
	"campus-library/internal/model"
)

// ValidateAddBook 校验新增图书表单，成功时返回待插入的 Book
func ValidateAddBook(req dto.AddBookRequest) Result[model.Book] {
	trim(&req.Name, &req.Author, &req.SerialNumber, &req.Department, &req.Major, &req.Year)

	if errs := check(&req); len(errs) > 0 {
		return Invalid[model.Book](errs)
	}

	year, _ := parseYear(req.Year)
	return Valid(model.Book{
		Name:         req.Name,
		Author:       req.Author,
		SerialNumber: req.SerialNumber,
		Department:   model.Department(req.Department),
		Major:        model.Major(req.Major),
		Year:         year,
	})
}

// ValidateBorrow 校验借阅表单
// books 为本次请求实时查询出的图书选项，book 字段必须命中其中之一
func ValidateBorrow(req dto.BorrowBookRequest, books []model.Choice) Result[model.BorrowRecord] {
	trim(&req.StudentName, &req.StudentID, &req.Department, &req.Year, &req.Book, &req.BorrowDate)

	errs := check(&req)

	var bookID int64
	if req.Book != "" {
		id, err := strconv.ParseInt(req.Book, 10, 64)
		if err != nil || !containsChoice(books, req.Book) {
			errs.Add("book", msgInvalidChoice)
		}
		bookID = id
	}

	if len(errs) > 0 {
		return Invalid[model.BorrowRecord](errs)
	}

	year, _ := parseYear(req.Year)
	date, _ := parseDate(req.BorrowDate)
	return Valid(model.BorrowRecord{
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Department:  model.Department(req.Department),
		Year:        year,
		BookID:      bookID,
		BorrowDate:  date,
	})
}

// ValidateSuggestion 校验图书推荐表单
func ValidateSuggestion(req dto.SuggestionRequest) Result[dto.SuggestionQuery] {
	trim(&req.StudentName, &req.StudentID, &req.Department, &req.Year)

	if errs := check(&req); len(errs) > 0 {
		return Invalid[dto.SuggestionQuery](errs)
	}

	year, _ := parseYear(req.Year)
	return Valid(dto.SuggestionQuery{
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Department:  req.Department,
		Year:        year,
	})
}

// BookChoices 将图书列表转换为借阅表单选项 (id, "书名 by 作者")
func BookChoices(books []model.Book) []model.Choice {
	choices := make([]model.Choice, 0, len(books))
	for _, b := range books {
		choices = append(choices, model.Choice{
			Value: strconv.FormatInt(b.ID, 10),
			Label: b.Label(),
		})
	}
	return choices
}

func containsChoice(choices []model.Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
