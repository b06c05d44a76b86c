package web

import (
	"embed"
	"fmt"
	"html/template"

	"campus-library/internal/dto"
	"campus-library/internal/form"
	"campus-library/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// 模板名称
const (
	HomeTemplate        = "home.html"
	AddBookTemplate     = "add_book.html"
	BorrowTemplate      = "book_borrow.html"
	SuggestionsTemplate = "book_suggestions.html"
)

// Page 页面视图数据，模板只读取这里的字段
type Page struct {
	Title  string
	Flash  string
	Error  string
	Form   any
	Errors form.FieldErrors

	Departments []model.Choice
	Majors      []model.Choice
	Years       []model.Choice
	Books       []model.Choice

	Suggestions []dto.BookResponse
	Submitted   bool

	Stats *dto.LibraryStats
}

// NewPage 创建带有固定下拉选项的页面数据
func NewPage(title string, formValue any) *Page {
	return &Page{
		Title:       title,
		Form:        formValue,
		Departments: model.DepartmentChoices,
		Majors:      model.MajorChoices,
		Years:       model.YearChoices,
	}
}

var funcs = template.FuncMap{
	"selected": func(current, value string) bool { return current == value },
	"dict":     dict,
}

// dict 将 key/value 序列组装为 map，用于向子模板传多个参数
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict 参数个数必须为偶数")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict 的 key 必须为字符串: %v", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Templates 解析内嵌模板，供 gin 的 SetHTMLTemplate 使用
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
