package dto

// ── 图书模块 DTO ──

// AddBookRequest 新增图书表单（原样回显，故全部为字符串）
type AddBookRequest struct {
	Name         string `form:"name"          json:"name"          validate:"required,max=100"`
	Author       string `form:"author"        json:"author"        validate:"required,max=100"`
	SerialNumber string `form:"serial_number" json:"serial_number" validate:"required,max=20"`
	Department   string `form:"department"    json:"department"    validate:"required,department"`
	Major        string `form:"major"         json:"major"         validate:"required,major"`
	Year         string `form:"year"          json:"year"          validate:"required,year"`
}

// BookResponse 图书信息响应
type BookResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Author          string `json:"author"`
	SerialNumber    string `json:"serial_number"`
	Department      string `json:"department"`
	DepartmentLabel string `json:"department_label"`
	Major           string `json:"major"`
	MajorLabel      string `json:"major_label"`
	Year            int    `json:"year"`
	YearLabel       string `json:"year_label"`
}

// LibraryStats 馆藏与借阅总数
type LibraryStats struct {
	Books   int64 `json:"books"`
	Borrows int64 `json:"borrows"`
}
