package dto

// ── 借阅模块 DTO ──

// BorrowBookRequest 借阅登记表单
type BorrowBookRequest struct {
	StudentName string `form:"student_name" json:"student_name" validate:"required,max=100"`
	StudentID   string `form:"student_id"   json:"student_id"   validate:"required,max=20"`
	Department  string `form:"department"   json:"department"   validate:"required,department"`
	Year        string `form:"year"         json:"year"         validate:"required,year"`
	Book        string `form:"book"         json:"book"         validate:"required"`
	BorrowDate  string `form:"borrow_date"  json:"borrow_date"  validate:"required,date"` // "2024-01-10"
}

// BorrowRecordResponse 借阅记录响应
type BorrowRecordResponse struct {
	ID          int64  `json:"id"`
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Department  string `json:"department"`
	Year        int    `json:"year"`
	BookID      int64  `json:"book_id"`
	BorrowDate  string `json:"borrow_date"`
}

// BorrowHistoryItem 学生借阅历史（含图书信息）
type BorrowHistoryItem struct {
	RecordID     int64  `json:"record_id"`
	StudentName  string `json:"student_name"`
	StudentID    string `json:"student_id"`
	Department   string `json:"department"`
	Year         int    `json:"year"`
	BorrowDate   string `json:"borrow_date"`
	BookID       int64  `json:"book_id"`
	BookName     string `json:"book_name"`
	BookAuthor   string `json:"book_author"`
	SerialNumber string `json:"serial_number"`
}
