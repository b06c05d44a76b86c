package dto

// ── 推荐模块 DTO ──

// SuggestionRequest 图书推荐表单；JSON 接口从 query 读取同名参数
type SuggestionRequest struct {
	StudentName string `form:"student_name" json:"student_name" validate:"required,max=100"`
	StudentID   string `form:"student_id"   json:"student_id"   validate:"required,max=20"`
	Department  string `form:"department"   json:"department"   validate:"required,department"`
	Year        string `form:"year"         json:"year"         validate:"required,year"`
}

// SuggestionQuery 校验通过后的推荐查询条件
type SuggestionQuery struct {
	StudentName string
	StudentID   string
	Department  string
	Year        int
}
