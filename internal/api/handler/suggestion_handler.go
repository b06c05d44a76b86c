package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-library/internal/dto"
	"campus-library/internal/form"
	"campus-library/internal/service"
	"campus-library/internal/web"
	"campus-library/pkg/response"
)

const suggestionsTitle = "Book Suggestions"

// SuggestionHandler 图书推荐 HTTP 处理器
type SuggestionHandler struct {
	suggestionSvc service.SuggestionService
}

// NewSuggestionHandler 创建 SuggestionHandler
func NewSuggestionHandler(suggestionSvc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionSvc: suggestionSvc}
}

// SuggestionForm 空表单，不展示结果
// GET /book_suggestions
func (h *SuggestionHandler) SuggestionForm(c *gin.Context) {
	render(c, http.StatusOK, web.SuggestionsTemplate, web.NewPage(suggestionsTitle, dto.SuggestionRequest{}))
}

// Suggest 计算推荐并在同一页面展示，不重定向
// POST /book_suggestions
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req dto.SuggestionRequest
	if err := c.ShouldBind(&req); err != nil {
		page := web.NewPage(suggestionsTitle, req)
		page.Error = msgInvalidSubmission
		render(c, http.StatusBadRequest, web.SuggestionsTemplate, page)
		return
	}

	page := web.NewPage(suggestionsTitle, req)

	result := form.ValidateSuggestion(req)
	if !result.OK() {
		page.Errors = result.Errors
		render(c, http.StatusOK, web.SuggestionsTemplate, page)
		return
	}

	books, err := h.suggestionSvc.Suggest(c.Request.Context(), result.Value)
	if err != nil {
		page.Error = msgUnexpectedError
		render(c, http.StatusInternalServerError, web.SuggestionsTemplate, page)
		return
	}

	page.Submitted = true
	page.Suggestions = books
	render(c, http.StatusOK, web.SuggestionsTemplate, page)
}

// SuggestAPI JSON 形式的推荐查询
// GET /api/v1/suggestions?student_name=&student_id=&department=&year=
func (h *SuggestionHandler) SuggestAPI(c *gin.Context) {
	var req dto.SuggestionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeValidation, "Invalid query parameters")
		return
	}

	result := form.ValidateSuggestion(req)
	if !result.OK() {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation,
			"Validation failed", result.Errors.String())
		return
	}

	books, err := h.suggestionSvc.Suggest(c.Request.Context(), result.Value)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": books})
}
