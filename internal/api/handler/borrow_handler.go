package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-library/internal/dto"
	"campus-library/internal/form"
	"campus-library/internal/service"
	"campus-library/internal/web"
	"campus-library/pkg/response"
)

const (
	borrowTitle     = "Borrow Book"
	msgBookBorrowed = "Book borrowed successfully!"
	msgBookUnknown  = "The selected book no longer exists."
)

// BorrowHandler 借阅模块 HTTP 处理器
type BorrowHandler struct {
	bookSvc   service.BookService
	borrowSvc service.BorrowService
}

// NewBorrowHandler 创建 BorrowHandler
func NewBorrowHandler(bookSvc service.BookService, borrowSvc service.BorrowService) *BorrowHandler {
	return &BorrowHandler{bookSvc: bookSvc, borrowSvc: borrowSvc}
}

// BorrowForm 借阅登记表单，图书选项每次实时查询
// GET /book_borrow
func (h *BorrowHandler) BorrowForm(c *gin.Context) {
	page := web.NewPage(borrowTitle, dto.BorrowBookRequest{})
	page.Flash = popFlash(c)

	choices, err := h.bookSvc.Choices(c.Request.Context())
	if err != nil {
		page.Error = msgUnexpectedError
		render(c, http.StatusInternalServerError, web.BorrowTemplate, page)
		return
	}
	page.Books = choices
	render(c, http.StatusOK, web.BorrowTemplate, page)
}

// Borrow 提交借阅登记
// POST /book_borrow
func (h *BorrowHandler) Borrow(c *gin.Context) {
	var req dto.BorrowBookRequest
	bindErr := c.ShouldBind(&req)

	page := web.NewPage(borrowTitle, req)

	choices, err := h.bookSvc.Choices(c.Request.Context())
	if err != nil {
		page.Error = msgUnexpectedError
		render(c, http.StatusInternalServerError, web.BorrowTemplate, page)
		return
	}
	page.Books = choices

	if bindErr != nil {
		page.Error = msgInvalidSubmission
		render(c, http.StatusBadRequest, web.BorrowTemplate, page)
		return
	}

	result := form.ValidateBorrow(req, choices)
	if !result.OK() {
		page.Errors = result.Errors
		render(c, http.StatusOK, web.BorrowTemplate, page)
		return
	}

	if _, err := h.borrowSvc.Borrow(c.Request.Context(), result.Value); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			page.Errors = form.FieldErrors{"book": msgBookUnknown}
			render(c, http.StatusConflict, web.BorrowTemplate, page)
			return
		}
		page.Error = msgUnexpectedError
		render(c, http.StatusInternalServerError, web.BorrowTemplate, page)
		return
	}

	redirectWithFlash(c, "/book_borrow", msgBookBorrowed)
}

// History 学生借阅历史
// GET /api/v1/students/:student_id/borrows
func (h *BorrowHandler) History(c *gin.Context) {
	studentID := c.Param("student_id")
	if studentID == "" {
		response.BadRequest(c, response.CodeValidation, "student_id is required")
		return
	}

	items, err := h.borrowSvc.History(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": items})
}
