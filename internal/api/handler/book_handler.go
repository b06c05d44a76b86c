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
	addBookTitle   = "Add Book"
	msgBookAdded   = "Book added successfully!"
	msgSerialTaken = "A book with this serial number already exists."
)

// BookHandler 图书模块 HTTP 处理器
type BookHandler struct {
	bookSvc service.BookService
}

// NewBookHandler 创建 BookHandler
func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

// AddBookForm 新增图书表单
// GET /add_book
func (h *BookHandler) AddBookForm(c *gin.Context) {
	page := web.NewPage(addBookTitle, dto.AddBookRequest{})
	page.Flash = popFlash(c)
	render(c, http.StatusOK, web.AddBookTemplate, page)
}

// AddBook 提交新增图书
// POST /add_book
func (h *BookHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBind(&req); err != nil {
		page := web.NewPage(addBookTitle, req)
		page.Error = msgInvalidSubmission
		render(c, http.StatusBadRequest, web.AddBookTemplate, page)
		return
	}

	result := form.ValidateAddBook(req)
	if !result.OK() {
		page := web.NewPage(addBookTitle, req)
		page.Errors = result.Errors
		render(c, http.StatusOK, web.AddBookTemplate, page)
		return
	}

	if _, err := h.bookSvc.Add(c.Request.Context(), result.Value); err != nil {
		page := web.NewPage(addBookTitle, req)
		if errors.Is(err, service.ErrDuplicateSerial) {
			page.Errors = form.FieldErrors{"serial_number": msgSerialTaken}
			render(c, http.StatusConflict, web.AddBookTemplate, page)
			return
		}
		page.Error = msgUnexpectedError
		render(c, http.StatusInternalServerError, web.AddBookTemplate, page)
		return
	}

	redirectWithFlash(c, "/add_book", msgBookAdded)
}

// ListBooks 图书目录
// GET /api/v1/books
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": books})
}
