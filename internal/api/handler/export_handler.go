package handler

import (
	"bytes"
	"context"

	"github.com/gin-gonic/gin"

	"campus-library/internal/service"
	"campus-library/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportBooks 导出图书目录
// GET /api/v1/export/books
func (h *ExportHandler) ExportBooks(c *gin.Context) {
	h.send(c, h.exportSvc.ExportBooks)
}

// ExportBorrows 导出借阅流水
// GET /api/v1/export/borrows
func (h *ExportHandler) ExportBorrows(c *gin.Context) {
	h.send(c, h.exportSvc.ExportBorrowLog)
}

func (h *ExportHandler) send(c *gin.Context, export func(context.Context) (*bytes.Buffer, string, error)) {
	buf, filename, err := export(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Attachment(c, filename, response.XLSXContentType, buf.Bytes())
}
