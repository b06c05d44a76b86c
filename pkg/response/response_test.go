package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, gin.H{"list": []int{1}})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
}

func TestErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorWithDetails(c, http.StatusBadRequest, CodeValidation, "Validation failed", "year: Not a valid choice.")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeValidation, resp.Code)
	assert.Equal(t, "year: Not a valid choice.", resp.Details)
	assert.Nil(t, resp.Data)
}

func TestShortcuts(t *testing.T) {
	cases := []struct {
		name   string
		call   func(c *gin.Context)
		status int
	}{
		{"conflict", func(c *gin.Context) { Conflict(c, CodeDuplicateBook, "dup") }, http.StatusConflict},
		{"not found", func(c *gin.Context) { NotFound(c, CodeBookNotFound, "missing") }, http.StatusNotFound},
		{"internal", InternalError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.call(c)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Attachment(c, "books_20240101.xlsx", XLSXContentType, []byte("xlsx"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="books_20240101.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, XLSXContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "xlsx", w.Body.String())
}
