package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type importHandler struct {
	importService  portssvc.ImportSvc
	maxUploadBytes int64
}

// registerImportRoutes registers the upload route. Extra middleware, such as a
// rate limiter, runs in front of the handler.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc, maxUploadBytes int64, extra ...gin.HandlerFunc) {
	h := &importHandler{importService: importService, maxUploadBytes: maxUploadBytes}
	rg.POST("/imports", append(extra, h.importData)...)
}

// importData takes a multipart form with the pasted statement table in the
// "html" field and an optional "invoices" xlsx file.
func (h *importHandler) importData(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	req := dto.ImportRequest{StatementHTML: c.PostForm("html")}
	fh, err := c.FormFile("invoices")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read invoices file"})
			return
		}
		defer f.Close()
		if req.Invoices, err = io.ReadAll(f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read invoices file"})
			return
		}
		req.InvoicesName = fh.Filename
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload too large"})
			return
		}
		logger.Warn("Failed to read multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.StatementHTML) == "" && len(req.Invoices) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a statement table in 'html' or an 'invoices' file"})
		return
	}

	report, err := h.importService.Import(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to import bookings")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportReportResponse(report))
}
