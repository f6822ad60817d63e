package registry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/export"
	"github.com/muhryhan/be-aset-dlh/internal/inventory/listing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler[T]) ExportExcel(c *gin.Context) {
	headers, rows, ok := h.exportMatrix(c)
	if !ok {
		return
	}

	data, err := export.Excel(headers, rows, h.def.Resource)
	if err != nil {
		h.log.Error("unable to build excel export", zap.String("resource", h.def.Resource), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat berkas ekspor", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportFilename("xlsx")))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler[T]) ExportPDF(c *gin.Context) {
	headers, rows, ok := h.exportMatrix(c)
	if !ok {
		return
	}

	data, err := export.PDF(headers, rows, export.DefaultLogoPath)
	if err != nil {
		h.log.Error("unable to build pdf export", zap.String("resource", h.def.Resource), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat berkas ekspor", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportFilename("pdf")))
	c.Data(http.StatusOK, "application/pdf", data)
}

// exportMatrix flattens the current (optionally filtered) list into the
// header/row matrix both converters consume. File columns stay out of the
// documents; their paths mean nothing on paper.
func (h *Handler[T]) exportMatrix(c *gin.Context) ([]string, [][]string, bool) {
	items, err := h.store.List()
	if err != nil {
		h.log.Error("unable to list records for export", zap.String("resource", h.def.Resource), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return nil, nil, false
	}

	if query := c.Query("search"); query != "" {
		items = listing.Filter(items, query, h.matchItem)
	}

	var columns []Column
	for _, col := range h.def.Columns {
		if col.Kind == KindFile {
			continue
		}
		columns = append(columns, col)
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.label()
	}

	rows := make([][]string, len(items))
	for i := range items {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = h.meta.render(&items[i], col.Name)
		}
		rows[i] = row
	}

	return headers, rows, true
}

func (h *Handler[T]) exportFilename(ext string) string {
	return fmt.Sprintf("%s-%s.%s", h.def.Resource, time.Now().Format("20060102"), ext)
}
