package servicing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/export"
	"github.com/muhryhan/be-aset-dlh/internal/inventory/listing"
	"github.com/muhryhan/be-aset-dlh/internal/media"
	"github.com/muhryhan/be-aset-dlh/pkg/acl"
	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"
	"github.com/muhryhan/be-aset-dlh/pkg/auditlog"
	"github.com/muhryhan/be-aset-dlh/pkg/models"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServisHandler serves the itemized service records. Unlike the asset
// categories it cannot ride the generic engine: each record carries a
// nested part list, submitted as a JSON field inside the multipart form.
type ServisHandler struct {
	store *ServisRepository
	files *media.Store
	audit *auditlog.Auditlog
	log   *zap.Logger
}

func NewServisHandler(store *ServisRepository, files *media.Store, audit *auditlog.Auditlog, log *zap.Logger) *ServisHandler {
	return &ServisHandler{store: store, files: files, audit: audit, log: log}
}

func (h *ServisHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/servis", security.Authorize("servis", acl.ActionRead), h.List)
	api.GET("/servis/export/excel", security.Authorize("servis", acl.ActionRead), h.ExportExcel)
	api.GET("/servis/export/pdf", security.Authorize("servis", acl.ActionRead), h.ExportPDF)
	api.GET("/servis/nounik/:key", security.Authorize("servis", acl.ActionRead), h.ListByKey)
	api.POST("/servis", security.Authorize("servis", acl.ActionCreate), h.Create)
	api.PUT("/servis/:id", security.Authorize("servis", acl.ActionUpdate), h.Update)
	api.DELETE("/servis/:id", security.Authorize("servis", acl.ActionDelete), h.Delete)
}

func (h *ServisHandler) List(c *gin.Context) {
	records, err := h.store.List()
	if err != nil {
		h.log.Error("unable to list servis records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if records == nil {
		records = []models.Servis{}
	}

	if query := c.Query("search"); query != "" {
		records = listing.Filter(records, query, matchServis)
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		pg := listing.Paginate(records, page)
		c.JSON(http.StatusOK, gin.H{
			"data": pg.Items,
			"meta": gin.H{
				"current_page": pg.CurrentPage,
				"total_pages":  pg.TotalPages,
				"total_items":  pg.TotalItems,
				"pages":        pg.PageNumbers,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// ListByKey returns the full service history of one asset.
func (h *ServisHandler) ListByKey(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind registration key"})
		return
	}

	records, err := h.store.ListByKey(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if records == nil {
		records = []models.Servis{}
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (h *ServisHandler) Create(c *gin.Context) {
	record, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	if ok := h.saveUpload(c, record, nil); !ok {
		return
	}

	if err := h.store.Create(record); err != nil {
		h.writeStoreError(c, err)
		return
	}

	h.logAudit(c, "create", record)
	c.JSON(http.StatusCreated, gin.H{"data": record, "message": "Data berhasil disimpan"})
}

func (h *ServisHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind id, value must be numeric"})
		return
	}

	existing, found, err := h.store.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	record, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	if ok := h.saveUpload(c, record, existing); !ok {
		return
	}

	updated, err := h.store.Update(id, record)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	h.logAudit(c, "update", record)
	c.JSON(http.StatusOK, gin.H{"data": record, "message": "Data berhasil diperbarui"})
}

func (h *ServisHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind id, value must be numeric"})
		return
	}

	record, found, err := h.store.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	deleted, err := h.store.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus data", "details": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	if h.files != nil && record.Gambar != "" {
		_ = h.files.Remove(record.Gambar)
	}
	h.logAudit(c, "delete", record)
	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil dihapus"})
}

func (h *ServisHandler) ExportExcel(c *gin.Context) {
	headers, rows, err := h.exportMatrix(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}

	payload, err := export.Excel(headers, rows, "Servis")
	if err != nil {
		h.log.Error("unable to build servis workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat berkas ekspor", "details": err.Error()})
		return
	}

	filename := "servis-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}

func (h *ServisHandler) ExportPDF(c *gin.Context) {
	headers, rows, err := h.exportMatrix(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}

	payload, err := export.PDF(headers, rows, export.DefaultLogoPath)
	if err != nil {
		h.log.Error("unable to build servis pdf", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat berkas ekspor", "details": err.Error()})
		return
	}

	filename := "servis-" + time.Now().Format("20060102") + ".pdf"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", payload)
}

func (h *ServisHandler) exportMatrix(search string) ([]string, [][]string, error) {
	records, err := h.store.List()
	if err != nil {
		return nil, nil, err
	}
	if search != "" {
		records = listing.Filter(records, search, matchServis)
	}

	headers := []string{"No Registrasi", "Tanggal", "Nama Bengkel", "Biaya Servis", "Onderdil"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		parts := make([]string, 0, len(rec.Onderdil))
		for _, part := range rec.Onderdil {
			parts = append(parts, part.NamaOnderdil)
		}
		partCell := export.Placeholder
		if len(parts) > 0 {
			partCell = strings.Join(parts, ", ")
		}
		rows = append(rows, []string{
			rec.NoRegistrasi,
			rec.Tanggal.String(),
			rec.NamaBengkel,
			strconv.FormatInt(rec.BiayaServis, 10),
			partCell,
		})
	}
	return headers, rows, nil
}

// bindAndValidate decodes a service record from JSON or from a multipart
// form. In the form case the part list arrives as a JSON array inside the
// onderdil field, next to the gambar file.
func (h *ServisHandler) bindAndValidate(c *gin.Context) (*models.Servis, bool) {
	var record models.Servis

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
			return nil, false
		}
		if raw := c.PostForm("onderdil"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &record.Onderdil); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": "onderdil: " + err.Error()})
				return nil, false
			}
		}
	} else {
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
			return nil, false
		}
	}

	required := []struct {
		label string
		empty bool
	}{
		{"No registrasi", record.NoRegistrasi == ""},
		{"Tanggal", record.Tanggal.IsZero()},
		{"Nama bengkel", record.NamaBengkel == ""},
		{"Biaya servis", record.BiayaServis == 0},
	}
	for _, field := range required {
		if field.empty {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validasi gagal", "details": field.label + " wajib diisi"})
			return nil, false
		}
	}

	for _, part := range record.Onderdil {
		if part.NamaOnderdil == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validasi gagal", "details": "Nama onderdil wajib diisi"})
			return nil, false
		}
	}

	return &record, true
}

func (h *ServisHandler) saveUpload(c *gin.Context, record *models.Servis, existing *models.Servis) bool {
	file, err := c.FormFile("gambar")
	if err != nil || file == nil {
		if existing != nil {
			record.Gambar = existing.Gambar
		}
		return true
	}
	if h.files == nil {
		return true
	}

	rel, err := h.files.SaveUpload(c, "servis", file)
	if err != nil {
		h.log.Error("unable to store servis upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan berkas", "details": err.Error()})
		return false
	}

	if existing != nil && existing.Gambar != "" {
		_ = h.files.Remove(existing.Gambar)
	}
	record.Gambar = rel
	return true
}

func (h *ServisHandler) writeStoreError(c *gin.Context, err error) {
	var fk *apperrors.ForeignKeyViolationError
	if errors.As(err, &fk) {
		c.JSON(http.StatusConflict, gin.H{"error": "Nomor registrasi tidak dikenal"})
		return
	}
	h.log.Error("servis store error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data", "details": err.Error()})
}

func (h *ServisHandler) logAudit(c *gin.Context, action string, record *models.Servis) {
	if h.audit == nil {
		return
	}
	data := map[string]interface{}{
		"no_registrasi": record.NoRegistrasi,
		"msg":           "resource " + action,
	}
	var uid *int
	if userID, ok := security.UserIDFromContext(c); ok {
		uid = &userID
	}
	go h.audit.Log(action, uid, data, record)
}

func matchServis(record models.Servis, query string) bool {
	for _, value := range []string{record.NoRegistrasi, record.NamaBengkel} {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}

// PeriodicHandler exposes the scanner's read path: a registration key,
// usually decoded from a QR label, resolves to its periodic checklist
// whatever the category.
type PeriodicHandler struct {
	store *PeriodicStore
	log   *zap.Logger
}

func NewPeriodicHandler(store *PeriodicStore, log *zap.Logger) *PeriodicHandler {
	return &PeriodicHandler{store: store, log: log}
}

func (h *PeriodicHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/servisberkalaqrcode/:code", h.LookupByCode)
}

func (h *PeriodicHandler) LookupByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind registration key"})
		return
	}

	_, record, found, err := h.store.Lookup(code)
	if err != nil {
		h.log.Error("periodic lookup failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}
