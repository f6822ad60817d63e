package registry

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/muhryhan/be-aset-dlh/internal/inventory/listing"
	"github.com/muhryhan/be-aset-dlh/internal/media"
	"github.com/muhryhan/be-aset-dlh/pkg/acl"
	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"
	"github.com/muhryhan/be-aset-dlh/pkg/auditlog"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store is the persistence contract the handler needs; satisfied by
// *Repository[T] and mocked in tests.
type Store[T any] interface {
	List() ([]T, error)
	GetByID(id int) (*T, bool, error)
	GetByKey(key string) (*T, bool, error)
	ListByKey(key string) ([]T, error)
	Insert(item *T) (int, error)
	Update(id int, item *T) (bool, error)
	UpdateColumn(id int, column string, value interface{}) error
	Delete(id int) (bool, error)
}

// Handler serves the uniform CRUD surface every asset category exposes:
// list with optional search/paging, fetch by registration key, create,
// update, delete and the two export formats.
type Handler[T any] struct {
	def         Definition
	store       Store[T]
	files       *media.Store
	audit       *auditlog.Auditlog
	log         *zap.Logger
	meta        structMeta
	afterCreate func(item *T)
	afterDelete func(item *T)
}

func NewHandler[T any](def Definition, store Store[T], files *media.Store, audit *auditlog.Auditlog, log *zap.Logger) (*Handler[T], error) {
	meta, err := newStructMeta[T]()
	if err != nil {
		return nil, err
	}
	return &Handler[T]{
		def:   def,
		store: store,
		files: files,
		audit: audit,
		log:   log,
		meta:  meta,
	}, nil
}

// AfterCreate registers a hook run once a record is persisted. The asset
// categories with periodic-service checklists seed their checklist row here.
func (h *Handler[T]) AfterCreate(fn func(item *T)) *Handler[T] {
	h.afterCreate = fn
	return h
}

// AfterDelete mirrors AfterCreate for destructive cleanup.
func (h *Handler[T]) AfterDelete(fn func(item *T)) *Handler[T] {
	h.afterDelete = fn
	return h
}

func (h *Handler[T]) RegisterRoutes(api *gin.RouterGroup) {
	res := h.def.Resource
	api.GET("/"+res, security.Authorize(res, acl.ActionRead), h.List)
	api.GET("/"+res+"/export/excel", security.Authorize(res, acl.ActionRead), h.ExportExcel)
	api.GET("/"+res+"/export/pdf", security.Authorize(res, acl.ActionRead), h.ExportPDF)
	api.GET("/"+res+"/:key", security.Authorize(res, acl.ActionRead), h.GetByKey)
	if h.def.ParentPath != "" {
		api.GET("/"+res+"/"+h.def.ParentPath+"/:key", security.Authorize(res, acl.ActionRead), h.ListByParent)
	}
	api.POST("/"+res, security.Authorize(res, acl.ActionCreate), h.Create)
	api.PUT("/"+res+"/:key", security.Authorize(res, acl.ActionUpdate), h.Update)
	api.DELETE("/"+res+"/:key", security.Authorize(res, acl.ActionDelete), h.Delete)
}

func (h *Handler[T]) List(c *gin.Context) {
	items, err := h.store.List()
	if err != nil {
		h.log.Error("unable to list records", zap.String("resource", h.def.Resource), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if items == nil {
		items = []T{}
	}

	if query := c.Query("search"); query != "" {
		items = listing.Filter(items, query, h.matchItem)
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		pg := listing.Paginate(items, page)
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

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *Handler[T]) GetByKey(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind registration key"})
		return
	}

	item, found, err := h.store.GetByKey(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

// ListByParent returns every row for one parent key. The plant movement
// pages read a plant's full in/out history through it.
func (h *Handler[T]) ListByParent(c *gin.Context) {
	items, err := h.store.ListByKey(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if items == nil {
		items = []T{}
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *Handler[T]) Create(c *gin.Context) {
	item, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	if ok := h.saveUploads(c, item, nil); !ok {
		return
	}

	id, err := h.store.Insert(item)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	if h.def.QRCode {
		h.generateQRCode(c, id, item)
	}

	if h.afterCreate != nil {
		h.afterCreate(item)
	}
	h.logAudit(c, "create", item)

	c.JSON(http.StatusCreated, gin.H{"data": item, "message": "Data berhasil disimpan"})
}

func (h *Handler[T]) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("key"))
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

	item, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	if ok := h.saveUploads(c, item, existing); !ok {
		return
	}

	updated, err := h.store.Update(id, item)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	h.meta.setID(item, id)
	if h.def.QRCode {
		h.refreshQRCode(c, id, item, existing)
	}
	h.logAudit(c, "update", item)

	c.JSON(http.StatusOK, gin.H{"data": item, "message": "Data berhasil diperbarui"})
}

func (h *Handler[T]) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("key"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind id, value must be numeric"})
		return
	}

	item, found, err := h.store.GetByID(id)
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

	h.removeFiles(item)
	if h.afterDelete != nil {
		h.afterDelete(item)
	}
	h.logAudit(c, "delete", item)

	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil dihapus"})
}

// bindAndValidate decodes the request body (JSON, or multipart when the
// form carries files) into the model and enforces the required columns.
func (h *Handler[T]) bindAndValidate(c *gin.Context) (*T, bool) {
	var item T

	contentType := c.ContentType()
	var err error
	if strings.HasPrefix(contentType, "multipart/form-data") {
		err = c.ShouldBind(&item)
	} else {
		err = c.ShouldBindJSON(&item)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return nil, false
	}

	for _, col := range h.def.Columns {
		if col.Required && h.meta.isZero(&item, col.Name) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validasi gagal",
				"details": col.label() + " wajib diisi",
			})
			return nil, false
		}
	}

	return &item, true
}

// saveUploads stores any uploaded file columns. On update, columns without
// a fresh upload keep their stored value from existing.
func (h *Handler[T]) saveUploads(c *gin.Context, item *T, existing *T) bool {
	for _, col := range h.def.Columns {
		if col.Kind != KindFile {
			continue
		}

		file, err := c.FormFile(col.Name)
		if err != nil || file == nil {
			if existing != nil {
				h.meta.setString(item, col.Name, h.meta.getString(existing, col.Name))
			}
			continue
		}

		if h.files == nil {
			continue
		}
		rel, err := h.files.SaveUpload(c, h.def.Resource, file)
		if err != nil {
			h.log.Error("unable to store upload", zap.String("resource", h.def.Resource), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan berkas", "details": err.Error()})
			return false
		}

		if existing != nil {
			if old := h.meta.getString(existing, col.Name); old != "" {
				_ = h.files.Remove(old)
			}
		}
		h.meta.setString(item, col.Name, rel)
	}

	// Server-owned columns carried over untouched on update.
	if existing != nil && h.def.QRCode {
		h.meta.setString(item, "qrcode", h.meta.getString(existing, "qrcode"))
	}

	return true
}

func (h *Handler[T]) generateQRCode(c *gin.Context, id int, item *T) {
	if h.files == nil {
		return
	}

	key := h.meta.getString(item, h.def.KeyColumn)
	rel, err := h.files.SaveQRCode(h.def.Resource, key, key)
	if err != nil {
		h.log.Error("unable to generate qr code", zap.String("resource", h.def.Resource), zap.Error(err))
		return
	}

	h.meta.setString(item, "qrcode", rel)
	if err := h.store.UpdateColumn(id, "qrcode", rel); err != nil {
		h.log.Error("unable to persist qr code path", zap.Error(err))
	}
}

// refreshQRCode regenerates the QR image when the registration key changed,
// since the encoded content is the key itself.
func (h *Handler[T]) refreshQRCode(c *gin.Context, id int, item *T, existing *T) {
	oldKey := h.meta.getString(existing, h.def.KeyColumn)
	newKey := h.meta.getString(item, h.def.KeyColumn)
	if oldKey == newKey {
		return
	}

	if h.files != nil {
		if old := h.meta.getString(existing, "qrcode"); old != "" {
			_ = h.files.Remove(old)
		}
	}
	h.generateQRCode(c, id, item)
}

func (h *Handler[T]) removeFiles(item *T) {
	if h.files == nil {
		return
	}
	for _, col := range h.def.Columns {
		if col.Kind != KindFile {
			continue
		}
		if rel := h.meta.getString(item, col.Name); rel != "" {
			_ = h.files.Remove(rel)
		}
	}
	if h.def.QRCode {
		if rel := h.meta.getString(item, "qrcode"); rel != "" {
			_ = h.files.Remove(rel)
		}
	}
}

func (h *Handler[T]) writeStoreError(c *gin.Context, err error) {
	var unique *apperrors.UniqueViolationError
	if errors.As(err, &unique) {
		c.JSON(http.StatusConflict, gin.H{"error": "Nomor registrasi sudah terdaftar"})
		return
	}
	h.log.Error("store error", zap.String("resource", h.def.Resource), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data", "details": err.Error()})
}

func (h *Handler[T]) logAudit(c *gin.Context, action string, item *T) {
	if h.audit == nil {
		return
	}
	aud, ok := any(item).(auditlog.Auditable)
	if !ok {
		return
	}

	data := map[string]interface{}{
		h.def.KeyColumn: h.meta.getString(item, h.def.KeyColumn),
		"msg":           "resource " + action,
	}
	var uid *int
	if userID, ok := security.UserIDFromContext(c); ok {
		uid = &userID
	}
	go h.audit.Log(action, uid, data, aud)
}

func (h *Handler[T]) matchItem(item T, query string) bool {
	for _, col := range h.def.Columns {
		if !col.Search {
			continue
		}
		value := h.meta.render(&item, col.Name)
		if value != "-" && strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}
