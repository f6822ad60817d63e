package scan

import (
	"errors"
	"net/http"

	"github.com/muhryhan/be-aset-dlh/internal/servicing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler accepts camera frames from the dashboard scanner, decodes the
// code they contain and resolves it to the asset's periodic checklist.
type Handler struct {
	decoder  *Decoder
	periodic *servicing.PeriodicStore
	log      *zap.Logger
}

func NewHandler(periodic *servicing.PeriodicStore, log *zap.Logger) *Handler {
	return &Handler{decoder: &Decoder{}, periodic: periodic, log: log}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/scan", h.Scan)
}

func (h *Handler) Scan(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind image field"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	defer src.Close()

	code, err := h.decoder.Decode(src)
	if err != nil {
		if errors.Is(err, ErrNoCode) {
			// The scanner polls with live frames; most contain no code
			// and that is not worth a log line.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "NO_CODE"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gambar tidak dapat dibaca", "details": err.Error()})
		return
	}

	_, record, found, err := h.periodic.Lookup(code)
	if err != nil {
		h.log.Error("scan lookup failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan", "code": code})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record, "code": code})
}
