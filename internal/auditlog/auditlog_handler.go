package auditlog

import (
	"net/http"
	"strconv"

	"github.com/muhryhan/be-aset-dlh/pkg/acl"
	"github.com/muhryhan/be-aset-dlh/pkg/models"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"github.com/gin-gonic/gin"
)

// Handler exposes the mutation history of a single record, admin only.
type Handler struct {
	repository *AuditLogRepository
}

func NewHandler(r *AuditLogRepository) *Handler {
	return &Handler{repository: r}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/auditlog/:resource/:id", security.RequireRole(acl.RoleAdmin), h.GetResourceLog)
}

func (h *Handler) GetResourceLog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to bind id, value must be numeric"})
		return
	}

	entries, err := h.repository.GetResourceLog(id, c.Param("resource"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}
	if entries == nil {
		entries = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
