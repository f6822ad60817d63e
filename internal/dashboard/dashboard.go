package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/inventory/categories"
	"github.com/muhryhan/be-aset-dlh/internal/inventory/registry"
	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/internal/servicing"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	cacheKey = "dashboard-summary"
	cacheTTL = 60 * time.Second
)

// Summary is the landing-page aggregate: how many assets each category
// holds plus this year's workshop spending.
type Summary struct {
	Counts      map[string]int `json:"counts"`
	TotalAset   int            `json:"total_aset"`
	BiayaServis int64          `json:"biaya_servis_tahun_ini"`
	Tahun       int            `json:"tahun"`
}

// Handler serves the cached summary. Counting six tables per page load is
// wasteful; the numbers move slowly enough that a 60 second cache is
// indistinguishable from live.
type Handler struct {
	repo   *repository.Repository
	servis *servicing.ServisRepository
	cache  *cache.Cache
	log    *zap.Logger
}

var countedCategories = []registry.Definition{
	categories.Kendaraan,
	categories.AlatBerat,
	categories.AlatKerja,
	categories.AC,
	categories.Tanah,
	categories.Tanaman,
}

func NewHandler(repo *repository.Repository, servis *servicing.ServisRepository, log *zap.Logger) *Handler {
	return &Handler{
		repo:   repo,
		servis: servis,
		cache:  cache.New(cacheTTL, 5*time.Minute),
		log:    log,
	}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/dashboard", h.Summary)
}

func (h *Handler) Summary(c *gin.Context) {
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, gin.H{"data": cached})
		return
	}

	summary, err := h.buildSummary()
	if err != nil {
		h.log.Error("unable to build dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data", "details": err.Error()})
		return
	}

	h.cache.Set(cacheKey, summary, cache.DefaultExpiration)
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (h *Handler) buildSummary() (*Summary, error) {
	summary := &Summary{
		Counts: make(map[string]int, len(countedCategories)),
		Tahun:  time.Now().Year(),
	}

	for _, def := range countedCategories {
		count, err := h.countTable(def.Table)
		if err != nil {
			return nil, err
		}
		summary.Counts[def.Resource] = count
		summary.TotalAset += count
	}

	cost, err := h.servis.TotalCostForYear(summary.Tahun)
	if err != nil {
		return nil, err
	}
	summary.BiayaServis = cost

	return summary, nil
}

func (h *Handler) countTable(table string) (int, error) {
	var count int
	query := h.repo.GoquDBWrapper.From(table).Select(goqu.COUNT("*"))
	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}
