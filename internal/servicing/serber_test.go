package servicing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhryhan/be-aset-dlh/internal/inventory/registry"
	"github.com/muhryhan/be-aset-dlh/pkg/acl"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// checklistStore is a canned registry store; route wiring is what these
// tests care about, not persistence.
type checklistStore struct {
	rows []models.SerberKendaraan
}

func (s *checklistStore) List() ([]models.SerberKendaraan, error) { return s.rows, nil }

func (s *checklistStore) GetByID(id int) (*models.SerberKendaraan, bool, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], true, nil
		}
	}
	return nil, false, nil
}

func (s *checklistStore) GetByKey(key string) (*models.SerberKendaraan, bool, error) {
	for i := range s.rows {
		if s.rows[i].NoPolisi == key {
			return &s.rows[i], true, nil
		}
	}
	return nil, false, nil
}

func (s *checklistStore) ListByKey(key string) ([]models.SerberKendaraan, error) {
	var out []models.SerberKendaraan
	for _, row := range s.rows {
		if row.NoPolisi == key {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *checklistStore) Insert(item *models.SerberKendaraan) (int, error) { return 1, nil }

func (s *checklistStore) Update(id int, item *models.SerberKendaraan) (bool, error) {
	return true, nil
}

func (s *checklistStore) UpdateColumn(id int, column string, value interface{}) error { return nil }

func (s *checklistStore) Delete(id int) (bool, error) { return true, nil }

func TestChecklistServedUnderServisBerkalaPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &checklistStore{rows: []models.SerberKendaraan{{ID: 1, NoPolisi: "DN 1 A"}}}
	handler, err := registry.NewHandler[models.SerberKendaraan](SerberKendaraan, store, nil, nil, zap.NewNop())
	assert.NoError(t, err)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", "viewer")
		c.Set("userID", 1)
	})
	handler.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/servisberkalakendaraan/DN%201%20A", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "dashboard wire path serves the checklist")
	assert.Contains(t, w.Body.String(), "DN 1 A")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/serberkendaraan/DN%201%20A", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, "internal table name is not a route")
}

func TestChecklistResourcesCoveredByACL(t *testing.T) {
	expected := []string{
		"servisberkalakendaraan",
		"servisberkalaalatberat",
		"servisberkalaalatkerja",
		"servisberkalaac",
	}
	for i, def := range periodicDefinitions {
		assert.Equal(t, expected[i], def.Resource)
		assert.True(t, acl.Allowed(acl.RoleViewer, def.Resource, acl.ActionRead), def.Resource)
		assert.False(t, acl.Allowed(acl.RoleStaf, def.Resource, acl.ActionDelete), def.Resource)
	}
}
