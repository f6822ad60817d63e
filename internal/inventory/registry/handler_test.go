package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) List() ([]T, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockStore[T]) GetByID(id int) (*T, bool, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*T), args.Bool(1), args.Error(2)
}

func (m *MockStore[T]) GetByKey(key string) (*T, bool, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*T), args.Bool(1), args.Error(2)
}

func (m *MockStore[T]) ListByKey(key string) ([]T, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockStore[T]) Insert(item *T) (int, error) {
	args := m.Called(item)
	return args.Int(0), args.Error(1)
}

func (m *MockStore[T]) Update(id int, item *T) (bool, error) {
	args := m.Called(id, item)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore[T]) UpdateColumn(id int, column string, value interface{}) error {
	args := m.Called(id, column, value)
	return args.Error(0)
}

func (m *MockStore[T]) Delete(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

var testDef = Definition{
	Resource:  "kendaraan",
	Table:     "kendaraan",
	KeyColumn: "no_polisi",
	Columns: []Column{
		{Name: "merek", Label: "Merek", Kind: KindText, Required: true, Search: true},
		{Name: "no_polisi", Label: "No Polisi", Kind: KindText, Required: true, Search: true},
		{Name: "warna", Label: "Warna", Kind: KindText, Search: true},
	},
}

func setupRouter(t *testing.T, store Store[models.Kendaraan], role string) (*gin.Engine, *Handler[models.Kendaraan]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler, err := NewHandler[models.Kendaraan](testDef, store, nil, nil, zap.NewNop())
	assert.NoError(t, err)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Set("userID", 1)
	})
	handler.RegisterRoutes(router.Group("/api"))
	return router, handler
}

func TestListReturnsDataEnvelope(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("List").Return([]models.Kendaraan{
		{ID: 1, Merek: "Toyota", NoPolisi: "DN 1 A"},
		{ID: 2, Merek: "Hino", NoPolisi: "DN 2 B"},
	}, nil)

	router, _ := setupRouter(t, store, "admin")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/kendaraan", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Kendaraan `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	store.AssertExpectations(t)
}

func TestListSearchFiltersCaseInsensitive(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("List").Return([]models.Kendaraan{
		{ID: 1, Merek: "Toyota", NoPolisi: "DN 1 A"},
		{ID: 2, Merek: "Hino", NoPolisi: "DN 2 B"},
	}, nil)

	router, _ := setupRouter(t, store, "admin")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/kendaraan?search=toyota", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Kendaraan `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Toyota", resp.Data[0].Merek)
}

func TestListPaginatedEnvelope(t *testing.T) {
	items := make([]models.Kendaraan, 25)
	for i := range items {
		items[i] = models.Kendaraan{ID: i + 1, Merek: "Merek", NoPolisi: fmt.Sprintf("DN %d", i+1)}
	}
	store := new(MockStore[models.Kendaraan])
	store.On("List").Return(items, nil)

	router, _ := setupRouter(t, store, "admin")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/kendaraan?page=3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Kendaraan `json:"data"`
		Meta struct {
			CurrentPage int   `json:"current_page"`
			TotalPages  int   `json:"total_pages"`
			TotalItems  int   `json:"total_items"`
			Pages       []int `json:"pages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 5, "last page holds the remainder")
	assert.Equal(t, 3, resp.Meta.CurrentPage)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, 25, resp.Meta.TotalItems)
}

func TestGetByKeyNotFound(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("GetByKey", "DN 404").Return(nil, false, nil)

	router, _ := setupRouter(t, store, "admin")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/kendaraan/DN%20404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Data tidak ditemukan")
}

func TestCreatePersistsAndRunsHook(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("Insert", mock.AnythingOfType("*models.Kendaraan")).Return(7, nil)

	router, handler := setupRouter(t, store, "admin")

	hooked := ""
	handler.AfterCreate(func(item *models.Kendaraan) { hooked = item.NoPolisi })

	body, _ := json.Marshal(map[string]interface{}{
		"merek":     "Toyota",
		"no_polisi": "DN 77 XY",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/kendaraan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Data berhasil disimpan")
	assert.Equal(t, "DN 77 XY", hooked)
	store.AssertExpectations(t)
}

func TestCreateMissingRequiredColumn(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	router, _ := setupRouter(t, store, "admin")

	body, _ := json.Marshal(map[string]interface{}{"no_polisi": "DN 1 A"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/kendaraan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Merek wajib diisi")
	store.AssertNotCalled(t, "Insert")
}

func TestCreateDuplicateKeyConflict(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("Insert", mock.AnythingOfType("*models.Kendaraan")).
		Return(0, &apperrors.UniqueViolationError{})

	router, _ := setupRouter(t, store, "admin")

	body, _ := json.Marshal(map[string]interface{}{"merek": "Toyota", "no_polisi": "DN 1 A"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/kendaraan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "sudah terdaftar")
}

func TestUpdateRequiresNumericID(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	router, _ := setupRouter(t, store, "admin")

	body, _ := json.Marshal(map[string]interface{}{"merek": "Toyota", "no_polisi": "DN 1 A"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/kendaraan/DN%201%20A", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Update")
}

func TestUpdateExistingRecord(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("GetByID", 7).Return(&models.Kendaraan{ID: 7, Merek: "Toyota", NoPolisi: "DN 7 G"}, true, nil)
	store.On("Update", 7, mock.AnythingOfType("*models.Kendaraan")).Return(true, nil)

	router, _ := setupRouter(t, store, "admin")

	body, _ := json.Marshal(map[string]interface{}{"merek": "Hino", "no_polisi": "DN 7 G"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/kendaraan/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data berhasil diperbarui")
	store.AssertExpectations(t)
}

func TestDeleteRunsHook(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	store.On("GetByID", 3).Return(&models.Kendaraan{ID: 3, NoPolisi: "DN 3 C"}, true, nil)
	store.On("Delete", 3).Return(true, nil)

	router, handler := setupRouter(t, store, "admin")

	removed := ""
	handler.AfterDelete(func(item *models.Kendaraan) { removed = item.NoPolisi })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/kendaraan/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DN 3 C", removed)
	store.AssertExpectations(t)
}

var movementDef = Definition{
	Resource:   "tanamankeluar",
	Table:      "tanamankeluar",
	KeyColumn:  "id_tanaman",
	ParentPath: "tanaman",
	Columns: []Column{
		{Name: "id_tanaman", Label: "ID Tanaman", Kind: KindInt, Required: true},
		{Name: "jumlah", Label: "Jumlah", Kind: KindInt, Required: true},
		{Name: "tujuan", Label: "Tujuan", Kind: KindText, Search: true},
	},
}

func TestListByParentReturnsFullHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := new(MockStore[models.TanamanKeluar])
	store.On("ListByKey", "9").Return([]models.TanamanKeluar{
		{ID: 1, TanamanID: 9, Jumlah: 10, Tujuan: "Taman Vatulemo"},
		{ID: 4, TanamanID: 9, Jumlah: 5, Tujuan: "Hutan Kota Kawatuna"},
	}, nil)

	handler, err := NewHandler[models.TanamanKeluar](movementDef, store, nil, nil, zap.NewNop())
	assert.NoError(t, err)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", "viewer")
		c.Set("userID", 1)
	})
	handler.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/tanamankeluar/tanaman/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.TanamanKeluar `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2, "every movement for the plant comes back")
	assert.Equal(t, "Taman Vatulemo", resp.Data[0].Tujuan)
	assert.Equal(t, "Hutan Kota Kawatuna", resp.Data[1].Tujuan)
	store.AssertExpectations(t)
}

func TestListByParentEmptyHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := new(MockStore[models.TanamanKeluar])
	store.On("ListByKey", "42").Return(nil, nil)

	handler, err := NewHandler[models.TanamanKeluar](movementDef, store, nil, nil, zap.NewNop())
	assert.NoError(t, err)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", "viewer")
		c.Set("userID", 1)
	})
	handler.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/tanamankeluar/tanaman/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestViewerCannotMutate(t *testing.T) {
	store := new(MockStore[models.Kendaraan])
	router, _ := setupRouter(t, store, "viewer")

	body, _ := json.Marshal(map[string]interface{}{"merek": "Toyota", "no_polisi": "DN 1 A"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/kendaraan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "Insert")
}
