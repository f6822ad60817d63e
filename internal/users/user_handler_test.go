package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) PersistUser(req models.CreateUserRequest, hashedPassword []byte) error {
	args := m.Called(req, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(id int) (*models.User, bool, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) GetUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(id int, changes *models.UserChanges) error {
	args := m.Called(id, changes)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func setupUsersRouter(repo UserRepository, role string, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Set("userID", userID)
	})
	NewHandler(repo, zap.NewNop()).RegisterRoutes(router.Group("/api"))
	return router
}

func TestRegisterUserHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("PersistUser", mock.AnythingOfType("models.CreateUserRequest"), mock.Anything).
		Run(func(args mock.Arguments) {
			hash := args.Get(1).([]byte)
			assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("rahasia-123")))
		}).
		Return(nil)

	router := setupUsersRouter(repo, "admin", 1)

	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "petugas1",
		Password: "rahasia-123",
		Fullname: "Petugas Satu",
		Role:     "staf",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestRegisterUserRejectsUnknownRole(t *testing.T) {
	repo := new(MockUserRepository)
	router := setupUsersRouter(repo, "admin", 1)

	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "x", Password: "rahasia-123", Fullname: "X", Role: "bendahara",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "PersistUser")
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	repo := new(MockUserRepository)
	router := setupUsersRouter(repo, "admin", 1)

	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "x", Password: "abc", Fullname: "X", Role: "staf",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterUserRequiresAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	router := setupUsersRouter(repo, "staf", 2)

	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "x", Password: "rahasia-123", Fullname: "X", Role: "staf",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "PersistUser")
}

func TestOwnerCanReadOwnAccount(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUser", 5).Return(&models.User{ID: 5, Username: "petugas5", Role: "staf"}, true, nil)

	router := setupUsersRouter(repo, "staf", 5)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/users/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "petugas5")
}

func TestStafCannotReadOtherAccounts(t *testing.T) {
	repo := new(MockUserRepository)
	router := setupUsersRouter(repo, "staf", 5)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/users/6", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "GetUser")
}

func TestNonAdminCannotChangeRole(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUser", 5).Return(&models.User{ID: 5, Username: "petugas5", Role: "staf"}, true, nil)

	router := setupUsersRouter(repo, "staf", 5)

	role := "admin"
	body, _ := json.Marshal(models.UpdateUserRequest{Role: &role})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/users/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "UpdateUser")
}

func TestUpdateWithoutChangesReturnsCurrentUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUser", 5).Return(&models.User{ID: 5, Username: "petugas5", Fullname: "Petugas", Role: "staf"}, true, nil)

	router := setupUsersRouter(repo, "admin", 1)

	fullname := "Petugas"
	body, _ := json.Marshal(models.UpdateUserRequest{Fullname: &fullname})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/users/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertNotCalled(t, "UpdateUser")
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	repo := new(MockUserRepository)
	router := setupUsersRouter(repo, "admin", 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/users/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "DeleteUser")
}

func TestDeleteUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("DeleteUser", 9).Return(true, nil)

	router := setupUsersRouter(repo, "admin", 1)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/users/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
