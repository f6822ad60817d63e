package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/muhryhan/be-aset-dlh/pkg/acl"
	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"
	"github.com/muhryhan/be-aset-dlh/pkg/models"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UsersHandler struct {
	Repository UserRepository
	log        *zap.Logger
}

func NewHandler(r UserRepository, log *zap.Logger) *UsersHandler {
	return &UsersHandler{Repository: r, log: log}
}

// RegisterRoutes wires account management. Listing, creating and deleting
// accounts is admin territory; reading and updating a single account is
// open to the account owner as well.
func (h *UsersHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", security.RequireRole(acl.RoleAdmin), h.RegisterUser)
	router.GET("/users", security.RequireRole(acl.RoleAdmin), h.GetUserList)
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", security.RequireRole(acl.RoleAdmin), h.DeleteUser)
}

func (h *UsersHandler) RegisterUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if !acl.Role(req.Role).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validasi gagal", "details": "Role tidak dikenal: " + req.Role})
		return
	}
	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validasi gagal", "details": "Password minimal 6 karakter"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.Repository.PersistUser(req, hashedPassword); err != nil {
		var unique *apperrors.UniqueViolationError
		if errors.As(err, &unique) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username sudah terdaftar"})
			return
		}
		h.log.Error("unable to create user", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User berhasil didaftarkan"})
}

func (h *UsersHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "details": err.Error()})
		return
	}

	if !h.isAllowed(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "details": "You are not allowed to access this resource"})
		return
	}

	var req models.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	user, found, err := h.Repository.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan", "code": "USER_NOT_FOUND"})
		return
	}

	changes := &models.UserChanges{}

	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < minPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validasi gagal", "details": "Password minimal 6 karakter"})
			return
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		passwordHash := string(hashedPassword)
		changes.PasswordHash = &passwordHash
	}

	if req.Fullname != nil && *req.Fullname != user.Fullname {
		changes.Fullname = req.Fullname
	}

	if req.Role != nil && *req.Role != user.Role {
		// Only an admin can move an account between roles.
		if role, _ := security.RoleFromContext(c); role != string(acl.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "details": "Only admin can change roles"})
			return
		}
		if !acl.Role(*req.Role).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validasi gagal", "details": "Role tidak dikenal: " + *req.Role})
			return
		}
		changes.Role = req.Role
	}

	if !changes.HasChanges() {
		c.JSON(http.StatusOK, gin.H{"data": user})
		return
	}

	if err := h.Repository.UpdateUser(userID, changes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "details": err.Error()})
		return
	}

	updatedUser, _, err := h.Repository.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get updated user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updatedUser, "message": "Data berhasil diperbarui"})
}

func (h *UsersHandler) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "details": err.Error()})
		return
	}

	if !h.isAllowed(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "details": "You are not allowed to access this resource"})
		return
	}

	user, found, err := h.Repository.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan", "code": "USER_NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *UsersHandler) GetUserList(c *gin.Context) {
	users, err := h.Repository.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain list of users", "details": err.Error()})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (h *UsersHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "details": err.Error()})
		return
	}

	if authID, ok := security.UserIDFromContext(c); ok && authID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Akun sendiri tidak dapat dihapus"})
		return
	}

	deleted, err := h.Repository.DeleteUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus data", "details": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan", "code": "USER_NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil dihapus"})
}

// isAllowed grants admins everything and owners their own account.
func (h *UsersHandler) isAllowed(c *gin.Context, userID int) bool {
	if role, ok := security.RoleFromContext(c); ok && role == string(acl.RoleAdmin) {
		return true
	}
	authID, ok := security.UserIDFromContext(c)
	return ok && authID == userID
}
