package security

import (
	"fmt"
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret []byte

// SetSecret installs the signing key. Called once from main before any
// route is registered; tests install their own key.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

const tokenTTL = 12 * time.Hour

func AuthenticateUser(username, password string, repo *repository.Repository) (*models.User, error) {
	var user models.User

	query := repo.GoquDBWrapper.
		Select("id_user", "username", "fullname", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"username": username})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("unknown user %q", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &user, nil
}

func GenerateJWT(userID int, role string, username string) (string, error) {
	claims := jwt.MapClaims{
		"userID":   userID,
		"role":     role,
		"username": username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// RoleFromContext returns the role claim set by JWTMiddleware.
func RoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}
	s, ok := role.(string)
	return s, ok
}

func UserIDFromContext(c *gin.Context) (int, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case int:
		return id, true
	case float64:
		return int(id), true
	default:
		return 0, false
	}
}
