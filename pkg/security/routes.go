package security

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type LoginHandler struct {
	repo    *repository.Repository
	limiter *loginLimiter
}

func NewLoginHandler(r *repository.Repository) *LoginHandler {
	return &LoginHandler{
		repo:    r,
		limiter: newLoginLimiter(rate.Every(30*time.Second), 10), // 10 burst, then 2/min
	}
}

func (l *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", l.Login)
	router.POST("/api/logout", l.Logout)
}

func (l *LoginHandler) Login(c *gin.Context) {
	if !l.limiter.allow(clientKey(c)) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Terlalu banyak percobaan login. Coba lagi nanti.",
		})
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := AuthenticateUser(req.Username, req.Password, l.repo)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := GenerateJWT(user.ID, user.Role, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// The token is mirrored into a cookie so image and export links opened
	// outside the SPA fetch layer stay authenticated.
	c.SetCookie("token", token, int(tokenTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"data":  user,
	})
}

func (l *LoginHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
}

// loginLimiter throttles login attempts per client IP.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLoginLimiter(limit rate.Limit, burst int) *loginLimiter {
	return &loginLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *loginLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.visitors[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.visitors[key] = limiter
	}
	return limiter.Allow()
}

func clientKey(c *gin.Context) string {
	ip := c.GetHeader("X-Forwarded-For")
	if ip == "" {
		ip = c.GetHeader("X-Real-IP")
	}
	if ip == "" {
		ip = c.ClientIP()
	}
	if idx := strings.IndexByte(ip, ','); idx >= 0 {
		ip = ip[:idx]
	}
	return strings.TrimSpace(ip)
}
