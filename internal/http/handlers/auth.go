package handlers

import (
	"database/sql"
	"net/http"
	"time"

	intconfig "backoffice/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("change-me-in-production")

// SetJWTSecret wires the signing key from config at router setup time.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// JWTSecret exposes the signing key to the auth middleware.
func JWTSecret() []byte {
	return jwtSecret
}

// AuthUser is the staff account payload returned on login.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)
	err := intconfig.DB.QueryRow(`
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = ?
	`, req.Email).Scan(&user.ID, &user.Name, &user.Email, &passwordHash, &user.Role)

	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to load user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	Respond(c, http.StatusOK, gin.H{"token": tokenString, "user": user})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, req.Email).Scan(&exists); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusConflict, "email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (name, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, 'agent', NOW(), NOW())
	`, req.Name, req.Email, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	id, _ := res.LastInsertId()
	Respond(c, http.StatusCreated, AuthUser{ID: id, Name: req.Name, Email: req.Email, Role: "agent"})
}
