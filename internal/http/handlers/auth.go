package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	intconfig "numerica-backend/internal/config"
	"numerica-backend/internal/domain"
	"numerica-backend/internal/http/middleware"
	"numerica-backend/internal/opaqueid"
	"numerica-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the public user payload. ID is the opaque token, never the
// stored numeric id.
type AuthUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(env intconfig.Env, enc *opaqueid.Encoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		var (
			userID       int64
			user         AuthUser
			passwordHash string
		)

		err := intconfig.DB.QueryRowContext(c.Request.Context(), `
			SELECT id, name, username, email, password_hash, role, status
			FROM users
			WHERE email = $1 OR username = $1
		`, req.Email).Scan(
			&userID,
			&user.Name,
			&user.Username,
			&user.Email,
			&passwordHash,
			&user.Role,
			&user.Status,
		)

		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				RespondError(c, http.StatusUnauthorized, "unauthorized", "credenciales inválidas")
			} else {
				utils.LogEvent(middleware.GetRequestID(c), "auth", "login_query_failed", err.Error())
				RespondError(c, http.StatusInternalServerError, "data_access_error", "error al consultar los datos")
			}
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			RespondError(c, http.StatusUnauthorized, "unauthorized", "credenciales inválidas")
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})

		tokenString, err := token.SignedString([]byte(env.JWTSecret))
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "internal_error", "no se pudo generar el token")
			return
		}

		user.ID, err = enc.Encode(userID)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "internal_error", "no se pudo codificar el id")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   tokenString,
			"user":    user,
		})
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(env intconfig.Env, enc *opaqueid.Encoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		required := []struct{ field, value string }{
			{"name", req.Name},
			{"username", req.Username},
			{"email", req.Email},
			{"password", req.Password},
		}
		for _, f := range required {
			if utils.TrimOrEmpty(f.value) == "" {
				RespondDomainError(c, domain.ValidationError{Field: f.field, Msg: "requerido"})
				return
			}
		}

		var exists int
		err := intconfig.DB.QueryRowContext(c.Request.Context(), `
			SELECT COUNT(*)
			FROM users
			WHERE email = $1 OR username = $2
		`, req.Email, req.Username).Scan(&exists)
		if err != nil {
			utils.LogEvent(middleware.GetRequestID(c), "auth", "register_check_failed", err.Error())
			RespondError(c, http.StatusInternalServerError, "data_access_error", "error al consultar los datos")
			return
		}
		if exists > 0 {
			RespondError(c, http.StatusBadRequest, "validation_error", "email o usuario ya registrado")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "internal_error", "no se pudo procesar la contraseña")
			return
		}

		var id int64
		err = intconfig.DB.QueryRowContext(c.Request.Context(), `
			INSERT INTO users (name, username, email, password_hash, role, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 'user', 'active', NOW(), NOW())
			RETURNING id
		`, req.Name, req.Username, req.Email, string(hash)).Scan(&id)
		if err != nil {
			utils.LogEvent(middleware.GetRequestID(c), "auth", "register_insert_failed", err.Error())
			RespondError(c, http.StatusInternalServerError, "data_access_error", "error al consultar los datos")
			return
		}

		opaque, err := enc.Encode(id)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "internal_error", "no se pudo codificar el id")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"user": AuthUser{
				ID:       opaque,
				Name:     req.Name,
				Username: req.Username,
				Email:    req.Email,
				Role:     "user",
				Status:   "active",
			},
		})
	}
}
