package handlers

import (
	"database/sql"
	"net/http"

	"estudio-api/middleware"
	"estudio-api/models"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

// TeamHandler gestiona las cuentas de los operadores del estudio.
// Todas las rutas van detrás del gate ADMIN.
type TeamHandler struct {
	DB *sql.DB
}

func (h *TeamHandler) GetUsers(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, name, email, role, totp_enabled, created_at
		FROM users
		ORDER BY name ASC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.TOTPEnabled, &u.CreatedAt); err != nil {
			continue
		}
		users = append(users, u)
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser da de alta credenciales para un socio o empleado.
func (h *TeamHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, req.Email).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	var userID string
	err = h.DB.QueryRow(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Name, req.Email, passwordHash, role).Scan(&userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	utils.LogMutation("create", "User", userID)

	c.JSON(http.StatusCreated, gin.H{"id": userID})
}

// DeleteUser borra una cuenta. Nadie puede borrarse a sí mismo: siempre
// queda al menos el admin que ejecuta la acción.
func (h *TeamHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if userID == middleware.GetUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	result, err := h.DB.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	utils.LogMutation("delete", "User", userID)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
