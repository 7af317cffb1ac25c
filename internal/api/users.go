package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ampedent/internal/access"
	"ampedent/internal/auth"
	"ampedent/internal/database"
	"ampedent/internal/models"
)

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// handleLogin verifies admin credentials and issues a session token.
// POST /api/login
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	token, user, err := s.auth.Login(c.Request.Context(), req.Name, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
		"token":   token,
		"user":    user.Name,
		"role":    user.Role,
	})
}

// handleMe returns the current session's account, re-read from the
// store so a role change shows up without a new login.
// GET /api/me
func (s *Server) handleMe(c *gin.Context) {
	if err := access.CanViewSelf(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := s.db.GetUserByName(c.Request.Context(), sessionName(c))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("get current user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "user fetched",
		"user":    user.Name,
		"role":    user.Role,
	})
}

// handleListUsers returns all admin accounts without password hashes.
// GET /api/users
func (s *Server) handleListUsers(c *gin.Context) {
	if err := access.CanListUsers(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	users, err := s.db.ListUsers(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("list users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Users fetched", "users": users})
}

type createUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// handleCreateUser registers a new admin account.
// POST /api/users
func (s *Server) handleCreateUser(c *gin.Context) {
	if err := access.CanManageUsers(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req createUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}
	if req.Name == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and password are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("hash password failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	user := &models.User{Name: req.Name, Password: hash}
	if err := s.db.CreateUser(c.Request.Context(), user); err != nil {
		s.logger.Error().Err(err).Msg("create user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "New user created",
		"name":    user.Name,
		"role":    user.Role,
	})
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// handleUpdateUser changes the name and/or password of an account.
// PUT /api/users/:id
func (s *Server) handleUpdateUser(c *gin.Context) {
	if err := access.CanManageUsers(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	var req updateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	hash := ""
	if req.Password != "" {
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			s.logger.Error().Err(err).Msg("hash password failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update user"})
			return
		}
	}

	err = s.db.UpdateUser(c.Request.Context(), id, req.Name, hash)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("update user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// handleDeleteUser removes an admin account. Superadmin accounts are
// never deletable, not even by a superadmin.
// DELETE /api/users/:id
func (s *Server) handleDeleteUser(c *gin.Context) {
	if err := access.CanManageUsers(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	err = s.db.DeleteUser(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if errors.Is(err, database.ErrSuperAdminProtected) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete superadmin"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("delete user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
