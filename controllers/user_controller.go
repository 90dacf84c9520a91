package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/services"
	"github.com/00AR/blog-app/utils"
)

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserController struct {
	users     *services.UserService
	jwtSecret string
}

func NewUserController(users *services.UserService, jwtSecret string) *UserController {
	return &UserController{users: users, jwtSecret: jwtSecret}
}

// POST /users/user/signup
func (uc *UserController) Signup(c *gin.Context) {
	var req signupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := uc.users.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists!"})
		return
	case err != nil:
		utils.LogError(err, "UserController.Signup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		return
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), uc.jwtSecret)
	if err != nil {
		utils.LogError(err, "UserController.Signup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// POST /users/user/login
func (uc *UserController) Login(c *gin.Context) {
	var req loginPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := uc.users.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email/password"})
		return
	case err != nil:
		utils.LogError(err, "UserController.Login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), uc.jwtSecret)
	if err != nil {
		utils.LogError(err, "UserController.Login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
