package controllers

import (
	"net/http"

	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Service.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/check → reads what Identify put in the context
func (ac *AuthController) Check(c *gin.Context) {
	var user *services.AuthUser
	if name := utils.CurrentUsername(c); name != "" {
		user = &services.AuthUser{Username: name}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "loggedIn": user != nil, "user": user})
}

// POST /auth/logout → tokens are stateless; the client drops its copy
func (ac *AuthController) Logout(c *gin.Context) {
	resp.Message(c, "logged out")
}
