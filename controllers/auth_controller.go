package controllers

import (
	"errors"

	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/services"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ac.service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.service.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "usuario no encontrado")
		return
	}
	resp.OK(c, user)
}
