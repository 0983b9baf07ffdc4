package controllers

import (
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/services"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/gin-gonic/gin"
)

type BalanceController struct {
	service *services.BalanceService
}

func NewBalanceController(service *services.BalanceService) *BalanceController {
	return &BalanceController{service: service}
}

// GET /balance/asador?fecha_inicio&fecha_fin
func (bc *BalanceController) Asador(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	balance, err := bc.service.Asador(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, balance)
}

// GET /balance/carniceria?fecha_inicio&fecha_fin
func (bc *BalanceController) Carniceria(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	balance, err := bc.service.Carniceria(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, balance)
}
