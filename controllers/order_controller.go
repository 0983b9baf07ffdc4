package controllers

import (
	"errors"
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/services"
	"github.com/CarlosTarrino98/Gestor-de-negocio/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	orders      *services.OrderService
	aggregation *services.AggregationService
	board       *ws.BoardHub
}

func NewOrderController(orders *services.OrderService, aggregation *services.AggregationService, board *ws.BoardHub) *OrderController {
	return &OrderController{orders: orders, aggregation: aggregation, board: board}
}

// GET /orders?fecha=YYYY-MM-DD
// Devuelve los pedidos del día con el agregado completo: ventas totales,
// contadores de pollos y cachopos, proyección de stock y tramos horarios.
func (oc *OrderController) List(c *gin.Context) {
	agg, err := oc.aggregation.DailyAggregate(c.Query("fecha"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, agg)
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.SaveOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.orders.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oc.board.Notify("order_created", order.ScheduledAt.Format("2006-01-02"))
	resp.Created(c, order)
}

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.SaveOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.orders.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "pedido no encontrado")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	oc.board.Notify("order_updated", order.ScheduledAt.Format("2006-01-02"))
	resp.OK(c, order)
}

// PATCH /orders/:id/delivered
func (oc *OrderController) SetDelivered(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Delivered *bool `json:"delivered" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ok, err := oc.orders.SetDelivered(uint(id), *req.Delivered)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "pedido no encontrado")
		return
	}

	oc.board.Notify("delivered_changed", c.Query("fecha"))
	resp.OK(c, gin.H{"message": "estado de entrega actualizado"})
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := oc.orders.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "pedido no encontrado")
		return
	}

	oc.board.Notify("order_deleted", c.Query("fecha"))
	resp.OK(c, gin.H{"message": "pedido eliminado correctamente"})
}

// ===== Cierre del día =====

type CloseDayReq struct {
	Date      string                  `json:"fecha" binding:"required"`
	Totals    services.CloseDayTotals `json:"totals" binding:"required"`
	Overwrite bool                    `json:"overwrite"`
}

// POST /orders/close-day
func (oc *OrderController) CloseDay(c *gin.Context) {
	var req CloseDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := oc.aggregation.CloseDay(req.Date, req.Totals, req.Overwrite)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrSummaryExists):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	oc.board.Notify("day_closed", req.Date)
	if result == services.CloseDayCreated {
		resp.Created(c, gin.H{"result": result, "message": "cierre de día realizado correctamente"})
		return
	}
	resp.OK(c, gin.H{"result": result, "message": "resumen de ventas actualizado correctamente"})
}
