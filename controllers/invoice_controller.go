package controllers

import (
	"errors"
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/services"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceController struct {
	Service *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Service: svc}
}

// GET /invoices?fecha_inicio&fecha_fin
func (ic *InvoiceController) List(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	invoices, err := ic.Service.ListByRange(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":        invoices,
		"fecha_inicio": from.Format(utils.DateLayout),
		"fecha_fin":    to.Format(utils.DateLayout),
	})
}

// GET /invoices/:id
func (ic *InvoiceController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	inv, err := ic.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "factura no encontrada")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, inv)
}

// POST /invoices
func (ic *InvoiceController) Create(c *gin.Context) {
	var req services.SaveInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inv, err := ic.Service.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, inv)
}

// PUT /invoices/:id
func (ic *InvoiceController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.SaveInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inv, err := ic.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "factura no encontrada")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, inv)
}

// DELETE /invoices/:id
func (ic *InvoiceController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	found, err := ic.Service.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, "factura no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "factura eliminada correctamente"})
}
