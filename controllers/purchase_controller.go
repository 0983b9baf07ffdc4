package controllers

import (
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseController agrupa las dos clases de compra de la carnicería:
// facturas de proveedor con IVA y compras de tienda.
type PurchaseController struct{ DB *gorm.DB }

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

// GET /purchases?fecha_inicio&fecha_fin → ambas listas juntas
func (pc *PurchaseController) List(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	var supplier []entity.SupplierInvoice
	if err := pc.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").Find(&supplier).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	var store []entity.StoreInvoice
	if err := pc.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").Find(&store).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"supplierInvoices": supplier,
		"storeInvoices":    store,
		"fecha_inicio":     from.Format(utils.DateLayout),
		"fecha_fin":        to.Format(utils.DateLayout),
	})
}

// ===== Facturas de proveedor (con IVA) =====

type SupplierInvoiceIn struct {
	Supplier      string          `json:"supplier" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	Paid          bool            `json:"paid"`
}

// POST /purchases/supplier
func (pc *PurchaseController) CreateSupplier(c *gin.Context) {
	var req SupplierInvoiceIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	inv := entity.SupplierInvoice{
		Supplier:      req.Supplier,
		InvoiceNumber: req.InvoiceNumber,
		Date:          date,
		Total:         req.Total,
		Paid:          req.Paid,
	}
	if err := pc.DB.Create(&inv).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, inv)
}

// PUT /purchases/supplier/:id
func (pc *PurchaseController) UpdateSupplier(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SupplierInvoiceIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	res := pc.DB.Model(&entity.SupplierInvoice{}).Where("id = ?", id).
		Updates(map[string]any{
			"supplier":       req.Supplier,
			"invoice_number": req.InvoiceNumber,
			"date":           date,
			"total":          req.Total,
			"paid":           req.Paid,
		})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "factura no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "factura actualizada correctamente"})
}

// DELETE /purchases/supplier/:id
func (pc *PurchaseController) DeleteSupplier(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := pc.DB.Delete(&entity.SupplierInvoice{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "factura no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "factura eliminada correctamente"})
}

// ===== Compras de tienda =====

type StoreInvoiceIn struct {
	Supplier string          `json:"supplier" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Total    decimal.Decimal `json:"total" binding:"required"`
	Paid     bool            `json:"paid"`
}

// POST /purchases/store
func (pc *PurchaseController) CreateStore(c *gin.Context) {
	var req StoreInvoiceIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	inv := entity.StoreInvoice{Supplier: req.Supplier, Date: date, Total: req.Total, Paid: req.Paid}
	if err := pc.DB.Create(&inv).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, inv)
}

// PUT /purchases/store/:id
func (pc *PurchaseController) UpdateStore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req StoreInvoiceIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	res := pc.DB.Model(&entity.StoreInvoice{}).Where("id = ?", id).
		Updates(map[string]any{
			"supplier": req.Supplier,
			"date":     date,
			"total":    req.Total,
			"paid":     req.Paid,
		})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "compra no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "compra actualizada correctamente"})
}

// DELETE /purchases/store/:id
func (pc *PurchaseController) DeleteStore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := pc.DB.Delete(&entity.StoreInvoice{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "compra no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "compra eliminada correctamente"})
}
