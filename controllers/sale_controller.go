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

type SaleController struct{ DB *gorm.DB }

func NewSaleController(db *gorm.DB) *SaleController { return &SaleController{DB: db} }

type SaleIn struct {
	Date  string          `json:"date" binding:"required"`
	Total decimal.Decimal `json:"total" binding:"required"`
}

// GET /sales?fecha_inicio&fecha_fin
func (sc *SaleController) List(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	var sales []entity.Sale
	if err := sc.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").Find(&sales).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":        sales,
		"fecha_inicio": from.Format(utils.DateLayout),
		"fecha_fin":    to.Format(utils.DateLayout),
	})
}

// POST /sales
func (sc *SaleController) Create(c *gin.Context) {
	var req SaleIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	sale := entity.Sale{Date: date, Total: req.Total}
	if err := sc.DB.Create(&sale).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, sale)
}

// PUT /sales/:id
func (sc *SaleController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SaleIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	res := sc.DB.Model(&entity.Sale{}).Where("id = ?", id).
		Updates(map[string]any{"date": date, "total": req.Total})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "venta no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "venta actualizada correctamente"})
}

// DELETE /sales/:id
func (sc *SaleController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := sc.DB.Delete(&entity.Sale{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "venta no encontrada")
		return
	}
	resp.OK(c, gin.H{"message": "venta eliminada correctamente"})
}
