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

type CapitalController struct{ DB *gorm.DB }

func NewCapitalController(db *gorm.DB) *CapitalController { return &CapitalController{DB: db} }

type CapitalIn struct {
	Date   string          `json:"date" binding:"required"`
	Source string          `json:"source" binding:"required"`
	Total  decimal.Decimal `json:"total" binding:"required"`
}

// GET /capitals?fecha_inicio&fecha_fin
//
// Los cobros con tarjeta ("TA") se devuelven en una lista aparte con su
// propio total, el resto de orígenes forman la lista principal.
func (cc *CapitalController) List(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	var capitals []entity.CapitalEntry
	if err := cc.DB.Where("date BETWEEN ? AND ? AND source <> ?", from, to, entity.CapitalCards).
		Order("date DESC").Find(&capitals).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var cards []entity.CapitalEntry
	if err := cc.DB.Where("date BETWEEN ? AND ? AND source = ?", from, to, entity.CapitalCards).
		Order("date DESC").Find(&cards).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	totalCapitals := decimal.Zero
	for _, e := range capitals {
		totalCapitals = totalCapitals.Add(e.Total)
	}
	totalCards := decimal.Zero
	for _, e := range cards {
		totalCards = totalCards.Add(e.Total)
	}

	resp.OK(c, gin.H{
		"capitales":       capitals,
		"total_capitales": totalCapitals,
		"tarjetas":        cards,
		"total_tarjetas":  totalCards,
		"fecha_inicio":    from.Format(utils.DateLayout),
		"fecha_fin":       to.Format(utils.DateLayout),
	})
}

// POST /capitals
func (cc *CapitalController) Create(c *gin.Context) {
	var req CapitalIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}
	if !entity.ValidCapitalSource(req.Source) {
		resp.BadRequest(c, "origen de capital no válido")
		return
	}

	cap := entity.CapitalEntry{Date: date, Source: req.Source, Total: req.Total}
	if err := cc.DB.Create(&cap).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cap)
}

// PUT /capitals/:id
func (cc *CapitalController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CapitalIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}
	if !entity.ValidCapitalSource(req.Source) {
		resp.BadRequest(c, "origen de capital no válido")
		return
	}

	res := cc.DB.Model(&entity.CapitalEntry{}).Where("id = ?", id).
		Updates(map[string]any{"date": date, "source": req.Source, "total": req.Total})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "capital no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "capital actualizado correctamente"})
}

// DELETE /capitals/:id
func (cc *CapitalController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := cc.DB.Delete(&entity.CapitalEntry{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "capital no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "capital eliminado correctamente"})
}
