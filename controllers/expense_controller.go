package controllers

import (
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseController struct {
	repo *repository.ExpenseRepository
}

func NewExpenseController(repo *repository.ExpenseRepository) *ExpenseController {
	return &ExpenseController{repo: repo}
}

type ExpenseIn struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
}

// GET /expenses?fecha_inicio&fecha_fin (sin parámetros: semana actual)
func (ec *ExpenseController) List(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	expenses, err := ec.repo.ListByRange(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":        expenses,
		"fecha_inicio": from.Format(utils.DateLayout),
		"fecha_fin":    to.Format(utils.DateLayout),
	})
}

func (ec *ExpenseController) bind(c *gin.Context) (*entity.Expense, bool) {
	var req ExpenseIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return nil, false
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return nil, false
	}
	return &entity.Expense{Description: req.Description, Amount: req.Amount, Date: date}, true
}

// POST /expenses
func (ec *ExpenseController) Create(c *gin.Context) {
	e, ok := ec.bind(c)
	if !ok {
		return
	}
	if err := ec.repo.Create(e); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, e)
}

// PUT /expenses/:id
func (ec *ExpenseController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	e, ok := ec.bind(c)
	if !ok {
		return
	}
	e.ID = uint(id)
	if err := ec.repo.Update(e); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, e)
}

// DELETE /expenses/:id
func (ec *ExpenseController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := ec.repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "gasto no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "gasto eliminado correctamente"})
}
