package controllers

import (
	"strconv"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerController cubre los tres apuntes simples de la carnicería:
// gastos de tienda, gastos personales y pagos del banco.
type LedgerController struct{ DB *gorm.DB }

func NewLedgerController(db *gorm.DB) *LedgerController { return &LedgerController{DB: db} }

type LedgerEntryIn struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Total       decimal.Decimal `json:"total" binding:"required"`
}

// GET /ledger?fecha_inicio&fecha_fin → las tres listas a la vez, que es
// como las pinta la pantalla de gastos y pagos.
func (lc *LedgerController) List(c *gin.Context) {
	from, to, err := utils.RangeFromQuery(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return
	}

	var store []entity.StoreExpense
	if err := lc.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").Find(&store).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	var personal []entity.PersonalExpense
	if err := lc.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").Find(&personal).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	var bank []entity.BankPayment
	if err := lc.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").Find(&bank).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"storeExpenses":    store,
		"personalExpenses": personal,
		"bankPayments":     bank,
		"fecha_inicio":     from.Format(utils.DateLayout),
		"fecha_fin":        to.Format(utils.DateLayout),
	})
}

func (lc *LedgerController) bind(c *gin.Context) (*LedgerEntryIn, time.Time, bool) {
	var req LedgerEntryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return nil, time.Time{}, false
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		resp.BadRequest(c, "formato de fecha incorrecto")
		return nil, time.Time{}, false
	}
	return &req, date, true
}

// POST /ledger/store-expenses
func (lc *LedgerController) CreateStoreExpense(c *gin.Context) {
	req, date, ok := lc.bind(c)
	if !ok {
		return
	}
	e := entity.StoreExpense{Date: date, Description: req.Description, Total: req.Total}
	if err := lc.DB.Create(&e).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, e)
}

// PUT /ledger/store-expenses/:id
func (lc *LedgerController) UpdateStoreExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	req, date, ok := lc.bind(c)
	if !ok {
		return
	}
	res := lc.DB.Model(&entity.StoreExpense{}).Where("id = ?", id).
		Updates(map[string]any{"date": date, "description": req.Description, "total": req.Total})
	lc.answer(c, res, "gasto de tienda")
}

// DELETE /ledger/store-expenses/:id
func (lc *LedgerController) DeleteStoreExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	lc.answer(c, lc.DB.Delete(&entity.StoreExpense{}, id), "gasto de tienda")
}

// POST /ledger/personal-expenses
func (lc *LedgerController) CreatePersonalExpense(c *gin.Context) {
	req, date, ok := lc.bind(c)
	if !ok {
		return
	}
	e := entity.PersonalExpense{Date: date, Description: req.Description, Total: req.Total}
	if err := lc.DB.Create(&e).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, e)
}

// PUT /ledger/personal-expenses/:id
func (lc *LedgerController) UpdatePersonalExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	req, date, ok := lc.bind(c)
	if !ok {
		return
	}
	res := lc.DB.Model(&entity.PersonalExpense{}).Where("id = ?", id).
		Updates(map[string]any{"date": date, "description": req.Description, "total": req.Total})
	lc.answer(c, res, "gasto personal")
}

// DELETE /ledger/personal-expenses/:id
func (lc *LedgerController) DeletePersonalExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	lc.answer(c, lc.DB.Delete(&entity.PersonalExpense{}, id), "gasto personal")
}

// POST /ledger/bank-payments
func (lc *LedgerController) CreateBankPayment(c *gin.Context) {
	req, date, ok := lc.bind(c)
	if !ok {
		return
	}
	p := entity.BankPayment{Date: date, Concept: req.Description, Total: req.Total}
	if err := lc.DB.Create(&p).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /ledger/bank-payments/:id
func (lc *LedgerController) UpdateBankPayment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	req, date, ok := lc.bind(c)
	if !ok {
		return
	}
	res := lc.DB.Model(&entity.BankPayment{}).Where("id = ?", id).
		Updates(map[string]any{"date": date, "concept": req.Description, "total": req.Total})
	lc.answer(c, res, "pago de banco")
}

// DELETE /ledger/bank-payments/:id
func (lc *LedgerController) DeleteBankPayment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	lc.answer(c, lc.DB.Delete(&entity.BankPayment{}, id), "pago de banco")
}

func (lc *LedgerController) answer(c *gin.Context, res *gorm.DB, what string) {
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, what+" no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": what + " guardado correctamente"})
}
