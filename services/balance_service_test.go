package services

import (
	"testing"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBalanceService(db *gorm.DB) *BalanceService {
	return NewBalanceService(db, repository.NewSummaryRepository(db), repository.NewExpenseRepository(db))
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.Local)
}

func TestAsadorBalanceTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newBalanceService(db)

	require.NoError(t, db.Create(&entity.DailySummary{
		Date: day(10), TotalSales: price(100), OrderCount: 5, ChickenUnits: price(8.5), CachopoUnits: 3,
	}).Error)
	require.NoError(t, db.Create(&entity.DailySummary{
		Date: day(11), TotalSales: price(60), OrderCount: 2, ChickenUnits: price(4), CachopoUnits: 1,
	}).Error)
	// fuera de rango
	require.NoError(t, db.Create(&entity.DailySummary{
		Date: day(20), TotalSales: price(999), OrderCount: 9,
	}).Error)

	require.NoError(t, db.Create(&entity.Expense{
		Description: "carbón", Amount: price(30), Date: day(10),
	}).Error)

	b, err := svc.Asador(day(9), day(12))
	require.NoError(t, err)

	assert.Len(t, b.Summaries, 2)
	assert.Equal(t, "160", b.TotalSales.String())
	assert.Equal(t, 7, b.OrderCount)
	assert.Equal(t, "12.5", b.ChickenUnits.String())
	assert.Equal(t, 4, b.CachopoUnits)
	assert.Equal(t, "30", b.TotalExpenses.String())
	assert.Equal(t, "130", b.Profit.String())
}

func TestCarniceriaBalanceProfit(t *testing.T) {
	db := newTestDB(t)
	svc := newBalanceService(db)

	require.NoError(t, db.Create(&entity.Sale{Date: day(10), Total: price(500)}).Error)
	require.NoError(t, db.Create(&entity.SupplierInvoice{
		Supplier: "Cárnicas López", InvoiceNumber: "F-100", Date: day(10), Total: price(200),
	}).Error)
	require.NoError(t, db.Create(&entity.StoreInvoice{
		Supplier: "Makro", Date: day(11), Total: price(50),
	}).Error)
	require.NoError(t, db.Create(&entity.StoreExpense{
		Date: day(11), Description: "bolsas", Total: price(20),
	}).Error)
	require.NoError(t, db.Create(&entity.BankPayment{
		Date: day(12), Concept: "seguro", Total: price(80),
	}).Error)
	// fuera de rango
	require.NoError(t, db.Create(&entity.Sale{Date: day(20), Total: price(999)}).Error)

	b, err := svc.Carniceria(day(9), day(13))
	require.NoError(t, err)

	assert.Equal(t, "500", b.Sales.String())
	assert.Equal(t, "250", b.Purchases.String())
	assert.Equal(t, "100", b.Expenses.String())
	assert.Equal(t, "150", b.Profit.String())
}

func TestCarniceriaBalanceEmptyRange(t *testing.T) {
	svc := newBalanceService(newTestDB(t))

	b, err := svc.Carniceria(day(1), day(5))
	require.NoError(t, err)

	assert.True(t, b.Sales.IsZero())
	assert.True(t, b.Profit.IsZero())
}
