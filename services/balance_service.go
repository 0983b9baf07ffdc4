package services

import (
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BalanceService struct {
	DB          *gorm.DB
	SummaryRepo *repository.SummaryRepository
	ExpenseRepo *repository.ExpenseRepository
}

func NewBalanceService(db *gorm.DB, summaryRepo *repository.SummaryRepository, expenseRepo *repository.ExpenseRepository) *BalanceService {
	return &BalanceService{DB: db, SummaryRepo: summaryRepo, ExpenseRepo: expenseRepo}
}

// ----- Balance del asador -----

type AsadorBalance struct {
	Summaries []entity.DailySummary `json:"summaries"`
	Expenses  []entity.Expense      `json:"expenses"`

	TotalSales    decimal.Decimal `json:"totalSales"`
	OrderCount    int             `json:"orderCount"`
	ChickenUnits  decimal.Decimal `json:"chickenUnits"`
	CachopoUnits  int             `json:"cachopoUnits"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Profit        decimal.Decimal `json:"profit"`
}

func (s *BalanceService) Asador(from, to time.Time) (*AsadorBalance, error) {
	summaries, err := s.SummaryRepo.ListByRange(from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ExpenseRepo.ListByRange(from, to)
	if err != nil {
		return nil, err
	}

	b := &AsadorBalance{
		Summaries:     summaries,
		Expenses:      expenses,
		TotalSales:    decimal.Zero,
		ChickenUnits:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range summaries {
		b.TotalSales = b.TotalSales.Add(r.TotalSales)
		b.OrderCount += r.OrderCount
		b.ChickenUnits = b.ChickenUnits.Add(r.ChickenUnits)
		b.CachopoUnits += r.CachopoUnits
	}
	for _, e := range expenses {
		b.TotalExpenses = b.TotalExpenses.Add(e.Amount)
	}
	b.Profit = b.TotalSales.Sub(b.TotalExpenses)
	return b, nil
}

// ----- Balance de la carnicería -----

type CarniceriaBalance struct {
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Expenses  decimal.Decimal `json:"expenses"`
	Profit    decimal.Decimal `json:"profit"`
}

func (s *BalanceService) Carniceria(from, to time.Time) (*CarniceriaBalance, error) {
	sales, err := s.sumTotal(&entity.Sale{}, from, to)
	if err != nil {
		return nil, err
	}
	supplier, err := s.sumTotal(&entity.SupplierInvoice{}, from, to)
	if err != nil {
		return nil, err
	}
	store, err := s.sumTotal(&entity.StoreInvoice{}, from, to)
	if err != nil {
		return nil, err
	}
	storeExp, err := s.sumTotal(&entity.StoreExpense{}, from, to)
	if err != nil {
		return nil, err
	}
	bank, err := s.sumTotal(&entity.BankPayment{}, from, to)
	if err != nil {
		return nil, err
	}

	purchases := supplier.Add(store)
	expenses := storeExp.Add(bank)
	return &CarniceriaBalance{
		Sales:     sales,
		Purchases: purchases,
		Expenses:  expenses,
		Profit:    sales.Sub(purchases).Sub(expenses),
	}, nil
}

func (s *BalanceService) sumTotal(model any, from, to time.Time) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := s.DB.Model(model).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
