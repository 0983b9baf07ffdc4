package services

import (
	"testing"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// una única conexión para que la base en memoria no se esfume
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Product{}, &entity.Menu{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderProduct{}, &entity.OrderMenu{},
		&entity.Inventory{}, &entity.DailySummary{}, &entity.Expense{},
		&entity.Sale{}, &entity.SupplierInvoice{}, &entity.StoreInvoice{},
		&entity.StoreExpense{}, &entity.BankPayment{},
		&entity.Client{}, &entity.Invoice{}, &entity.InvoiceLine{},
	))
	return db
}

func newAggregationService(db *gorm.DB) *AggregationService {
	return NewAggregationService(
		db,
		repository.NewOrderRepository(db),
		repository.NewInventoryRepository(db),
		repository.NewSummaryRepository(db),
		1,
	)
}

func price(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func at(h, m, s int) time.Time {
	return time.Date(2026, 3, 14, h, m, s, 0, time.Local)
}

// ----- buildAggregate (pliegue puro, sin base de datos) -----

func TestBuildAggregateEmptyDay(t *testing.T) {
	agg := buildAggregate("2026-03-14", nil, nil)

	assert.Equal(t, 0, agg.OrderCount)
	assert.True(t, agg.TotalSales.IsZero())
	assert.True(t, agg.ChickenUnits.IsZero())
	assert.False(t, agg.Stock.Tracked)
	assert.Len(t, agg.Intervals, 10)
	assert.Equal(t, "13:00", agg.Intervals[0].From)
	assert.Equal(t, "15:30", agg.Intervals[9].To)
}

func TestBuildAggregateZeroLineOrder(t *testing.T) {
	orders := []entity.Order{{
		Model:        gorm.Model{ID: 1},
		CustomerName: "María",
		ScheduledAt:  at(13, 30, 0),
	}}
	agg := buildAggregate("2026-03-14", orders, nil)

	require.Len(t, agg.Orders, 1)
	assert.True(t, agg.Orders[0].Total.IsZero())
	assert.True(t, agg.TotalSales.IsZero())
	assert.Equal(t, 1, agg.OrderCount)
}

// El ejemplo completo: 2 pollos asados a 10 más un menú degustación a 15
// que lleva un cachopo de ternera.
func workedExampleOrders() []entity.Order {
	pollo := entity.Product{Model: gorm.Model{ID: 1}, Name: "Pollo Asado", Price: price(10)}
	ternera := entity.Product{Model: gorm.Model{ID: 2}, Name: "Cachopo Ternera", Price: price(12)}
	menu := entity.Menu{
		Model: gorm.Model{ID: 1},
		Name:  "Menú Cachopo Degustación",
		Price: price(15),
		Items: []entity.MenuItem{{MenuID: 1, ProductID: 2, Qty: 1, Product: ternera}},
	}
	return []entity.Order{{
		Model:        gorm.Model{ID: 1},
		CustomerName: "Carlos",
		ScheduledAt:  at(14, 0, 0),
		ProductLines: []entity.OrderProduct{{OrderID: 1, ProductID: 1, Qty: 2, Product: pollo}},
		MenuLines:    []entity.OrderMenu{{OrderID: 1, MenuID: 1, Qty: 1, Menu: menu}},
	}}
}

func TestBuildAggregateWorkedExample(t *testing.T) {
	agg := buildAggregate("2026-03-14", workedExampleOrders(), nil)

	assert.Equal(t, "35", agg.TotalSales.String())
	assert.Equal(t, "2", agg.ChickenUnits.String())
	assert.Equal(t, 1, agg.CachopoTernera)
	assert.Equal(t, 0, agg.CachopoPollo)
	assert.Equal(t, 0, agg.CachopoLomo)
	assert.Equal(t, 1, agg.TastingMenus)
	assert.Equal(t, 1, agg.OrderCount)

	// 14:00 cae en el tramo [14:00, 14:15)
	assert.Equal(t, 1, agg.Intervals[4].Count)
	assert.Equal(t, 0, agg.Unbucketed)
}

func TestBuildAggregateLineOrderIndependence(t *testing.T) {
	pollo := entity.Product{Model: gorm.Model{ID: 1}, Name: "Pollo Asado", Price: price(10)}
	ternera := entity.Product{Model: gorm.Model{ID: 2}, Name: "Cachopo Ternera", Price: price(12)}
	lines := []entity.OrderProduct{
		{OrderID: 1, ProductID: 1, Qty: 2, Product: pollo},
		{OrderID: 1, ProductID: 2, Qty: 1, Product: ternera},
	}
	withLines := func(ls []entity.OrderProduct) []entity.Order {
		return []entity.Order{{Model: gorm.Model{ID: 1}, ScheduledAt: at(13, 0, 0), ProductLines: ls}}
	}

	straight := buildAggregate("2026-03-14", withLines(lines), nil)
	other := buildAggregate("2026-03-14", withLines([]entity.OrderProduct{lines[1], lines[0]}), nil)

	assert.True(t, straight.TotalSales.Equal(other.TotalSales))
	assert.Equal(t, "32", straight.TotalSales.String())
	assert.True(t, straight.ChickenUnits.Equal(other.ChickenUnits))
	assert.Equal(t, straight.CachopoTernera, other.CachopoTernera)
}

func TestBuildAggregateHalfChicken(t *testing.T) {
	medio := entity.Product{Model: gorm.Model{ID: 3}, Name: "Medio Pollo Asado", Price: price(6)}
	orders := []entity.Order{{
		Model:        gorm.Model{ID: 1},
		ScheduledAt:  at(13, 0, 0),
		ProductLines: []entity.OrderProduct{{OrderID: 1, ProductID: 3, Qty: 3, Product: medio}},
	}}
	agg := buildAggregate("2026-03-14", orders, nil)

	assert.Equal(t, "1.5", agg.ChickenUnits.String())
}

func TestBuildAggregateMenuPartsBySubstring(t *testing.T) {
	// dentro de un menú clasifica por contenido, no por nombre exacto
	guarnicion := entity.Product{Model: gorm.Model{ID: 4}, Name: "Cachopo de Lomo con patatas", Price: price(9)}
	menu := entity.Menu{
		Model: gorm.Model{ID: 2},
		Name:  "Menú del día",
		Price: price(11),
		Items: []entity.MenuItem{{MenuID: 2, ProductID: 4, Qty: 1, Product: guarnicion}},
	}
	orders := []entity.Order{{
		Model:       gorm.Model{ID: 1},
		ScheduledAt: at(13, 0, 0),
		MenuLines:   []entity.OrderMenu{{OrderID: 1, MenuID: 2, Qty: 2, Menu: menu}},
	}}
	agg := buildAggregate("2026-03-14", orders, nil)

	assert.Equal(t, 2, agg.CachopoLomo)
	assert.Equal(t, 0, agg.TastingMenus)
}

func TestBuildAggregateStockProjection(t *testing.T) {
	inv := &entity.Inventory{ProductID: 1, Available: price(10)}
	agg := buildAggregate("2026-03-14", workedExampleOrders(), inv)

	assert.True(t, agg.Stock.Tracked)
	assert.Equal(t, "10", agg.Stock.Available.String())
	assert.Equal(t, "8", agg.Stock.Remaining.String())
}

// ----- tramos horarios -----

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"apertura", at(13, 0, 0), 0},
		{"limite entre tramos", at(13, 15, 0), 1},
		{"justo antes del limite", at(13, 14, 59), 0},
		{"penultimo limite", at(15, 15, 0), 9},
		{"cierre exacto incluido", at(15, 30, 0), 9},
		{"antes de abrir", at(12, 59, 59), -1},
		{"despues de cerrar", at(15, 30, 1), -1},
		{"por la mañana", at(9, 0, 0), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bucketIndex(tc.at))
		})
	}
}

func TestBuildAggregateUnbucketed(t *testing.T) {
	orders := []entity.Order{
		{Model: gorm.Model{ID: 1}, ScheduledAt: at(12, 0, 0)},
		{Model: gorm.Model{ID: 2}, ScheduledAt: at(13, 0, 0)},
	}
	agg := buildAggregate("2026-03-14", orders, nil)

	assert.Equal(t, 1, agg.Unbucketed)
	assert.Equal(t, 1, agg.Intervals[0].Count)
	assert.Equal(t, 2, agg.OrderCount)
}

// ----- DailyAggregate contra la base de datos -----

func TestDailyAggregateFromDB(t *testing.T) {
	db := newTestDB(t)
	svc := newAggregationService(db)

	pollo := entity.Product{Name: "Pollo Asado", Category: entity.CategoryMain, Price: price(10)}
	ternera := entity.Product{Name: "Cachopo Ternera", Category: entity.CategoryMain, Price: price(12)}
	require.NoError(t, db.Create(&pollo).Error)
	require.NoError(t, db.Create(&ternera).Error)

	menu := entity.Menu{
		Name:  "Menú Cachopo Degustación",
		Price: price(15),
		Items: []entity.MenuItem{{ProductID: ternera.ID, Qty: 1}},
	}
	require.NoError(t, db.Create(&menu).Error)

	require.NoError(t, db.Create(&entity.Inventory{ProductID: pollo.ID, Available: price(20)}).Error)

	order := entity.Order{
		CustomerName: "Carlos",
		ScheduledAt:  at(14, 0, 0),
		ProductLines: []entity.OrderProduct{{ProductID: pollo.ID, Qty: 2}},
		MenuLines:    []entity.OrderMenu{{MenuID: menu.ID, Qty: 1}},
	}
	require.NoError(t, db.Create(&order).Error)

	// un pedido de otro día no debe entrar
	other := entity.Order{
		CustomerName: "Lucía",
		ScheduledAt:  at(14, 0, 0).AddDate(0, 0, 1),
		ProductLines: []entity.OrderProduct{{ProductID: pollo.ID, Qty: 5}},
	}
	require.NoError(t, db.Create(&other).Error)

	agg, err := svc.DailyAggregate("2026-03-14")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", agg.Date)
	assert.Equal(t, 1, agg.OrderCount)
	assert.Equal(t, "35", agg.TotalSales.String())
	assert.Equal(t, "2", agg.ChickenUnits.String())
	assert.Equal(t, 1, agg.CachopoTernera)
	assert.Equal(t, 1, agg.TastingMenus)
	assert.True(t, agg.Stock.Tracked)
	assert.Equal(t, "18", agg.Stock.Remaining.String())
}

func TestDailyAggregateInvalidDate(t *testing.T) {
	svc := newAggregationService(newTestDB(t))

	_, err := svc.DailyAggregate("14-03-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// ----- cierre del día -----

func TestCloseDayCreateConflictOverwrite(t *testing.T) {
	db := newTestDB(t)
	svc := newAggregationService(db)

	totals := CloseDayTotals{
		TotalSales:   price(35),
		OrderCount:   1,
		ChickenUnits: price(2),
		CachopoUnits: 1,
	}

	result, err := svc.CloseDay("2026-03-14", totals, false)
	require.NoError(t, err)
	assert.Equal(t, CloseDayCreated, result)

	// segunda vez sin overwrite: conflicto y resumen intacto
	_, err = svc.CloseDay("2026-03-14", totals, false)
	assert.ErrorIs(t, err, ErrSummaryExists)

	var count int64
	require.NoError(t, db.Model(&entity.DailySummary{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// con overwrite se machacan los totales
	totals.TotalSales = price(50)
	totals.OrderCount = 2
	result, err = svc.CloseDay("2026-03-14", totals, true)
	require.NoError(t, err)
	assert.Equal(t, CloseDayUpdated, result)

	var summary entity.DailySummary
	require.NoError(t, db.First(&summary).Error)
	assert.Equal(t, "50", summary.TotalSales.String())
	assert.Equal(t, 2, summary.OrderCount)

	require.NoError(t, db.Model(&entity.DailySummary{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCloseDayInvalidDate(t *testing.T) {
	db := newTestDB(t)
	svc := newAggregationService(db)

	_, err := svc.CloseDay("ayer", CloseDayTotals{}, false)
	assert.ErrorIs(t, err, ErrInvalidDate)

	var count int64
	require.NoError(t, db.Model(&entity.DailySummary{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCloseDayDistinctDates(t *testing.T) {
	svc := newAggregationService(newTestDB(t))

	_, err := svc.CloseDay("2026-03-14", CloseDayTotals{TotalSales: price(35)}, false)
	require.NoError(t, err)

	result, err := svc.CloseDay("2026-03-15", CloseDayTotals{TotalSales: price(40)}, false)
	require.NoError(t, err)
	assert.Equal(t, CloseDayCreated, result)
}
