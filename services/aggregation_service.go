package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate   = errors.New("formato de fecha incorrecto")
	ErrSummaryExists = errors.New("ya existe un resumen para la fecha señalada")
)

// Ventana de servicio del mediodía: diez tramos de 15 minutos, de 13:00 a 15:30.
const (
	serviceOpenMinute = 13 * 60
	intervalMinutes   = 15
	intervalSlots     = 10
)

// Clasificación de artículos trazados. Se resuelve una vez por pasada a
// partir del catálogo cargado, en vez de comparar nombres en cada suma.
type itemKind int

const (
	kindNone itemKind = iota
	kindWholeChicken
	kindHalfChicken
	kindCachopoTernera
	kindCachopoPollo
	kindCachopoLomo
)

const tastingMenuName = "menú cachopo degustación"

// Las líneas directas del pedido clasifican por nombre exacto.
func classifyLineName(name string) itemKind {
	switch strings.ToLower(name) {
	case "pollo asado":
		return kindWholeChicken
	case "medio pollo asado":
		return kindHalfChicken
	case "cachopo ternera":
		return kindCachopoTernera
	case "cachopo pollo":
		return kindCachopoPollo
	case "cachopo lomo":
		return kindCachopoLomo
	}
	return kindNone
}

// Los productos dentro de un menú clasifican por contenido del nombre.
func classifyPartName(name string) itemKind {
	n := strings.ToLower(name)
	if strings.Contains(n, "pollo asado") {
		if strings.Contains(n, "medio pollo") {
			return kindHalfChicken
		}
		return kindWholeChicken
	}
	if strings.Contains(n, "cachopo") {
		switch {
		case strings.Contains(n, "ternera"):
			return kindCachopoTernera
		case strings.Contains(n, "pollo"):
			return kindCachopoPollo
		case strings.Contains(n, "lomo"):
			return kindCachopoLomo
		}
	}
	return kindNone
}

// catalogTags mapea ids de producto/menú a su clasificación, resuelta una
// sola vez sobre los pedidos cargados.
type catalogTags struct {
	lineKind    map[uint]itemKind
	partKind    map[uint]itemKind
	tastingMenu map[uint]bool
}

func tagCatalog(orders []entity.Order) catalogTags {
	t := catalogTags{
		lineKind:    make(map[uint]itemKind),
		partKind:    make(map[uint]itemKind),
		tastingMenu: make(map[uint]bool),
	}
	for i := range orders {
		for _, l := range orders[i].ProductLines {
			if _, ok := t.lineKind[l.ProductID]; !ok {
				t.lineKind[l.ProductID] = classifyLineName(l.Product.Name)
			}
		}
		for _, l := range orders[i].MenuLines {
			if _, ok := t.tastingMenu[l.MenuID]; !ok {
				t.tastingMenu[l.MenuID] = strings.ToLower(l.Menu.Name) == tastingMenuName
			}
			for _, part := range l.Menu.Items {
				if _, ok := t.partKind[part.ProductID]; !ok {
					t.partKind[part.ProductID] = classifyPartName(part.Product.Name)
				}
			}
		}
	}
	return t
}

// ----- Resultado de la agregación -----

type OrderLineView struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

type OrderView struct {
	ID           uint            `json:"id"`
	CustomerName string          `json:"customerName"`
	ScheduledAt  time.Time       `json:"scheduledAt"`
	Delivered    bool            `json:"delivered"`
	Notes        string          `json:"notes"`
	Lines        []OrderLineView `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}

type IntervalCount struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

type StockProjection struct {
	Tracked   bool            `json:"tracked"`
	Available decimal.Decimal `json:"available"`
	Remaining decimal.Decimal `json:"remaining"`
}

// DailyAggregate es el resultado completo de un día: se construye en una
// sola pasada sobre los pedidos y no se comparte estado entre peticiones.
type DailyAggregate struct {
	Date           string          `json:"date"`
	Orders         []OrderView     `json:"orders"`
	OrderCount     int             `json:"orderCount"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	ChickenUnits   decimal.Decimal `json:"chickenUnits"`
	CachopoTernera int             `json:"cachopoTernera"`
	CachopoPollo   int             `json:"cachopoPollo"`
	CachopoLomo    int             `json:"cachopoLomo"`
	TastingMenus   int             `json:"tastingMenus"`
	Stock          StockProjection `json:"stock"`
	Intervals      []IntervalCount `json:"intervals"`
	Unbucketed     int             `json:"unbucketed"`
}

type AggregationService struct {
	DB          *gorm.DB
	OrderRepo   *repository.OrderRepository
	InvRepo     *repository.InventoryRepository
	SummaryRepo *repository.SummaryRepository

	// Producto cuyo stock restante se proyecta (el pollo asado).
	ChickenProductID uint
}

func NewAggregationService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	invRepo *repository.InventoryRepository,
	summaryRepo *repository.SummaryRepository,
	chickenProductID uint,
) *AggregationService {
	return &AggregationService{
		DB:               db,
		OrderRepo:        orderRepo,
		InvRepo:          invRepo,
		SummaryRepo:      summaryRepo,
		ChickenProductID: chickenProductID,
	}
}

// DailyAggregate agrega los pedidos del día indicado (hoy si llega vacío).
// Pedidos e inventario se leen dentro de la misma transacción para que la
// proyección de stock cuadre con los pedidos contados.
func (s *AggregationService) DailyAggregate(dateStr string) (*DailyAggregate, error) {
	day := time.Now()
	if dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}
	from, to := utils.DayRange(day)

	var orders []entity.Order
	var inv *entity.Inventory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		orders, err = s.OrderRepo.ListByRange(tx, from, to)
		if err != nil {
			return err
		}
		inv, err = s.InvRepo.GetByProductID(tx, s.ChickenProductID)
		return err
	})
	if err != nil {
		return nil, err
	}

	agg := buildAggregate(from.Format(utils.DateLayout), orders, inv)
	return agg, nil
}

// buildAggregate pliega la lista de pedidos en un único valor, sin tocar
// la base de datos.
func buildAggregate(date string, orders []entity.Order, inv *entity.Inventory) *DailyAggregate {
	tags := tagCatalog(orders)

	agg := &DailyAggregate{
		Date:         date,
		Orders:       make([]OrderView, 0, len(orders)),
		TotalSales:   decimal.Zero,
		ChickenUnits: decimal.Zero,
		Intervals:    emptyIntervals(),
	}
	half := decimal.NewFromFloat(0.5)

	for i := range orders {
		o := &orders[i]
		view := OrderView{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			ScheduledAt:  o.ScheduledAt,
			Delivered:    o.Delivered,
			Notes:        o.Notes,
			Total:        decimal.Zero,
		}

		for _, l := range o.ProductLines {
			qty := decimal.NewFromInt(int64(l.Qty))
			linePrice := l.Product.Price.Mul(qty)
			view.Total = view.Total.Add(linePrice)
			view.Lines = append(view.Lines, OrderLineView{Name: l.Product.Name, Qty: l.Qty, Price: linePrice})

			switch tags.lineKind[l.ProductID] {
			case kindWholeChicken:
				agg.ChickenUnits = agg.ChickenUnits.Add(qty)
			case kindHalfChicken:
				agg.ChickenUnits = agg.ChickenUnits.Add(half.Mul(qty))
			case kindCachopoTernera:
				agg.CachopoTernera += l.Qty
			case kindCachopoPollo:
				agg.CachopoPollo += l.Qty
			case kindCachopoLomo:
				agg.CachopoLomo += l.Qty
			}
		}

		for _, l := range o.MenuLines {
			qty := decimal.NewFromInt(int64(l.Qty))
			linePrice := l.Menu.Price.Mul(qty)
			view.Total = view.Total.Add(linePrice)
			view.Lines = append(view.Lines, OrderLineView{Name: l.Menu.Name, Qty: l.Qty, Price: linePrice})

			// El menú degustación cuenta como tal a nivel de menú; su
			// composición sigue sumando a los contadores por variante.
			if tags.tastingMenu[l.MenuID] {
				agg.TastingMenus += l.Qty
			}
			for _, part := range l.Menu.Items {
				factor := l.Qty * part.Qty
				switch tags.partKind[part.ProductID] {
				case kindWholeChicken:
					agg.ChickenUnits = agg.ChickenUnits.Add(decimal.NewFromInt(int64(factor)))
				case kindHalfChicken:
					agg.ChickenUnits = agg.ChickenUnits.Add(half.Mul(decimal.NewFromInt(int64(factor))))
				case kindCachopoTernera:
					agg.CachopoTernera += factor
				case kindCachopoPollo:
					agg.CachopoPollo += factor
				case kindCachopoLomo:
					agg.CachopoLomo += factor
				}
			}
		}

		agg.TotalSales = agg.TotalSales.Add(view.Total)
		agg.Orders = append(agg.Orders, view)

		if idx := bucketIndex(o.ScheduledAt.In(time.Local)); idx >= 0 {
			agg.Intervals[idx].Count++
		} else {
			agg.Unbucketed++
		}
	}

	agg.OrderCount = len(agg.Orders)

	if inv != nil {
		agg.Stock = StockProjection{
			Tracked:   true,
			Available: inv.Available,
			Remaining: inv.Available.Sub(agg.ChickenUnits),
		}
	} else {
		agg.Stock = StockProjection{Tracked: false, Available: decimal.Zero, Remaining: decimal.Zero}
	}

	return agg
}

// bucketIndex asigna la hora local del pedido a su tramo de 15 minutos.
// Todos los tramos son [inicio, fin) salvo el último, que incluye la hora
// final exacta. Fuera de la ventana devuelve -1.
func bucketIndex(t time.Time) int {
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	start := serviceOpenMinute * 60
	end := start + intervalSlots*intervalMinutes*60
	if sec < start || sec > end {
		return -1
	}
	if sec == end {
		return intervalSlots - 1
	}
	return (sec - start) / (intervalMinutes * 60)
}

func emptyIntervals() []IntervalCount {
	out := make([]IntervalCount, intervalSlots)
	for i := range out {
		from := serviceOpenMinute + i*intervalMinutes
		to := from + intervalMinutes
		out[i] = IntervalCount{
			From: fmt.Sprintf("%02d:%02d", from/60, from%60),
			To:   fmt.Sprintf("%02d:%02d", to/60, to%60),
		}
	}
	return out
}

// ----- Cierre del día -----

type CloseDayTotals struct {
	TotalSales   decimal.Decimal `json:"totalSales"`
	OrderCount   int             `json:"orderCount"`
	ChickenUnits decimal.Decimal `json:"chickenUnits"`
	CachopoUnits int             `json:"cachopoUnits"`
}

const (
	CloseDayCreated = "created"
	CloseDayUpdated = "updated"
)

// CloseDay guarda la foto del día. Sin overwrite rechaza fechas ya cerradas;
// con overwrite machaca los totales del resumen existente.
func (s *AggregationService) CloseDay(dateStr string, totals CloseDayTotals, overwrite bool) (string, error) {
	day, err := utils.ParseDate(dateStr)
	if err != nil {
		return "", ErrInvalidDate
	}
	date, _ := utils.DayRange(day)

	result := ""
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.SummaryRepo.GetByDateLocked(tx, date)
		if err != nil {
			return err
		}
		if existing != nil {
			if !overwrite {
				return ErrSummaryExists
			}
			existing.TotalSales = totals.TotalSales
			existing.OrderCount = totals.OrderCount
			existing.ChickenUnits = totals.ChickenUnits
			existing.CachopoUnits = totals.CachopoUnits
			if err := s.SummaryRepo.UpdateTotals(tx, existing); err != nil {
				return err
			}
			result = CloseDayUpdated
			return nil
		}

		summary := entity.DailySummary{
			Date:         date,
			TotalSales:   totals.TotalSales,
			OrderCount:   totals.OrderCount,
			ChickenUnits: totals.ChickenUnits,
			CachopoUnits: totals.CachopoUnits,
		}
		if err := s.SummaryRepo.Create(tx, &summary); err != nil {
			return err
		}
		result = CloseDayCreated
		return nil
	})
	if err != nil {
		// Dos cierres a la vez del mismo día: el índice único convierte al
		// perdedor en el mismo conflicto que un resumen ya existente.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrSummaryExists
		}
		return "", err
	}
	return result, nil
}
