package services

import (
	"errors"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// El IVA de carnicería es el tipo reducido del 10%.
var vatRate = decimal.NewFromFloat(0.10)

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

type InvoiceLineIn struct {
	Description string          `json:"description" binding:"required"`
	Qty         decimal.Decimal `json:"qty" binding:"required"`
	PricePerKg  decimal.Decimal `json:"pricePerKg" binding:"required"`
}

type SaveInvoiceReq struct {
	Number       string          `json:"number" binding:"required"`
	IssueDate    time.Time       `json:"issueDate"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	ClientID     uint            `json:"clientId" binding:"required"`
	Lines        []InvoiceLineIn `json:"lines" binding:"required,min=1"`
}

// computeLine calcula neto, IVA y total de una línea: neto = kg × precio/kg,
// IVA = 10% del neto, total = neto + IVA. Redondeo a céntimos por línea.
func computeLine(in InvoiceLineIn) entity.InvoiceLine {
	net := in.Qty.Mul(in.PricePerKg).Round(2)
	vat := net.Mul(vatRate).Round(2)
	return entity.InvoiceLine{
		Description: in.Description,
		Qty:         in.Qty,
		PricePerKg:  in.PricePerKg,
		Net:         net,
		Vat:         vat,
		Total:       net.Add(vat),
	}
}

func buildInvoice(req *SaveInvoiceReq) (entity.Invoice, []entity.InvoiceLine) {
	issue := req.IssueDate
	if issue.IsZero() {
		issue = time.Now()
	}
	delivery := req.DeliveryDate
	if delivery.IsZero() {
		delivery = issue
	}

	lines := make([]entity.InvoiceLine, 0, len(req.Lines))
	net, vat, total := decimal.Zero, decimal.Zero, decimal.Zero
	for _, in := range req.Lines {
		line := computeLine(in)
		net = net.Add(line.Net)
		vat = vat.Add(line.Vat)
		total = total.Add(line.Total)
		lines = append(lines, line)
	}

	inv := entity.Invoice{
		Number:       req.Number,
		IssueDate:    issue,
		DeliveryDate: delivery,
		ClientID:     req.ClientID,
		NetTotal:     net,
		VatTotal:     vat,
		Total:        total,
	}
	return inv, lines
}

func (s *InvoiceService) Create(req *SaveInvoiceReq) (*entity.Invoice, error) {
	var cnt int64
	if err := s.DB.Model(&entity.Client{}).Where("id = ?", req.ClientID).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, errors.New("cliente no encontrado")
	}

	inv, lines := buildInvoice(req)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].InvoiceID = inv.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(inv.ID)
}

// Update reemplaza cabecera y líneas; los totales salen siempre de las
// líneas nuevas.
func (s *InvoiceService) Update(id uint, req *SaveInvoiceReq) (*entity.Invoice, error) {
	var existing entity.Invoice
	if err := s.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}

	inv, lines := buildInvoice(req)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Invoice{Model: gorm.Model{ID: id}}).
			Updates(map[string]any{
				"number":        inv.Number,
				"issue_date":    inv.IssueDate,
				"delivery_date": inv.DeliveryDate,
				"client_id":     inv.ClientID,
				"net_total":     inv.NetTotal,
				"vat_total":     inv.VatTotal,
				"total":         inv.Total,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&entity.InvoiceLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].InvoiceID = id
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *InvoiceService) Get(id uint) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := s.DB.Preload("Client").Preload("Lines").First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *InvoiceService) ListByRange(from, to time.Time) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := s.DB.Preload("Client").
		Where("issue_date BETWEEN ? AND ?", from, to).
		Order("issue_date DESC").
		Find(&out).Error
	return out, err
}

func (s *InvoiceService) Delete(id uint) (bool, error) {
	found := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Invoice{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("invoice_id = ?", id).Delete(&entity.InvoiceLine{}).Error
	})
	return found, err
}
