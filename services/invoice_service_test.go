package services

import (
	"testing"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLineVat(t *testing.T) {
	// 1,234 kg a 9,80 €/kg: neto 12,09, IVA 1,21, total 13,30
	line := computeLine(InvoiceLineIn{
		Description: "Lomo adobado",
		Qty:         decimal.NewFromFloat(1.234),
		PricePerKg:  decimal.NewFromFloat(9.80),
	})

	assert.Equal(t, "12.09", line.Net.StringFixed(2))
	assert.Equal(t, "1.21", line.Vat.StringFixed(2))
	assert.Equal(t, "13.3", line.Total.String())
}

func TestInvoiceCreateRecomputesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)

	client := entity.Client{Name: "Bar Manolo", Code: "C001", TaxID: "B12345678"}
	require.NoError(t, db.Create(&client).Error)

	inv, err := svc.Create(&SaveInvoiceReq{
		Number:   "2026-001",
		ClientID: client.ID,
		Lines: []InvoiceLineIn{
			{Description: "Chorizo", Qty: decimal.NewFromFloat(2), PricePerKg: decimal.NewFromFloat(8.50)},
			{Description: "Panceta", Qty: decimal.NewFromFloat(1.5), PricePerKg: decimal.NewFromFloat(6)},
		},
	})
	require.NoError(t, err)

	// neto 17 + 9 = 26; IVA 1,70 + 0,90 = 2,60
	assert.Equal(t, "26", inv.NetTotal.String())
	assert.Equal(t, "2.6", inv.VatTotal.String())
	assert.Equal(t, "28.6", inv.Total.String())
	assert.Len(t, inv.Lines, 2)
	assert.Equal(t, "Bar Manolo", inv.Client.Name)
}

func TestInvoiceCreateUnknownClient(t *testing.T) {
	svc := NewInvoiceService(newTestDB(t))

	_, err := svc.Create(&SaveInvoiceReq{
		Number:   "2026-001",
		ClientID: 99,
		Lines:    []InvoiceLineIn{{Description: "Chorizo", Qty: decimal.NewFromInt(1), PricePerKg: decimal.NewFromInt(5)}},
	})
	assert.Error(t, err)
}

func TestInvoiceUpdateReplacesLines(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)

	client := entity.Client{Name: "Bar Manolo", Code: "C001", TaxID: "B12345678"}
	require.NoError(t, db.Create(&client).Error)

	inv, err := svc.Create(&SaveInvoiceReq{
		Number:   "2026-001",
		ClientID: client.ID,
		Lines: []InvoiceLineIn{
			{Description: "Chorizo", Qty: decimal.NewFromInt(2), PricePerKg: decimal.NewFromFloat(8.50)},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(inv.ID, &SaveInvoiceReq{
		Number:   "2026-001R",
		ClientID: client.ID,
		Lines: []InvoiceLineIn{
			{Description: "Panceta", Qty: decimal.NewFromInt(1), PricePerKg: decimal.NewFromInt(6)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-001R", updated.Number)
	require.Len(t, updated.Lines, 1)
	assert.Equal(t, "Panceta", updated.Lines[0].Description)
	assert.Equal(t, "6.6", updated.Total.String())

	// las líneas viejas no quedan huérfanas
	var count int64
	require.NoError(t, db.Model(&entity.InvoiceLine{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInvoiceDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)

	client := entity.Client{Name: "Bar Manolo", Code: "C001", TaxID: "B12345678"}
	require.NoError(t, db.Create(&client).Error)

	inv, err := svc.Create(&SaveInvoiceReq{
		Number:   "2026-001",
		ClientID: client.ID,
		Lines:    []InvoiceLineIn{{Description: "Chorizo", Qty: decimal.NewFromInt(1), PricePerKg: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)

	found, err := svc.Delete(inv.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.Delete(inv.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
