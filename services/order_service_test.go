package services

import (
	"testing"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db))
}

func seedProduct(t *testing.T, db *gorm.DB, name string) entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Category: entity.CategoryMain, Price: price(10)}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestOrderCreateAndUpdateReplacesLines(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	pollo := seedProduct(t, db, "Pollo Asado")
	cachopo := seedProduct(t, db, "Cachopo Ternera")

	order, err := svc.Create(&SaveOrderReq{
		CustomerName: "Carlos",
		ScheduledAt:  at(13, 30, 0),
		ProductLines: []ProductLineIn{{ProductID: pollo.ID, Qty: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(order.ID, &SaveOrderReq{
		CustomerName: "Carlos",
		ScheduledAt:  at(14, 0, 0),
		ProductLines: []ProductLineIn{{ProductID: cachopo.ID, Qty: 2}},
	})
	require.NoError(t, err)

	require.Len(t, updated.ProductLines, 1)
	assert.Equal(t, cachopo.ID, updated.ProductLines[0].ProductID)
	assert.Equal(t, 2, updated.ProductLines[0].Qty)

	var count int64
	require.NoError(t, db.Model(&entity.OrderProduct{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	_, err := svc.Create(&SaveOrderReq{
		CustomerName: "Carlos",
		ScheduledAt:  at(13, 30, 0),
		ProductLines: []ProductLineIn{{ProductID: 42, Qty: 1}},
	})
	assert.Error(t, err)
}

func TestOrderSetDelivered(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	pollo := seedProduct(t, db, "Pollo Asado")
	order, err := svc.Create(&SaveOrderReq{
		CustomerName: "Carlos",
		ScheduledAt:  at(13, 30, 0),
		ProductLines: []ProductLineIn{{ProductID: pollo.ID, Qty: 1}},
	})
	require.NoError(t, err)

	found, err := svc.SetDelivered(order.ID, true)
	require.NoError(t, err)
	assert.True(t, found)

	var got entity.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.True(t, got.Delivered)

	found, err = svc.SetDelivered(999, true)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrderDeleteMissing(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	found, err := svc.Delete(999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrderDeleteCascadesLines(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	pollo := seedProduct(t, db, "Pollo Asado")
	order, err := svc.Create(&SaveOrderReq{
		CustomerName: "Carlos",
		ScheduledAt:  at(13, 30, 0),
		ProductLines: []ProductLineIn{{ProductID: pollo.ID, Qty: 2}},
	})
	require.NoError(t, err)

	found, err := svc.Delete(order.ID)
	require.NoError(t, err)
	assert.True(t, found)

	var count int64
	require.NoError(t, db.Model(&entity.OrderProduct{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
