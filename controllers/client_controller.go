package controllers

import (
	"errors"
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClientController struct{ DB *gorm.DB }

func NewClientController(db *gorm.DB) *ClientController { return &ClientController{DB: db} }

type ClientIn struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Address string `json:"address"`
	TaxID   string `json:"taxId" binding:"required"`
}

// GET /clients
func (cc *ClientController) List(c *gin.Context) {
	var clients []entity.Client
	if err := cc.DB.Order("name").Find(&clients).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, clients)
}

// GET /clients/:id
func (cc *ClientController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var client entity.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cliente no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, client)
}

// POST /clients
func (cc *ClientController) Create(c *gin.Context) {
	var req ClientIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	client := entity.Client{Name: req.Name, Code: req.Code, Address: req.Address, TaxID: req.TaxID}
	if err := cc.DB.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "ya existe un cliente con ese código o CIF")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, client)
}

// PUT /clients/:id
func (cc *ClientController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ClientIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := cc.DB.Model(&entity.Client{}).Where("id = ?", id).
		Updates(map[string]any{
			"name":    req.Name,
			"code":    req.Code,
			"address": req.Address,
			"tax_id":  req.TaxID,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "ya existe un cliente con ese código o CIF")
			return
		}
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "cliente no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "cliente actualizado correctamente"})
}

// DELETE /clients/:id
func (cc *ClientController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cnt int64
	if err := cc.DB.Model(&entity.Invoice{}).Where("client_id = ?", id).Count(&cnt).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if cnt > 0 {
		resp.Conflict(c, "el cliente tiene facturas asociadas")
		return
	}

	res := cc.DB.Delete(&entity.Client{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "cliente no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "cliente eliminado correctamente"})
}
