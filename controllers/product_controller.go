package controllers

import (
	"errors"
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct {
	repo *repository.ProductRepository
}

func NewProductController(repo *repository.ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

type ProductIn struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price"`
}

// GET /products
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// POST /products
func (pc *ProductController) Create(c *gin.Context) {
	var req ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidCategory(req.Category) {
		resp.BadRequest(c, "categoría no válida")
		return
	}

	p := entity.Product{Name: req.Name, Category: req.Category, Price: req.Price}
	if err := pc.repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidCategory(req.Category) {
		resp.BadRequest(c, "categoría no válida")
		return
	}

	if _, err := pc.repo.Get(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "producto no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}

	p := entity.Product{Model: gorm.Model{ID: uint(id)}, Name: req.Name, Category: req.Category, Price: req.Price}
	if err := pc.repo.Update(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := pc.repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "producto no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "producto eliminado correctamente"})
}
