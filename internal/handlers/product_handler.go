package handlers

import (
	"errors"
	"log"
	"net/http"

	"pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("list products failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusOK, "Products retrieved successfully", products)
}

// GetProduct responds 200 with a null payload when the id matches nothing.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Param("id"))
	if err != nil {
		log.Printf("get product failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusOK, "Product retrieved successfully", product)
}

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	product, err := h.productService.CreateProduct(req.Name, req.Image, req.Category, req.Description, *req.Price)
	if err != nil {
		log.Printf("create product failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	product, err := h.productService.DeleteProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("delete product failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusAccepted, "Product deleted successfully", product)
}
