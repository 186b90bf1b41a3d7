package handlers

import (
	"errors"
	"log"
	"net/http"

	"pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService services.TransactionService
}

func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type requestedProduct struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type createTransactionRequest struct {
	Products            []requestedProduct `json:"products" binding:"required,min=1,dive"`
	CustomerName        string             `json:"customerName" binding:"required"`
	CustomerEmail       string             `json:"customerEmail" binding:"required,email"`
	CustomerPhone       string             `json:"customerPhone" binding:"required"`
	CustomerTableNumber string             `json:"customerTableNumber" binding:"required"`
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	requested := make([]services.RequestedItem, 0, len(req.Products))
	for _, p := range req.Products {
		requested = append(requested, services.RequestedItem{
			ProductID: p.ID,
			Quantity:  p.Quantity,
		})
	}

	transaction, err := h.transactionService.CreateTransaction(
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.CustomerTableNumber,
		requested,
	)
	if err != nil {
		if errors.Is(err, services.ErrNoProductsFound) {
			respondError(c, http.StatusNotFound, "No products found")
			return
		}
		log.Printf("create transaction failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusCreated, "Transaction created successfully", transaction)
}

func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.transactionService.GetTransactions(c.Query("status"))
	if err != nil {
		log.Printf("list transactions failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Printf("get transaction failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusOK, "Transaction retrieved successfully", transaction)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TransactionHandler) UpdateTransactionStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	transaction, err := h.transactionService.UpdateTransactionStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Printf("update transaction status failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusAccepted, "Transaction status updated successfully", transaction)
}
