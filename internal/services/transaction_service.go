package services

import (
	"errors"
	"time"

	"pos_backend/internal/models"
	"pos_backend/internal/repository"
	"pos_backend/pkg/randid"

	"gorm.io/gorm"
)

var (
	ErrNoProductsFound     = errors.New("no products found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// RequestedItem is one (product, quantity) pair from the order request.
type RequestedItem struct {
	ProductID string
	Quantity  int
}

// TransactionProduct is one line of the flat client-facing order shape.
// Name and Price are the snapshot taken at order time; Image is read live
// from the catalog.
type TransactionProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// TransactionResponse is the reshaped order returned to clients.
type TransactionResponse struct {
	ID                  string               `json:"id"`
	Total               float64              `json:"total"`
	Status              string               `json:"status"`
	CustomerName        string               `json:"customer_name"`
	CustomerEmail       string               `json:"customer_email"`
	CustomerPhone       string               `json:"customer_phone"`
	CustomerTableNumber string               `json:"customer_table_number"`
	SnapToken           *string              `json:"snap_token"`
	SnapRedirectURL     *string              `json:"snap_redirect_url"`
	PaymentMethod       *string              `json:"payment_method"`
	Products            []TransactionProduct `json:"products"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type TransactionService interface {
	CreateTransaction(customerName, customerEmail, customerPhone, customerTableNumber string, requested []RequestedItem) (*TransactionResponse, error)
	GetTransactions(statusFilter string) ([]TransactionResponse, error)
	GetTransactionByID(id string) (*TransactionResponse, error)
	UpdateTransactionStatus(id, status string) (*models.Transaction, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
}

func NewTransactionService(transactionRepo repository.TransactionRepository, productRepo repository.ProductRepository) TransactionService {
	return &transactionService{transactionRepo: transactionRepo, productRepo: productRepo}
}

// CreateTransaction resolves the requested products against the catalog,
// snapshots name and price per line, and persists the header and items
// atomically. Requested ids missing from the catalog are dropped; when none
// resolve, nothing is written.
func (s *transactionService) CreateTransaction(customerName, customerEmail, customerPhone, customerTableNumber string, requested []RequestedItem) (*TransactionResponse, error) {
	ids := make([]string, 0, len(requested))
	quantities := make(map[string]int, len(requested))
	for _, item := range requested {
		ids = append(ids, item.ProductID)
		quantities[item.ProductID] = item.Quantity
	}

	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProductsFound
	}

	transaction := &models.Transaction{
		ID:                  randid.TransactionID(),
		Status:              string(models.TransactionPending),
		CustomerName:        customerName,
		CustomerEmail:       customerEmail,
		CustomerPhone:       customerPhone,
		CustomerTableNumber: customerTableNumber,
	}

	items := make([]models.TransactionItem, 0, len(products))
	total := 0.0
	for _, product := range products {
		quantity := quantities[product.ID]
		total += product.Price * float64(quantity)
		items = append(items, models.TransactionItem{
			ID:          randid.TransactionItemID(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    quantity,
			Product:     product,
		})
	}
	transaction.Total = total

	if err := s.transactionRepo.CreateWithItems(transaction, items); err != nil {
		return nil, err
	}

	// respond with the order as assembled, not a re-read
	transaction.Items = items
	response := reform(transaction)
	return &response, nil
}

func (s *transactionService) GetTransactions(statusFilter string) ([]TransactionResponse, error) {
	var (
		transactions []models.Transaction
		err          error
	)
	if statusFilter != "" {
		transactions, err = s.transactionRepo.GetByStatus(statusFilter)
	} else {
		transactions, err = s.transactionRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, reform(&transactions[i]))
	}
	return responses, nil
}

func (s *transactionService) GetTransactionByID(id string) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	response := reform(transaction)
	return &response, nil
}

// UpdateTransactionStatus overwrites the status with the caller-supplied
// value and clears the payment method. Returns the updated header without
// items.
func (s *transactionService) UpdateTransactionStatus(id, status string) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// reform flattens the stored order into the client contract. Field
// provenance matters here: name and price come from the item snapshot,
// image comes from the product as it is in the catalog right now.
func reform(transaction *models.Transaction) TransactionResponse {
	products := make([]TransactionProduct, 0, len(transaction.Items))
	for _, item := range transaction.Items {
		products = append(products, TransactionProduct{
			ID:       item.ProductID,
			Name:     item.ProductName,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Product.Image,
		})
	}

	return TransactionResponse{
		ID:                  transaction.ID,
		Total:               transaction.Total,
		Status:              transaction.Status,
		CustomerName:        transaction.CustomerName,
		CustomerEmail:       transaction.CustomerEmail,
		CustomerPhone:       transaction.CustomerPhone,
		CustomerTableNumber: transaction.CustomerTableNumber,
		SnapToken:           transaction.SnapToken,
		SnapRedirectURL:     transaction.SnapRedirectURL,
		PaymentMethod:       transaction.PaymentMethod,
		Products:            products,
		CreatedAt:           transaction.CreatedAt,
		UpdatedAt:           transaction.UpdatedAt,
	}
}
