package repository

import (
	"pos_backend/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	CreateWithItems(transaction *models.Transaction, items []models.TransactionItem) error
	GetByID(id string) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetByStatus(status string) ([]models.Transaction, error)
	UpdateStatus(id, status string) (*models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateWithItems persists the order header and its line items in a single
// database transaction. Either both land or neither does, so a header is
// never readable without its items.
func (r *transactionRepository) CreateWithItems(transaction *models.Transaction, items []models.TransactionItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(transaction).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].TransactionID = transaction.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *transactionRepository) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Preload("Items.Product").First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Preload("Items.Product").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) GetByStatus(status string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Preload("Items.Product").Where("status = ?", status).Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

// UpdateStatus overwrites the status and resets the payment method. The
// returned header carries no items.
func (r *transactionRepository) UpdateStatus(id, status string) (*models.Transaction, error) {
	result := r.db.Model(&models.Transaction{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         status,
		"payment_method": nil,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var transaction models.Transaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}
