package models

import (
	"time"
)

type Transaction struct {
	ID                  string            `json:"id" gorm:"primaryKey"`
	Total               float64           `json:"total" gorm:"not null"`
	Status              string            `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, CANCELED
	CustomerName        string            `json:"customer_name" gorm:"not null"`
	CustomerEmail       string            `json:"customer_email"`
	CustomerPhone       string            `json:"customer_phone"`
	CustomerTableNumber string            `json:"customer_table_number"`
	SnapToken           *string           `json:"snap_token"`
	SnapRedirectURL     *string           `json:"snap_redirect_url"`
	PaymentMethod       *string           `json:"payment_method"`
	Items               []TransactionItem `json:"items,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "PENDING"
	TransactionPaid     TransactionStatus = "PAID"
	TransactionCanceled TransactionStatus = "CANCELED"
)

type TransactionItem struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	TransactionID string    `json:"transaction_id" gorm:"not null;index"`
	ProductID     string    `json:"product_id" gorm:"not null;index"`
	ProductName   string    `json:"product_name" gorm:"not null"` // snapshot at order time
	Price         float64   `json:"price" gorm:"not null"`        // snapshot at order time
	Quantity      int       `json:"quantity" gorm:"not null"`
	Product       Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
