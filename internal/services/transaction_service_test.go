package services

import (
	"fmt"
	"testing"

	"pos_backend/internal/models"
	"pos_backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Transaction{},
		&models.TransactionItem{},
	)
	require.NoError(t, err)

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Image:    "/images/" + name + ".jpg",
		Category: "coffee",
		Price:    price,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func newTransactionService(db *gorm.DB) TransactionService {
	return NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCreateTransactionComputesTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	p1 := seedProduct(t, db, "espresso", 10.5)
	p2 := seedProduct(t, db, "croissant", 5)

	resp, err := svc.CreateTransaction("Alice", "alice@example.com", "0812", "7", []RequestedItem{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 26.0, resp.Total)
	assert.Equal(t, string(models.TransactionPending), resp.Status)
	assert.Len(t, resp.Products, 2)
	assert.Nil(t, resp.SnapToken)
	assert.Nil(t, resp.PaymentMethod)
	assert.Regexp(t, `^TRX-[A-Za-z0-9]{4}-[A-Za-z0-9]{8}$`, resp.ID)
}

func TestCreateTransactionNoProductsFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.CreateTransaction("Bob", "bob@example.com", "0813", "3", []RequestedItem{
		{ProductID: uuid.NewString(), Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrNoProductsFound)

	// nothing may be persisted
	var headers, items int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&headers).Error)
	require.NoError(t, db.Model(&models.TransactionItem{}).Count(&items).Error)
	assert.Zero(t, headers)
	assert.Zero(t, items)
}

func TestCreateTransactionDropsUnknownProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	p1 := seedProduct(t, db, "latte", 4)

	resp, err := svc.CreateTransaction("Carol", "carol@example.com", "0814", "1", []RequestedItem{
		{ProductID: p1.ID, Quantity: 3},
		{ProductID: uuid.NewString(), Quantity: 5},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Products, 1)
	assert.Equal(t, 12.0, resp.Total)
	assert.Equal(t, p1.ID, resp.Products[0].ID)
}

func TestGetTransactionSnapshotIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	p := seedProduct(t, db, "mocha", 6)

	created, err := svc.CreateTransaction("Dan", "dan@example.com", "0815", "2", []RequestedItem{
		{ProductID: p.ID, Quantity: 2},
	})
	require.NoError(t, err)

	// raise the catalog price and rename after the order was placed
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{"price": 99.0, "name": "mega mocha"}).Error)

	got, err := svc.GetTransactionByID(created.ID)
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Equal(t, "mocha", got.Products[0].Name)
	assert.Equal(t, 6.0, got.Products[0].Price)
	assert.Equal(t, 12.0, got.Total)
}

func TestReformUsesCurrentImage(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	p := seedProduct(t, db, "tea", 3)

	created, err := svc.CreateTransaction("Eve", "eve@example.com", "0816", "4", []RequestedItem{
		{ProductID: p.ID, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p.ID).
		Update("image", "/images/new-tea.jpg").Error)

	got, err := svc.GetTransactionByID(created.ID)
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Equal(t, "/images/new-tea.jpg", got.Products[0].Image)
	// while name and price stay frozen at order time
	assert.Equal(t, "tea", got.Products[0].Name)
	assert.Equal(t, 3.0, got.Products[0].Price)
}

func TestGetTransactionNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.GetTransactionByID("TRX-none-missing0")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUpdateTransactionStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	p := seedProduct(t, db, "juice", 2)
	created, err := svc.CreateTransaction("Finn", "finn@example.com", "0817", "5", []RequestedItem{
		{ProductID: p.ID, Quantity: 4},
	})
	require.NoError(t, err)

	method := "cash"
	require.NoError(t, db.Model(&models.Transaction{}).Where("id = ?", created.ID).
		Update("payment_method", &method).Error)

	updated, err := svc.UpdateTransactionStatus(created.ID, string(models.TransactionPaid))
	require.NoError(t, err)

	assert.Equal(t, string(models.TransactionPaid), updated.Status)
	assert.Nil(t, updated.PaymentMethod)
	assert.Equal(t, created.Total, updated.Total)
	assert.Equal(t, "Finn", updated.CustomerName)
}

func TestUpdateTransactionStatusNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.UpdateTransactionStatus("TRX-none-missing0", string(models.TransactionPaid))
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	var headers int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&headers).Error)
	assert.Zero(t, headers)
}

func TestGetTransactionsStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newTransactionService(db)

	p := seedProduct(t, db, "soda", 1)

	first, err := svc.CreateTransaction("Gail", "gail@example.com", "0818", "6", []RequestedItem{
		{ProductID: p.ID, Quantity: 1},
	})
	require.NoError(t, err)

	second, err := svc.CreateTransaction("Hank", "hank@example.com", "0819", "8", []RequestedItem{
		{ProductID: p.ID, Quantity: 2},
	})
	require.NoError(t, err)

	_, err = svc.UpdateTransactionStatus(second.ID, string(models.TransactionPaid))
	require.NoError(t, err)

	pending, err := svc.GetTransactions(string(models.TransactionPending))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	all, err := svc.GetTransactions("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
