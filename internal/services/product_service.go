package services

import (
	"errors"

	"pos_backend/internal/models"
	"pos_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	CreateProduct(name, image, category, description string, price float64) (*models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	DeleteProduct(id string) (*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(name, image, category, description string, price float64) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Image:       image,
		Category:    category,
		Description: description,
		Price:       price,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID returns nil without an error when no product matches, so
// the public endpoint can respond 200 with a null payload.
func (s *productService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// DeleteProduct removes a product and returns the deleted record. A
// malformed id cannot reference anything, so it reports not-found rather
// than a storage error.
func (s *productService) DeleteProduct(id string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}
	return product, nil
}
