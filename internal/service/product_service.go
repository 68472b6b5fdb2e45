package service

import (
	"context"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
)

// ProductService wraps catalog-product CRUD and the filtered listing.
type ProductService interface {
	List(ctx context.Context, query *dto.ListProductsQuery) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error)
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) ProductService {
	return &productService{products: products, categories: categories}
}

func (s *productService) List(ctx context.Context, query *dto.ListProductsQuery) ([]domain.Product, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	return s.products.Find(ctx, repository.ProductFilter{
		SearchQuery: query.SearchQuery,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		Limit:       limit,
		Offset:      offset,
	})
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("Product not found")
	}
	return product, nil
}

// Create resolves the category by name; an unknown category rejects the
// product before any write.
func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error) {
	if !req.Size.Valid() {
		return nil, apperror.BadRequest("Invalid size")
	}
	if req.Price < 0 {
		return nil, apperror.BadRequest("Price must be non-negative")
	}

	category, err := s.categories.FindByName(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.BadRequest("Category not found")
	}

	product := &domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  category.ID,
		Image:       req.Image,
		Size:        req.Size,
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	product.Category = category
	return product, nil
}

func (s *productService) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if req.Size != nil && !req.Size.Valid() {
		return nil, apperror.BadRequest("Invalid size")
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, apperror.BadRequest("Price must be non-negative")
	}

	product, err := s.products.UpdateByID(ctx, oid, repository.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Size:        req.Size,
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("Product not found")
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := s.products.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Product not found")
	}
	return nil
}
