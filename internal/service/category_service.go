package service

import (
	"context"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
)

// CategoryService wraps catalog-category CRUD.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*domain.Category, error)
	Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("Category not found")
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*domain.Category, error) {
	if req.Name == "" || req.Image == "" {
		return nil, apperror.BadRequest("Fill out all the fields")
	}
	category := &domain.Category{
		Name:  req.Name,
		Image: req.Image,
	}
	if err := s.repo.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*domain.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := repository.CategoryUpdate{}
	if req.Name != "" {
		update.Name = &req.Name
	}
	if req.Image != "" {
		update.Image = &req.Image
	}

	category, err := s.repo.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("Category not found")
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Category not found")
	}
	return nil
}
