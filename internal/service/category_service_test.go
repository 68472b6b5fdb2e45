package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
)

type mockCategoryRepo struct {
	categories map[primitive.ObjectID]*domain.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[primitive.ObjectID]*domain.Category)}
}

func (m *mockCategoryRepo) Insert(_ context.Context, category *domain.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]domain.Category, error) {
	all := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		all = append(all, *category)
	}
	return all, nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (m *mockCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, category := range m.categories {
		if category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepo) UpdateByID(_ context.Context, id primitive.ObjectID, update repository.CategoryUpdate) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Image != nil {
		category.Image = *update.Image
	}
	copied := *category
	return &copied, nil
}

func (m *mockCategoryRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.categories[id]; !ok {
		return false, nil
	}
	delete(m.categories, id)
	return true, nil
}

func TestCategoryCreateRejectsMissingFields(t *testing.T) {
	repo := newMockCategoryRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Shoes"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
	assert.Empty(t, repo.categories)
}

func TestCategoryCreateGetRoundTrip(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepo())

	created, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:  "Shoes",
		Image: "https://example.com/shoes.png",
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	fetched, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCategoryUpdatePartialFields(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepo())

	created, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:  "Shoes",
		Image: "https://example.com/shoes.png",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(), &dto.UpdateCategoryRequest{Name: "Sneakers"})
	require.NoError(t, err)
	assert.Equal(t, "Sneakers", updated.Name)
	assert.Equal(t, created.Image, updated.Image)
}

func TestCategoryDeleteThenGetNotFound(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepo())

	created, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:  "Shoes",
		Image: "https://example.com/shoes.png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))

	_, err = svc.Get(context.Background(), created.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}

func TestCategoryDeleteUnknownID(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepo())

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}
