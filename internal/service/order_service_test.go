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

type mockOrderRepo struct {
	orders map[primitive.ObjectID]*domain.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (m *mockOrderRepo) Insert(_ context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	all := make([]domain.Order, 0, len(m.orders))
	for _, order := range m.orders {
		all = append(all, *order)
	}
	return all, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	matched := make([]domain.Order, 0)
	for _, order := range m.orders {
		if order.UserID == userID {
			matched = append(matched, *order)
		}
	}
	return matched, nil
}

func (m *mockOrderRepo) UpdateByID(_ context.Context, id primitive.ObjectID, update repository.OrderUpdate) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	if update.Shipment != nil {
		order.Shipment = *update.Shipment
	}
	if update.PriceSum != nil {
		order.PriceSum = *update.PriceSum
	}
	if update.OrderItems != nil {
		order.OrderItems = *update.OrderItems
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}

func createOrderRequest() *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		Shipment: "Main Street 1, Helsinki",
		PriceSum: 159.80,
		OrderItems: []dto.OrderItemRequest{
			{Quantity: 2, ProductID: primitive.NewObjectID().Hex()},
		},
	}
}

func TestOrderCreateStampsUserAndTime(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())
	userID := primitive.NewObjectID()

	order, err := svc.Create(context.Background(), userID.Hex(), createOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
}

func TestOrderCreateRejectsZeroQuantity(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo)

	req := createOrderRequest()
	req.OrderItems[0].Quantity = 0
	_, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), req)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
	assert.Empty(t, repo.orders)
}

func TestOrderCreateRejectsMalformedProductID(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())

	req := createOrderRequest()
	req.OrderItems[0].ProductID = "nope"
	_, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), req)
	require.Error(t, err)
	assert.Equal(t, "Invalid product id", apperror.From(err).Message)
}

func TestOrderListByUserFiltersOwner(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), alice.Hex(), createOrderRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob.Hex(), createOrderRequest())
	require.NoError(t, err)

	orders, err := svc.ListByUser(context.Background(), alice.Hex())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, alice, orders[0].UserID)
}

func TestOrderUpdateUnknownID(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())

	shipment := "New Address 2"
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &dto.UpdateOrderRequest{Shipment: &shipment})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}

func TestOrderDeleteThenGetNotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())

	order, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), createOrderRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), order.ID.Hex()))

	_, err = svc.Get(context.Background(), order.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}
