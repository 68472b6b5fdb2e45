package service

import (
	"context"
	"time"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
)

// OrderService wraps order lifecycle operations.
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*domain.Order, error)
	Update(ctx context.Context, id string, req *dto.UpdateOrderRequest) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *orderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUserID(ctx, oid)
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("Order not found")
	}
	return order, nil
}

func (s *orderService) Create(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*domain.Order, error) {
	userOID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	items, err := toOrderItems(req.OrderItems)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:     userOID,
		CreatedAt:  time.Now(),
		Shipment:   req.Shipment,
		PriceSum:   req.PriceSum,
		OrderItems: items,
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id string, req *dto.UpdateOrderRequest) (*domain.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := repository.OrderUpdate{
		Shipment: req.Shipment,
		PriceSum: req.PriceSum,
	}
	if req.OrderItems != nil {
		items, err := toOrderItems(*req.OrderItems)
		if err != nil {
			return nil, err
		}
		update.OrderItems = &items
	}

	order, err := s.repo.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("Order not found")
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Order not found")
	}
	return nil
}

func toOrderItems(reqs []dto.OrderItemRequest) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(reqs))
	for _, item := range reqs {
		if item.Quantity <= 0 {
			return nil, apperror.BadRequest("Item quantity must be positive")
		}
		productOID, err := parseObjectID(item.ProductID)
		if err != nil {
			return nil, apperror.BadRequest("Invalid product id")
		}
		items = append(items, domain.OrderItem{
			Quantity:  item.Quantity,
			ProductID: productOID,
		})
	}
	return items, nil
}
