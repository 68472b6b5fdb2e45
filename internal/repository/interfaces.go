package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
)

// Repositories return (nil, nil) when a document does not exist; services
// translate that into a NotFound failure. Any non-nil error is a store
// failure and surfaces as InternalServerError.

// UserProfileUpdate is a partial-field patch; nil pointers leave the
// stored value untouched.
type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	FindAllListings(ctx context.Context) ([]domain.UserListing, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update UserProfileUpdate) (*domain.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (*domain.User, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.UserStatus) (*domain.User, error)
	// SetPassword stores a new hash and clears any pending reset token.
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiresAt time.Time) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	// NextNumericID mints the next human-readable user id from the
	// counters collection.
	NextNumericID(ctx context.Context) (int64, error)
}

type CategoryUpdate struct {
	Name  *string
	Image *string
}

type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) error
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update CategoryUpdate) (*domain.Category, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ProductFilter composes the listing query: case-insensitive substring name
// search, inclusive price range, ascending price sort, limit/offset paging.
type ProductFilter struct {
	SearchQuery string
	MinPrice    float64
	MaxPrice    float64
	Limit       int64
	Offset      int64
}

type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	Image       *string
	Size        *domain.Size
}

type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) error
	// Find returns products sorted by ascending price with the owning
	// category denormalized onto each row.
	Find(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update ProductUpdate) (*domain.Product, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type OrderUpdate struct {
	Shipment   *string
	PriceSum   *float64
	OrderItems *[]domain.OrderItem
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update OrderUpdate) (*domain.Order, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
