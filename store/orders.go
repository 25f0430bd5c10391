// Package store holds the persistence layer. Handlers receive an OrderStore
// explicitly instead of reaching for a package-level DB handle.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cartloop/ecommerce-api/models"
)

// ErrOrderNotFound is returned when an order id does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the persistence contract the order handlers depend on.
type OrderStore interface {
	// ListByUser returns the orders owned by userID, products populated,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	// Get returns one order with products and the owning user populated.
	Get(ctx context.Context, id string) (*models.Order, error)
	// ListAll returns every order, same population and sort as ListByUser.
	ListAll(ctx context.Context) ([]models.Order, error)
	// UpdateStatus atomically sets the status of one order and returns the
	// post-update order, fully populated. No write happens when the id does
	// not resolve.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}

// OrderDB implements OrderStore on GORM/Postgres.
type OrderDB struct {
	db *gorm.DB
}

func NewOrderDB(db *gorm.DB) *OrderDB {
	return &OrderDB{db: db}
}

func (s *OrderDB) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Products").
		Preload("Products.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderDB) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Products").
		Preload("Products.Product").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderDB) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Products").
		Preload("Products.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderDB) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	// UPDATE ... RETURNING, so the status change and the existence check are
	// one statement. Relation population needs a second read either way.
	var updated models.Order
	res := s.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}
	return s.Get(ctx, id)
}
