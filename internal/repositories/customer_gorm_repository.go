package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taproom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	base
}

func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{base: base{db: db}}
}

func (r *GORMCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.conn(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err, fmt.Sprintf("failed to get customer by ID %s", id))
	}
	return &customer, nil
}

func (r *GORMCustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.conn(ctx).Order("name asc").Order("id asc").Find(&customers).Error; err != nil {
		return nil, storeError(err, "failed to get all customers")
	}
	return customers, nil
}

func (r *GORMCustomerRepository) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
		customer.Version = 0
		if err := r.conn(ctx).Create(customer).Error; err != nil {
			return nil, storeError(err, "failed to create customer")
		}
		return customer, nil
	}

	now := time.Now()
	res := r.conn(ctx).Model(&models.Customer{}).
		Where("id = ? AND version = ?", customer.ID, customer.Version).
		Updates(map[string]any{
			"name":        customer.Name,
			"version":     customer.Version + 1,
			"update_date": now,
		})
	if res.Error != nil {
		return nil, storeError(res.Error, fmt.Sprintf("failed to update customer %s", customer.ID))
	}
	if res.RowsAffected == 0 {
		return nil, conflictError(fmt.Sprintf("customer %s version %d is stale", customer.ID, customer.Version))
	}
	customer.Version++
	customer.UpdateDate = now
	return customer, nil
}

func (r *GORMCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, storeError(err, fmt.Sprintf("failed to check customer %s", id))
	}
	return count > 0, nil
}

func (r *GORMCustomerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.conn(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return false, storeError(res.Error, fmt.Sprintf("failed to delete customer %s", id))
	}
	return res.RowsAffected > 0, nil
}
