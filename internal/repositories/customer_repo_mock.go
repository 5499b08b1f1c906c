package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"taproom/internal/models"

	"github.com/google/uuid"
)

// MockCustomerRepository is an in-memory implementation of CustomerRepository.
type MockCustomerRepository struct {
	customers map[uuid.UUID]models.Customer
	mu        sync.RWMutex
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[uuid.UUID]models.Customer),
	}
}

func (r *MockCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *MockCustomerRepository) FindAll(_ context.Context) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Name != customers[j].Name {
			return customers[i].Name < customers[j].Name
		}
		return customers[i].ID.String() < customers[j].ID.String()
	})
	return customers, nil
}

func (r *MockCustomerRepository) Save(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
		customer.Version = 0
		customer.CreatedDate = now
		customer.UpdateDate = now
		r.customers[customer.ID] = *customer
		return customer, nil
	}

	stored, ok := r.customers[customer.ID]
	if !ok || stored.Version != customer.Version {
		return nil, conflictError("customer " + customer.ID.String() + " is stale")
	}
	customer.Version++
	customer.CreatedDate = stored.CreatedDate
	customer.UpdateDate = now
	r.customers[customer.ID] = *customer
	return customer, nil
}

func (r *MockCustomerRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.customers[id]
	return ok, nil
}

func (r *MockCustomerRepository) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return false, nil
	}
	delete(r.customers, id)
	return true, nil
}
