package services

import (
	"context"
	"strings"

	"taproom/internal/mappers"
	"taproom/internal/models"
	"taproom/internal/repositories"

	"github.com/google/uuid"
)

// CustomerService handles business logic related to customers. Absence is
// reported the same way as in BeerService.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.CustomerDTO, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.CustomersToCustomerDTOs(customers), nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil || customer == nil {
		return nil, err
	}
	dto := mappers.CustomerToCustomerDTO(*customer)
	return &dto, nil
}

func (s *CustomerService) SaveNewCustomer(ctx context.Context, customer models.CustomerDTO) (*models.CustomerDTO, error) {
	entity := mappers.CustomerDTOToCustomer(customer)
	return s.save(ctx, &entity)
}

func (s *CustomerService) UpdateCustomerByID(ctx context.Context, id uuid.UUID, customer models.CustomerDTO) (*models.CustomerDTO, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil || found == nil {
		return nil, err
	}
	found.Name = customer.Name
	return s.save(ctx, found)
}

func (s *CustomerService) PatchCustomerByID(ctx context.Context, id uuid.UUID, customer models.CustomerDTO) (*models.CustomerDTO, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil || found == nil {
		return nil, err
	}
	if strings.TrimSpace(customer.Name) != "" {
		found.Name = customer.Name
	}
	return s.save(ctx, found)
}

func (s *CustomerService) DeleteCustomerByID(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil || !exists {
		return false, err
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *CustomerService) save(ctx context.Context, customer *models.Customer) (*models.CustomerDTO, error) {
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, err
	}
	dto := mappers.CustomerToCustomerDTO(*saved)
	return &dto, nil
}
