package mappers

import "taproom/internal/models"

func CustomerToCustomerDTO(customer models.Customer) models.CustomerDTO {
	return models.CustomerDTO{
		ID:          customer.ID,
		Version:     customer.Version,
		Name:        customer.Name,
		CreatedDate: timePtr(customer.CreatedDate),
		UpdateDate:  timePtr(customer.UpdateDate),
	}
}

func CustomerDTOToCustomer(dto models.CustomerDTO) models.Customer {
	return models.Customer{Name: dto.Name}
}

func CustomersToCustomerDTOs(customers []models.Customer) []models.CustomerDTO {
	out := make([]models.CustomerDTO, 0, len(customers))
	for _, customer := range customers {
		out = append(out, CustomerToCustomerDTO(customer))
	}
	return out
}
