package mapper

import (
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/model"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Client) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:           c.Id,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.Password,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Client {
	if c == nil {
		return nil
	}
	return &model.Client{
		Id:       c.Id,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Password: c.PasswordHash,
	}
}

func (m *CustomerMapper) ToEntities(clients []*model.Client) []*entity.Customer {
	entities := make([]*entity.Customer, len(clients))
	for i, c := range clients {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
