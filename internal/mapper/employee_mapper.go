package mapper

import (
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/model"
)

type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:            e.Id,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		ProfilePicURL: e.ProfilePicURL,
		PasswordHash:  e.Password,
		IsSuperuser:   e.IsSuperuser,
	}
}

func (m *EmployeeMapper) ToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	return &model.Employee{
		Id:            e.Id,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		ProfilePicURL: e.ProfilePicURL,
		Password:      e.PasswordHash,
		IsSuperuser:   e.IsSuperuser,
	}
}

func (m *EmployeeMapper) ToEntities(employees []*model.Employee) []*entity.Employee {
	entities := make([]*entity.Employee, len(employees))
	for i, e := range employees {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
