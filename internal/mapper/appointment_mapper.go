package mapper

import (
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	return &entity.Appointment{
		Id:          a.Id,
		Vin:         a.Vin,
		Date:        a.Date,
		Time:        a.Time,
		ServiceType: a.ServiceType,
		Status:      a.Status,
		EmployeeId:  a.EmployeeId,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:          a.Id,
		Vin:         a.Vin,
		Date:        a.Date,
		Time:        a.Time,
		ServiceType: a.ServiceType,
		Status:      a.Status,
		EmployeeId:  a.EmployeeId,
	}
}

func (m *AppointmentMapper) ToEntities(appointments []*model.Appointment) []*entity.Appointment {
	entities := make([]*entity.Appointment, len(appointments))
	for i, a := range appointments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
