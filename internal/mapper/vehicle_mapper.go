package mapper

import (
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/model"
)

type VehicleMapper struct{}

func NewVehicleMapper() *VehicleMapper {
	return &VehicleMapper{}
}

func (m *VehicleMapper) ToEntity(v *model.Vehicle) *entity.Vehicle {
	if v == nil {
		return nil
	}
	return &entity.Vehicle{
		Vin:         v.Vin,
		ClientId:    v.ClientId,
		Model:       v.Model,
		Year:        v.Year,
		Mileage:     v.Mileage,
		WarrantyExp: v.WarrantyExp,
		ServicePlan: v.ServicePlan,
	}
}

func (m *VehicleMapper) ToModel(v *entity.Vehicle) *model.Vehicle {
	if v == nil {
		return nil
	}
	return &model.Vehicle{
		Vin:         v.Vin,
		ClientId:    v.ClientId,
		Model:       v.Model,
		Year:        v.Year,
		Mileage:     v.Mileage,
		WarrantyExp: v.WarrantyExp,
		ServicePlan: v.ServicePlan,
	}
}

func (m *VehicleMapper) ToEntities(vehicles []*model.Vehicle) []*entity.Vehicle {
	entities := make([]*entity.Vehicle, len(vehicles))
	for i, v := range vehicles {
		entities[i] = m.ToEntity(v)
	}
	return entities
}

func (m *VehicleMapper) ServiceRecordToEntity(s *model.ServiceHistory) *entity.ServiceRecord {
	if s == nil {
		return nil
	}
	return &entity.ServiceRecord{
		Id:          s.Id,
		Vin:         s.Vin,
		Date:        s.Date,
		ServiceType: s.ServiceType,
		Notes:       s.Notes,
		EmployeeId:  s.EmployeeId,
	}
}

func (m *VehicleMapper) ServiceRecordToModel(s *entity.ServiceRecord) *model.ServiceHistory {
	if s == nil {
		return nil
	}
	return &model.ServiceHistory{
		Id:          s.Id,
		Vin:         s.Vin,
		Date:        s.Date,
		ServiceType: s.ServiceType,
		Notes:       s.Notes,
		EmployeeId:  s.EmployeeId,
	}
}

func (m *VehicleMapper) ServiceRecordsToEntities(records []*model.ServiceHistory) []*entity.ServiceRecord {
	entities := make([]*entity.ServiceRecord, len(records))
	for i, s := range records {
		entities[i] = m.ServiceRecordToEntity(s)
	}
	return entities
}
