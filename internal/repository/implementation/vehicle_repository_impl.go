package implementation

import (
	"context"
	"errors"

	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/mapper"
	"lucidgpt-be/internal/model"
	"lucidgpt-be/internal/repository/contract"
	"lucidgpt-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VehicleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VehicleMapper
}

func NewVehicleRepository(db *gorm.DB) contract.VehicleRepository {
	return &VehicleRepositoryImpl{
		db:     db,
		mapper: mapper.NewVehicleMapper(),
	}
}

func (r *VehicleRepositoryImpl) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	modelVehicle := r.mapper.ToModel(vehicle)
	if err := r.db.WithContext(ctx).Create(modelVehicle).Error; err != nil {
		return err
	}
	*vehicle = *r.mapper.ToEntity(modelVehicle)
	return nil
}

func (r *VehicleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vehicle, error) {
	var modelVehicle model.Vehicle
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelVehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelVehicle), nil
}

func (r *VehicleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error) {
	var modelVehicles []*model.Vehicle
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelVehicles).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelVehicles), nil
}

type ServiceHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VehicleMapper
}

func NewServiceHistoryRepository(db *gorm.DB) contract.ServiceHistoryRepository {
	return &ServiceHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewVehicleMapper(),
	}
}

func (r *ServiceHistoryRepositoryImpl) Create(ctx context.Context, record *entity.ServiceRecord) error {
	modelRecord := r.mapper.ServiceRecordToModel(record)
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ServiceRecordToEntity(modelRecord)
	return nil
}

func (r *ServiceHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRecord, error) {
	var modelRecords []*model.ServiceHistory
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRecords).Error; err != nil {
		return nil, err
	}

	return r.mapper.ServiceRecordsToEntities(modelRecords), nil
}
