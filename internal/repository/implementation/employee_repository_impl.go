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

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmployeeMapper
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	modelEmployee := r.mapper.ToModel(employee)
	if err := r.db.WithContext(ctx).Create(modelEmployee).Error; err != nil {
		return err
	}
	*employee = *r.mapper.ToEntity(modelEmployee)
	return nil
}

func (r *EmployeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	var modelEmployee model.Employee
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelEmployee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelEmployee), nil
}

func (r *EmployeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	var modelEmployees []*model.Employee
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelEmployees).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelEmployees), nil
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Employee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
