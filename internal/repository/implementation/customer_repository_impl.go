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

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	modelClient := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Create(modelClient).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(modelClient)
	return nil
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var modelClient model.Client
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelClient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelClient), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	var modelClients []*model.Client
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelClients).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelClients), nil
}

func (r *CustomerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Client{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
