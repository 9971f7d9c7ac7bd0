package contract

import (
	"context"

	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/repository/specification"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vehicle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error)
}

type ServiceHistoryRepository interface {
	Create(ctx context.Context, record *entity.ServiceRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRecord, error)
}
