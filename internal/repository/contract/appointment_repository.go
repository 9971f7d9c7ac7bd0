package contract

import (
	"context"

	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/repository/specification"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error)
}
