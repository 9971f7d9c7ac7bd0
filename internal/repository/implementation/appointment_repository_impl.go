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

type AppointmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppointmentMapper
}

func NewAppointmentRepository(db *gorm.DB) contract.AppointmentRepository {
	return &AppointmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppointmentMapper(),
	}
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appointment *entity.Appointment) error {
	modelAppointment := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Create(modelAppointment).Error; err != nil {
		return err
	}
	*appointment = *r.mapper.ToEntity(modelAppointment)
	return nil
}

func (r *AppointmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	var modelAppointment model.Appointment
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelAppointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelAppointment), nil
}

func (r *AppointmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	var modelAppointments []*model.Appointment
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAppointments).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAppointments), nil
}
