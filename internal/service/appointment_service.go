package service

import (
	"context"
	"time"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/pkg/auth"
	"lucidgpt-be/internal/repository/specification"
	"lucidgpt-be/internal/repository/unitofwork"
)

type IAppointmentService interface {
	GetUpcoming(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetDashboard(ctx context.Context, principal *entity.Principal) ([]dto.AppointmentResponse, error)
}

type appointmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAppointmentService(uowFactory unitofwork.RepositoryFactory) IAppointmentService {
	return &appointmentService{uowFactory: uowFactory}
}

// GetUpcoming lists appointments from today forward, earliest first.
func (s *appointmentService) GetUpcoming(ctx context.Context) ([]dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	today := time.Now().Truncate(24 * time.Hour)
	appointments, err := uow.AppointmentRepository().FindAll(ctx,
		specification.OnOrAfter{Date: today},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrNotFound
	}

	return toAppointmentResponses(appointments), nil
}

// GetDashboard returns the full appointment book for employees. Customers
// get an empty list rather than an error, matching the dashboard contract.
func (s *appointmentService) GetDashboard(ctx context.Context, principal *entity.Principal) ([]dto.AppointmentResponse, error) {
	if principal.Role != auth.RoleEmployee {
		return []dto.AppointmentResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	appointments, err := uow.AppointmentRepository().FindAll(ctx, specification.OrderBy{Field: "date"})
	if err != nil {
		return nil, err
	}

	return toAppointmentResponses(appointments), nil
}

func toAppointmentResponses(appointments []*entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = dto.AppointmentResponse{
			Id:          a.Id,
			Vin:         a.Vin,
			Date:        a.Date,
			Time:        a.Time,
			ServiceType: a.ServiceType,
			Status:      a.Status,
			EmployeeId:  a.EmployeeId,
		}
	}
	return responses
}
