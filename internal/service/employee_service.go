package service

import (
	"context"
	"time"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/repository/specification"
	"lucidgpt-be/internal/repository/unitofwork"
)

type IEmployeeService interface {
	GetEmployees(ctx context.Context) ([]dto.EmployeeResponse, error)
	GetEmployeeDetail(ctx context.Context, id int) (*dto.EmployeeDetailResponse, error)
}

type employeeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEmployeeService(uowFactory unitofwork.RepositoryFactory) IEmployeeService {
	return &employeeService{uowFactory: uowFactory}
}

func (s *employeeService) GetEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employees, err := uow.EmployeeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNotFound
	}

	responses := make([]dto.EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = dto.EmployeeResponse{
			Id:            e.Id,
			Name:          e.Name,
			Email:         e.Email,
			Phone:         e.Phone,
			ProfilePicURL: e.ProfilePicURL,
			IsSuperuser:   e.IsSuperuser,
		}
	}
	return responses, nil
}

// GetEmployeeDetail returns one employee together with the upcoming
// appointments assigned to them, earliest first.
func (s *employeeService) GetEmployeeDetail(ctx context.Context, id int) (*dto.EmployeeDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	today := time.Now().Truncate(24 * time.Hour)
	appointments, err := uow.AppointmentRepository().FindAll(ctx,
		specification.AssignedToEmployee{EmployeeID: id},
		specification.OnOrAfter{Date: today},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeDetailResponse{
		Employee: dto.EmployeeResponse{
			Id:            employee.Id,
			Name:          employee.Name,
			Email:         employee.Email,
			Phone:         employee.Phone,
			ProfilePicURL: employee.ProfilePicURL,
			IsSuperuser:   employee.IsSuperuser,
		},
		Appointments: toAppointmentResponses(appointments),
	}, nil
}
