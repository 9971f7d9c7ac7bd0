package service

import (
	"context"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/repository/specification"
	"lucidgpt-be/internal/repository/unitofwork"
)

type ICustomerService interface {
	GetCustomers(ctx context.Context) ([]dto.CustomerResponse, error)
	GetCustomerDetail(ctx context.Context, id int) (*dto.CustomerDetailResponse, error)
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCustomerService(uowFactory unitofwork.RepositoryFactory) ICustomerService {
	return &customerService{uowFactory: uowFactory}
}

func (s *customerService) GetCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrNotFound
	}

	responses := make([]dto.CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = dto.CustomerResponse{
			Id:    c.Id,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		}
	}
	return responses, nil
}

// GetCustomerDetail returns one customer with their vehicles, the service
// history of those vehicles, and the appointments booked for them.
func (s *customerService) GetCustomerDetail(ctx context.Context, id int) (*dto.CustomerDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	vehicles, err := uow.VehicleRepository().FindAll(ctx, specification.OwnedByClient{ClientID: id})
	if err != nil {
		return nil, err
	}

	detail := &dto.CustomerDetailResponse{
		Customer: dto.CustomerResponse{
			Id:    customer.Id,
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Vehicles:       make([]dto.VehicleResponse, len(vehicles)),
		ServiceHistory: []dto.ServiceRecordResponse{},
		Appointments:   []dto.AppointmentResponse{},
	}

	vins := make([]string, len(vehicles))
	for i, v := range vehicles {
		vins[i] = v.Vin
		detail.Vehicles[i] = dto.VehicleResponse{
			Vin:         v.Vin,
			ClientId:    v.ClientId,
			Model:       v.Model,
			Year:        v.Year,
			Mileage:     v.Mileage,
			WarrantyExp: v.WarrantyExp,
			ServicePlan: v.ServicePlan,
		}
	}

	if len(vins) > 0 {
		records, err := uow.ServiceHistoryRepository().FindAll(ctx,
			specification.ForVins{Vins: vins},
			specification.OrderBy{Field: "date"},
		)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			detail.ServiceHistory = append(detail.ServiceHistory, dto.ServiceRecordResponse{
				Id:          r.Id,
				Vin:         r.Vin,
				Date:        r.Date,
				ServiceType: r.ServiceType,
				Notes:       r.Notes,
				EmployeeId:  r.EmployeeId,
			})
		}

		appointments, err := uow.AppointmentRepository().FindAll(ctx,
			specification.ForVins{Vins: vins},
			specification.OrderBy{Field: "date"},
		)
		if err != nil {
			return nil, err
		}
		for _, a := range appointments {
			detail.Appointments = append(detail.Appointments, dto.AppointmentResponse{
				Id:          a.Id,
				Vin:         a.Vin,
				Date:        a.Date,
				Time:        a.Time,
				ServiceType: a.ServiceType,
				Status:      a.Status,
				EmployeeId:  a.EmployeeId,
			})
		}
	}

	return detail, nil
}
