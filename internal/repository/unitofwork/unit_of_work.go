package unitofwork

import (
	"context"

	"lucidgpt-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() contract.CustomerRepository
	EmployeeRepository() contract.EmployeeRepository
	VehicleRepository() contract.VehicleRepository
	ServiceHistoryRepository() contract.ServiceHistoryRepository
	AppointmentRepository() contract.AppointmentRepository
}
