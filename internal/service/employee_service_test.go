package service

import (
	"context"
	"testing"
	"time"

	"lucidgpt-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeFixture() (IEmployeeService, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{
		customers:    &fakeCustomerRepo{},
		employees:    &fakeEmployeeRepo{},
		appointments: &fakeAppointmentRepo{},
	}
	return NewEmployeeService(&fakeFactory{uow: uow}), uow
}

func TestGetEmployeeDetail(t *testing.T) {
	svc, uow := newEmployeeFixture()

	uow.employees.employees = append(uow.employees.employees, &entity.Employee{
		Id:    3,
		Name:  "Sam Technician",
		Email: "sam@lucidmotors.com",
	})

	tomorrow := time.Now().AddDate(0, 0, 1)
	lastWeek := time.Now().AddDate(0, 0, -7)
	uow.appointments.appointments = append(uow.appointments.appointments,
		&entity.Appointment{Id: 1, Vin: "VIN-A", Date: tomorrow, EmployeeId: 3},
		&entity.Appointment{Id: 2, Vin: "VIN-B", Date: tomorrow, EmployeeId: 5},
		&entity.Appointment{Id: 3, Vin: "VIN-C", Date: lastWeek, EmployeeId: 3},
	)

	res, err := svc.GetEmployeeDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "sam@lucidmotors.com", res.Employee.Email)

	// Only this employee's upcoming appointments come back; another
	// employee's bookings and past visits are filtered out.
	require.Len(t, res.Appointments, 1)
	assert.Equal(t, 1, res.Appointments[0].Id)
}

func TestGetEmployeeDetailNotFound(t *testing.T) {
	svc, _ := newEmployeeFixture()

	_, err := svc.GetEmployeeDetail(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
