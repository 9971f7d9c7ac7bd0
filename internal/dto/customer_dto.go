package dto

import "time"

type CustomerResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type VehicleResponse struct {
	Vin         string    `json:"vin"`
	ClientId    int       `json:"client_id"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Mileage     int       `json:"mileage"`
	WarrantyExp time.Time `json:"warranty_exp"`
	ServicePlan string    `json:"service_plan"`
}

type ServiceRecordResponse struct {
	Id          int       `json:"id"`
	Vin         string    `json:"vin"`
	Date        time.Time `json:"date"`
	ServiceType string    `json:"service_type"`
	Notes       string    `json:"notes"`
	EmployeeId  int       `json:"employee_id"`
}

type CustomerDetailResponse struct {
	Customer       CustomerResponse        `json:"customer"`
	Vehicles       []VehicleResponse       `json:"vehicles"`
	ServiceHistory []ServiceRecordResponse `json:"service_history"`
	Appointments   []AppointmentResponse   `json:"appointments"`
}
