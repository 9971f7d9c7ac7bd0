package dto

import "time"

type AppointmentResponse struct {
	Id          int       `json:"id"`
	Vin         string    `json:"vin"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	ServiceType string    `json:"service_type"`
	Status      string    `json:"status"`
	EmployeeId  int       `json:"employee_id"`
}
