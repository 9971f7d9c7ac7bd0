package entity

import "time"

type Appointment struct {
	Id          int
	Vin         string
	Date        time.Time
	Time        string
	ServiceType string
	Status      string
	EmployeeId  int
}
