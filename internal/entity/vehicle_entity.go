package entity

import "time"

type Vehicle struct {
	Vin         string
	ClientId    int
	Model       string
	Year        int
	Mileage     int
	WarrantyExp time.Time
	ServicePlan string
}

type ServiceRecord struct {
	Id          int
	Vin         string
	Date        time.Time
	ServiceType string
	Notes       string
	EmployeeId  int
}
