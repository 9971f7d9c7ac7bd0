package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// OwnedByClient scopes vehicles to one customer
type OwnedByClient struct {
	ClientID int
}

func (s OwnedByClient) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id = ?", s.ClientID)
}

// AssignedToEmployee scopes service records or appointments to one employee
type AssignedToEmployee struct {
	EmployeeID int
}

func (s AssignedToEmployee) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_id = ?", s.EmployeeID)
}

// OnOrAfter keeps rows whose date column is not in the past
type OnOrAfter struct {
	Date time.Time
}

func (s OnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.Date)
}

// ForVins filters by a set of vehicle VINs
type ForVins struct {
	Vins []string
}

func (s ForVins) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("vin IN ?", s.Vins)
}
