package model

import "time"

type Appointment struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	Vin         string    `gorm:"type:varchar(17);not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
	Time        string    `gorm:"type:varchar(20);not null"`
	ServiceType string    `gorm:"type:varchar(100);not null"`
	Status      string    `gorm:"type:varchar(50);not null"`
	EmployeeId  int       `gorm:"not null"`
}

func (Appointment) TableName() string {
	return "appointments"
}
