package model

import "time"

type ServiceHistory struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	Vin         string    `gorm:"type:varchar(17);not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
	ServiceType string    `gorm:"type:varchar(100);not null"`
	Notes       string    `gorm:"type:text"`
	EmployeeId  int       `gorm:"not null"`
}

func (ServiceHistory) TableName() string {
	return "service_history"
}
