package model

import "time"

type Vehicle struct {
	Vin         string    `gorm:"type:varchar(17);primaryKey"`
	ClientId    int       `gorm:"not null;index"`
	Model       string    `gorm:"type:varchar(100);not null"`
	Year        int       `gorm:"not null"`
	Mileage     int       `gorm:"not null"`
	WarrantyExp time.Time `gorm:"type:date;not null"`
	ServicePlan string    `gorm:"type:varchar(100);not null"`

	ServiceRecords []ServiceHistory `gorm:"foreignKey:Vin;references:Vin"`
	Appointments   []Appointment    `gorm:"foreignKey:Vin;references:Vin"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
