package model

type Employee struct {
	Id            int    `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255);index"`
	Email         string `gorm:"type:varchar(255);uniqueIndex"`
	Phone         string `gorm:"type:varchar(50);uniqueIndex"`
	ProfilePicURL string `gorm:"type:text"`
	Password      string `gorm:"type:varchar(255);not null"`
	IsSuperuser   bool   `gorm:"default:false"`
}

func (Employee) TableName() string {
	return "employees"
}
