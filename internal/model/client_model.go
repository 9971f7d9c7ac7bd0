package model

type Client struct {
	Id       int    `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone    string `gorm:"type:varchar(50);not null"`
	Password string `gorm:"type:varchar(255);not null"`

	Vehicles []Vehicle `gorm:"foreignKey:ClientId"`
}

func (Client) TableName() string {
	return "clients"
}
