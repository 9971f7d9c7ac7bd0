package entity

type Customer struct {
	Id           int
	Name         string
	Email        string
	Phone        string
	PasswordHash string
}
