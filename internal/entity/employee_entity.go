package entity

type Employee struct {
	Id            int
	Name          string
	Email         string
	Phone         string
	ProfilePicURL string
	PasswordHash  string
	IsSuperuser   bool
}
