package dto

type EmployeeResponse struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
	IsSuperuser   bool   `json:"is_superuser"`
}

type EmployeeDetailResponse struct {
	Employee     EmployeeResponse      `json:"employee"`
	Appointments []AppointmentResponse `json:"appointments"`
}
