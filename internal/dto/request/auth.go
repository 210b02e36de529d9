package request

type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	ContactNo string `json:"contact_no" validate:"required,min=7,max=15"`
	Barangay  string `json:"barangay" validate:"required"`
	Sitio     string `json:"sitio" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
