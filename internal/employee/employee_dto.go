package employee

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=6"`
	Role         string  `json:"role" binding:"required,oneof=Employee Admin"`
	Dob          *string `json:"dob"`
	Address      *string `json:"address"`
	Mobile       *string `json:"mobile"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Role     string  `json:"role" binding:"required,oneof=Employee Admin"`
	IsActive *bool   `json:"is_active"`
	Dob      *string `json:"dob"`
	Address  *string `json:"address"`
	Mobile   *string `json:"mobile"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	IsActive     bool    `json:"is_active"`
	Dob          *string `json:"dob,omitempty"`
	Address      *string `json:"address,omitempty"`
	Mobile       *string `json:"mobile,omitempty"`
}
