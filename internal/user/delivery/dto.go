package delivery

type UserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (dto UserDTO) payload() map[string]string {
	return map[string]string{
		"name":  dto.Name,
		"email": dto.Email,
		"role":  dto.Role,
	}
}
