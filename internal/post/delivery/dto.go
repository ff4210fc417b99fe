package delivery

type PostDTO struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	UserUUID string `json:"userUuid"`
}

func (dto PostDTO) payload() map[string]string {
	return map[string]string{
		"title": dto.Title,
		"body":  dto.Body,
	}
}
