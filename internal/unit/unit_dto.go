package unit

type UnitRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UnitResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
