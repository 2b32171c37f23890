package dto

type AddCategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}
