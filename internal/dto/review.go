package dto

import "fintrack/internal/models"

type CreateReviewRequest struct {
	Transactions []models.StagedTransaction `json:"transactions"`
}

type ReviewResponse struct {
	ID           string                     `json:"id"`
	Transactions []models.StagedTransaction `json:"transactions"`
	Selected     []int                      `json:"selected"`
}

type SelectRequest struct {
	Index int `json:"index"`
}

type EditTransactionRequest struct {
	Transaction models.StagedTransaction `json:"transaction"`
}
