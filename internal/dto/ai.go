package dto

import "fintrack/internal/models"

type AnalyzeRequest struct {
	Type   string `json:"type"`   // income, expense or both
	Period string `json:"period"` // 1M, 3M, 6M or all
}

type AnalyzeResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	AIResponse   string  `json:"aiResponse"`
}

// ExtractedData carries the merged transaction list alongside the per-type
// lists; downstream consumers need both views.
type ExtractedData struct {
	Income       []models.StagedTransaction `json:"income"`
	Expenses     []models.StagedTransaction `json:"expenses"`
	Transactions []models.StagedTransaction `json:"transactions"`
}

type ExtractResponse struct {
	Data ExtractedData `json:"data"`
}

type ImportRequest struct {
	Income   []models.StagedTransaction `json:"income"`
	Expenses []models.StagedTransaction `json:"expenses"`
}

type InsertedCounts struct {
	Incomes  int `json:"incomes"`
	Expenses int `json:"expenses"`
}

type ImportResponse struct {
	Message  string         `json:"message"`
	Inserted InsertedCounts `json:"inserted"`
}
