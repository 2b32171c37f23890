package dto

type AddIncomeRequest struct {
	Icon   string  `json:"icon"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type AddExpenseRequest struct {
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type IncomeResponse struct {
	ID     string  `json:"id"`
	Icon   string  `json:"icon"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type ExpenseResponse struct {
	ID       string  `json:"id"`
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type DashboardResponse struct {
	TotalIncome    float64           `json:"totalIncome"`
	TotalExpense   float64           `json:"totalExpense"`
	Balance        float64           `json:"balance"`
	RecentIncomes  []IncomeResponse  `json:"recentIncomes"`
	RecentExpenses []ExpenseResponse `json:"recentExpenses"`
}
