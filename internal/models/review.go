package models

import "errors"

var (
	ErrIndexOutOfRange  = errors.New("transaction index out of range")
	ErrValidationFailed = errors.New("amount must be positive and date must not be empty")
)

// ReviewList holds extracted transactions awaiting human review. Entries keep
// a stable positional index for selection and editing. The list lives in
// memory only; nothing is persisted until the selected subset is imported.
type ReviewList struct {
	transactions []StagedTransaction
	selected     []bool
}

func NewReviewList(transactions []StagedTransaction) *ReviewList {
	list := make([]StagedTransaction, len(transactions))
	copy(list, transactions)
	return &ReviewList{
		transactions: list,
		selected:     make([]bool, len(list)),
	}
}

func (l *ReviewList) Len() int {
	return len(l.transactions)
}

func (l *ReviewList) Transactions() []StagedTransaction {
	out := make([]StagedTransaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// ToggleSelect flips the selection of a single entry.
func (l *ReviewList) ToggleSelect(index int) error {
	if index < 0 || index >= len(l.transactions) {
		return ErrIndexOutOfRange
	}
	l.selected[index] = !l.selected[index]
	return nil
}

// ToggleSelectAll selects every entry unless all are already selected, in
// which case it clears the selection.
func (l *ReviewList) ToggleSelectAll() {
	all := len(l.transactions) > 0
	for _, sel := range l.selected {
		if !sel {
			all = false
			break
		}
	}
	for i := range l.selected {
		l.selected[i] = !all
	}
}

// Edit replaces one entry's fields. The replacement must carry a positive
// amount and a non-empty date; otherwise the edit is rejected and the list is
// left unchanged.
func (l *ReviewList) Edit(index int, tx StagedTransaction) error {
	if index < 0 || index >= len(l.transactions) {
		return ErrIndexOutOfRange
	}
	if tx.Amount <= 0 || tx.Date == "" {
		return ErrValidationFailed
	}
	l.transactions[index] = tx
	return nil
}

// Selected returns the currently selected entries in list order.
func (l *ReviewList) Selected() []StagedTransaction {
	var out []StagedTransaction
	for i, sel := range l.selected {
		if sel {
			out = append(out, l.transactions[i])
		}
	}
	return out
}

// SelectedIndices returns the indices of selected entries in ascending order.
func (l *ReviewList) SelectedIndices() []int {
	var out []int
	for i, sel := range l.selected {
		if sel {
			out = append(out, i)
		}
	}
	return out
}
