package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	Date      string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Amount    string `json:"amount" doc:"Non-negative decimal amount"`
	IsIncome  bool   `json:"isIncome" doc:"True for income, false for an expense"`
	Note      string `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 time the transaction was logged, nanosecond precision"`
}
