package account

//revive:disable

// CreateAccountRequest represents the request body for creating a new account.
type CreateAccountRequest struct {
	ID       string  `json:"id" validate:"omitempty,min=1,max=64"`
	Currency string  `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
	Balance  float64 `json:"balance" validate:"omitempty,gte=0"`
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	ID       string  `json:"id"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// BalanceDTO is the API response for a balance inquiry.
type BalanceDTO struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
}

//revive:enable
