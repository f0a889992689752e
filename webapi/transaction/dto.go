package transaction

//revive:disable

// TransferRequest represents the request body for moving funds between two
// accounts.
type TransferRequest struct {
	AccountFromID string  `json:"account_from_id" validate:"required,min=1,max=64"`
	AccountToID   string  `json:"account_to_id" validate:"required,min=1,max=64"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
}

//revive:enable
