package models

// Pledge is a donation made by a pledger to a fund.
type Pledge struct {
	ID        int64  `json:"PledgeID"`
	PledgerID int64  `json:"PledgerID"`
	FundID    int64  `json:"FundID"`
	Amount    Amount `json:"Amount"`
	Date      string `json:"PledgeDate"`
}

// Withdrawal is money taken out of a fund by its nonprofit.
type Withdrawal struct {
	ID          int64  `json:"WithdrawalID"`
	NonProfitID int64  `json:"NonProfitID"`
	FundID      int64  `json:"FundID"`
	Amount      Amount `json:"Amount"`
	Date        string `json:"WithdrawalDate"`
}

// PledgeRequest carries the user-selected values for a new pledge.
type PledgeRequest struct {
	FundID string
	Amount float64
}

// WithdrawalRequest carries the user-selected values for a new withdrawal.
type WithdrawalRequest struct {
	FundID string
	Amount float64
}
