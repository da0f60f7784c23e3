package models

// NonProfit is an organisation that can withdraw from the funds it owns.
type NonProfit struct {
	ID          int64  `json:"NonProfitID"`
	Name        string `json:"NonProfitName"`
	Description string `json:"NonProfitDescription"`
	Email       string `json:"NonProfitEmail"`
}
