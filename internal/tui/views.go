// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fund-client/models"
)

// FundsView lists funds with every field.
func FundsView(funds []models.Fund) string {
	records := make([][]field, 0, len(funds))
	for _, f := range funds {
		records = append(records, []field{
			{"Fund ID", formatID(f.ID)},
			{"Fund Name", valueOrDash(f.Name)},
			{"Fund Description", valueOrDash(f.Description)},
			{"Fund Accessible", boolWord(bool(f.Accessible))},
			{"Fund Balance", f.Balance.String()},
		})
	}
	return renderRecords(records)
}

// FundChoicesView lists funds open for donations: ID, name and description
// only.
func FundChoicesView(funds []models.Fund) string {
	records := make([][]field, 0, len(funds))
	for _, f := range funds {
		records = append(records, []field{
			{"Fund ID", formatID(f.ID)},
			{"Fund Name", valueOrDash(f.Name)},
			{"Fund Description", valueOrDash(f.Description)},
		})
	}
	return renderRecords(records)
}

// FundBalancesView lists funds with their balances.
func FundBalancesView(funds []models.Fund) string {
	records := make([][]field, 0, len(funds))
	for _, f := range funds {
		records = append(records, []field{
			{"Fund ID", formatID(f.ID)},
			{"Fund Name", valueOrDash(f.Name)},
			{"Fund Balance", f.Balance.String()},
		})
	}
	return renderRecords(records)
}

func NonProfitsView(nonProfits []models.NonProfit) string {
	records := make([][]field, 0, len(nonProfits))
	for _, n := range nonProfits {
		records = append(records, []field{
			{"NonProfit ID", formatID(n.ID)},
			{"NonProfit Name", valueOrDash(n.Name)},
			{"NonProfit Description", valueOrDash(n.Description)},
			{"NonProfit Email", valueOrDash(n.Email)},
		})
	}
	return renderRecords(records)
}

// PledgersView lists pledgers. Phone and card numbers show their last four
// digits only.
func PledgersView(pledgers []models.Pledger) string {
	records := make([][]field, 0, len(pledgers))
	for _, p := range pledgers {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		records = append(records, []field{
			{"Pledger ID", formatID(p.ID)},
			{"Name", valueOrDash(name)},
			{"Email", valueOrDash(p.Email)},
			{"Phone Number", maskTail(p.PhoneNumber.String())},
			{"Credit Card Number", maskTail(p.CreditCardNumber.String())},
		})
	}
	return renderRecords(records)
}

func AdminsView(admins []models.Admin) string {
	records := make([][]field, 0, len(admins))
	for _, a := range admins {
		records = append(records, []field{
			{"Admin ID", formatID(a.ID)},
			{"Admin Name", valueOrDash(a.Name)},
			{"Email", valueOrDash(a.Email)},
		})
	}
	return renderRecords(records)
}

func PledgesView(pledges []models.Pledge) string {
	records := make([][]field, 0, len(pledges))
	for _, p := range pledges {
		records = append(records, []field{
			{"Pledge ID", formatID(p.ID)},
			{"Pledger ID", formatID(p.PledgerID)},
			{"Fund ID", formatID(p.FundID)},
			{"Amount", p.Amount.String()},
			{"Pledge Date", valueOrDash(p.Date)},
		})
	}
	return renderRecords(records)
}

func WithdrawalsView(withdrawals []models.Withdrawal) string {
	records := make([][]field, 0, len(withdrawals))
	for _, w := range withdrawals {
		records = append(records, []field{
			{"Withdrawal ID", formatID(w.ID)},
			{"NonProfit ID", formatID(w.NonProfitID)},
			{"Fund ID", formatID(w.FundID)},
			{"Amount", w.Amount.String()},
			{"Withdrawal Date", valueOrDash(w.Date)},
		})
	}
	return renderRecords(records)
}

// BuildInfoView renders the version banner printed at startup.
func BuildInfoView(info models.BuildInfo) string {
	return strings.Join(info.Lines(), "\n")
}
