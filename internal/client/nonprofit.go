package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fund-client/internal/tui"
	"github.com/MKhiriev/go-fund-client/models"
)

// nonProfitAction lists the caller's funds with balances and withdraws from
// one of them.
func (a *App) nonProfitAction(ctx context.Context, session models.Session) error {
	funds, err := a.api.ListNonProfitFunds(ctx, session.Credentials)
	if err != nil {
		return a.absorbRejection(ctx, err)
	}

	a.console.Heading("Your funds:")
	a.console.Print(tui.FundBalancesView(funds))
	if len(funds) == 0 {
		a.console.Failure("You have no funds to withdraw from.")
		return nil
	}

	balances := make(map[string]float64, len(funds))
	for _, f := range funds {
		balances[f.Key()] = models.RoundAmount(float64(f.Balance))
	}

	fundID, err := a.promptFundID("Please enter a fund ID to withdraw from", newFundIDs(funds))
	if err != nil {
		return err
	}

	balance := balances[fundID]
	if balance <= 0 {
		a.console.Failure(fmt.Sprintf("Fund %s has no balance to withdraw.", fundID))
		return nil
	}

	var amount float64
	for {
		v, err := a.console.PromptFloat("Please enter an amount to withdraw:")
		if err != nil {
			return err
		}
		amount = models.RoundAmount(v)
		if amount > 0 && amount <= balance {
			break
		}
		if amount > balance {
			a.console.Failure(fmt.Sprintf("The balance of fund %s is %s.", fundID, models.Amount(balance)))
		}
	}

	err = a.api.CreateWithdrawal(ctx, session.Credentials, models.WithdrawalRequest{FundID: fundID, Amount: amount})
	if err != nil {
		return a.absorbRejection(ctx, err)
	}

	a.console.Success(fmt.Sprintf("Success! Withdrew %s from fund %s", models.Amount(amount), fundID))
	return nil
}
