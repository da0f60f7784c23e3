package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fund-client/internal/tui"
	"github.com/MKhiriev/go-fund-client/models"
)

// pledgerAction lists the funds the server offers to the pledger and pledges
// to one of them. The server already limits the list to accessible funds.
func (a *App) pledgerAction(ctx context.Context, session models.Session) error {
	funds, err := a.api.ListFunds(ctx, session.Credentials)
	if err != nil {
		return a.absorbRejection(ctx, err)
	}

	a.console.Heading("Funds:")
	a.console.Print(tui.FundChoicesView(funds))
	if len(funds) == 0 {
		a.console.Failure("No funds are accepting pledges right now.")
		return nil
	}

	fundID, err := a.promptFundID("Please select a fund ID to donate to", newFundIDs(funds))
	if err != nil {
		return err
	}

	var amount float64
	for amount <= 0 {
		v, err := a.console.PromptFloat("Please enter an amount to donate:")
		if err != nil {
			return err
		}
		amount = models.RoundAmount(v)
	}

	err = a.api.CreatePledge(ctx, session.Credentials, models.PledgeRequest{FundID: fundID, Amount: amount})
	if err != nil {
		return a.absorbRejection(ctx, err)
	}

	a.console.Success(fmt.Sprintf("Success! Pledged %s to fund %s", models.Amount(amount), fundID))
	return nil
}
