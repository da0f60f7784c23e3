package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fund-client/internal/tui"
	"github.com/MKhiriev/go-fund-client/models"
)

const adminMenu = "Enter a number to select an action:\n" +
	"1 - View all funds\n" +
	"2 - View all nonprofits\n" +
	"3 - View all pledgers\n" +
	"4 - View all admins\n" +
	"5 - View all pledges\n" +
	"6 - View all withdrawals\n" +
	"7 - Switch a fund's accessibility on/off"

const (
	adminListFunds = iota + 1
	adminListNonProfits
	adminListPledgers
	adminListAdmins
	adminListPledges
	adminListWithdrawals
	adminToggleFund
)

func (a *App) adminAction(ctx context.Context, session models.Session) error {
	choice, err := a.promptMenu(adminMenu, adminToggleFund)
	if err != nil {
		return err
	}

	creds := session.Credentials
	switch choice {
	case adminListFunds:
		err = a.listFunds(ctx, creds)
	case adminListNonProfits:
		err = show(a, "Nonprofits:", tui.NonProfitsView)(a.api.ListNonProfits(ctx, creds))
	case adminListPledgers:
		err = show(a, "Pledgers:", tui.PledgersView)(a.api.ListPledgers(ctx, creds))
	case adminListAdmins:
		err = show(a, "Admins:", tui.AdminsView)(a.api.ListAdmins(ctx, creds))
	case adminListPledges:
		err = show(a, "Pledges:", tui.PledgesView)(a.api.ListPledges(ctx, creds))
	case adminListWithdrawals:
		err = show(a, "Withdrawals:", tui.WithdrawalsView)(a.api.ListWithdrawals(ctx, creds))
	case adminToggleFund:
		err = a.toggleFund(ctx, creds)
	}

	return a.absorbRejection(ctx, err)
}

// show returns a sink for a listing call: it prints the records under title,
// or passes the call's error through.
func show[T any](a *App, title string, view func([]T) string) func([]T, error) error {
	return func(items []T, err error) error {
		if err != nil {
			return err
		}
		a.console.Heading(title)
		a.console.Print(view(items))
		return nil
	}
}

func (a *App) listFunds(ctx context.Context, creds models.Credentials) error {
	funds, err := a.api.ListFunds(ctx, creds)
	return show(a, "Funds:", tui.FundsView)(funds, err)
}

// toggleFund re-lists the funds, then switches the accessibility of one of
// them.
func (a *App) toggleFund(ctx context.Context, creds models.Credentials) error {
	funds, err := a.api.ListFunds(ctx, creds)
	if err = show(a, "Funds:", tui.FundsView)(funds, err); err != nil {
		return err
	}
	if len(funds) == 0 {
		a.console.Failure("There are no funds to modify.")
		return nil
	}

	fundID, err := a.promptFundID("Please enter a fund ID to switch on/off", newFundIDs(funds))
	if err != nil {
		return err
	}

	var accessible string
	for accessible != "0" && accessible != "1" {
		answer, err := a.console.Prompt("Enter 0 to turn off accessibility, 1 to turn on")
		if err != nil {
			return err
		}
		accessible = strings.TrimSpace(answer)
	}

	on := accessible == "1"
	if err = a.api.SetFundAccessibility(ctx, creds, fundID, on); err != nil {
		return err
	}

	a.console.Success(fmt.Sprintf("Success! Modified fund %s and set accessibility to %s", fundID, trueFalse(on)))
	return nil
}

func trueFalse(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
