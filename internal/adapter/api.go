// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/models"
)

// Endpoint paths, relative to the base URL.
const (
	pathRole           = "role/"
	pathFunds          = "funds"
	pathNonProfits     = "nonprofits"
	pathPledgers       = "pledgers"
	pathAdmins         = "admins"
	pathPledges        = "pledges"
	pathWithdrawals    = "withdrawals"
	pathNonProfitFunds = "nonprofitfunds/"
)

type fundAPI struct {
	helper RequestHelper
	logger *logger.Logger
}

// NewFundAPI returns the [FundAPI] implementation backed by helper.
func NewFundAPI(helper RequestHelper, logger *logger.Logger) FundAPI {
	return &fundAPI{helper: helper, logger: logger}
}

// ResolveRole implements [FundAPI]. GET role/.
func (a *fundAPI) ResolveRole(ctx context.Context, creds models.Credentials) (models.RoleInfo, error) {
	env, err := a.helper.Get(ctx, pathRole, models.NewPayload().WithCredentials(creds))
	if err != nil {
		return models.RoleInfo{}, fmt.Errorf("resolve role: %w", err)
	}

	var info models.RoleInfo
	if err = decodeResponse(env, &info); err != nil {
		return models.RoleInfo{}, fmt.Errorf("resolve role: %w", err)
	}

	return info, nil
}

// ListFunds implements [FundAPI]. GET funds.
func (a *fundAPI) ListFunds(ctx context.Context, creds models.Credentials) ([]models.Fund, error) {
	return fetchList[models.Fund](ctx, a.helper, pathFunds, creds)
}

// SetFundAccessibility implements [FundAPI]. PUT funds/<id> with
// FundAccessible set to "1" or "0".
func (a *fundAPI) SetFundAccessibility(ctx context.Context, creds models.Credentials, fundID string, accessible bool) error {
	body := models.NewPayload().
		WithCredentials(creds).
		Set(models.FieldFundAccessible, boolDigit(accessible))

	env, err := a.helper.Put(ctx, pathFunds+"/"+url.PathEscape(fundID), body)
	if err != nil {
		return fmt.Errorf("set fund accessibility: %w", err)
	}
	if err = checkStatus(env); err != nil {
		return err
	}

	a.logger.Info().Str("fund_id", fundID).Bool("accessible", accessible).Msg("fund accessibility changed")
	return nil
}

// ListNonProfits implements [FundAPI]. GET nonprofits.
func (a *fundAPI) ListNonProfits(ctx context.Context, creds models.Credentials) ([]models.NonProfit, error) {
	return fetchList[models.NonProfit](ctx, a.helper, pathNonProfits, creds)
}

// ListPledgers implements [FundAPI]. GET pledgers.
func (a *fundAPI) ListPledgers(ctx context.Context, creds models.Credentials) ([]models.Pledger, error) {
	return fetchList[models.Pledger](ctx, a.helper, pathPledgers, creds)
}

// ListAdmins implements [FundAPI]. GET admins.
func (a *fundAPI) ListAdmins(ctx context.Context, creds models.Credentials) ([]models.Admin, error) {
	return fetchList[models.Admin](ctx, a.helper, pathAdmins, creds)
}

// ListPledges implements [FundAPI]. GET pledges.
func (a *fundAPI) ListPledges(ctx context.Context, creds models.Credentials) ([]models.Pledge, error) {
	return fetchList[models.Pledge](ctx, a.helper, pathPledges, creds)
}

// CreatePledge implements [FundAPI]. POST pledges.
func (a *fundAPI) CreatePledge(ctx context.Context, creds models.Credentials, req models.PledgeRequest) error {
	body := models.NewPayload().
		WithCredentials(creds).
		Set(models.FieldFundID, req.FundID).
		Set(models.FieldAmount, req.Amount)

	env, err := a.helper.Post(ctx, pathPledges, body)
	if err != nil {
		return fmt.Errorf("create pledge: %w", err)
	}
	if err = checkStatus(env); err != nil {
		return err
	}

	a.logger.Info().Str("fund_id", req.FundID).Float64("amount", req.Amount).Msg("pledge created")
	return nil
}

// ListWithdrawals implements [FundAPI]. GET withdrawals.
func (a *fundAPI) ListWithdrawals(ctx context.Context, creds models.Credentials) ([]models.Withdrawal, error) {
	return fetchList[models.Withdrawal](ctx, a.helper, pathWithdrawals, creds)
}

// CreateWithdrawal implements [FundAPI]. POST withdrawals.
func (a *fundAPI) CreateWithdrawal(ctx context.Context, creds models.Credentials, req models.WithdrawalRequest) error {
	body := models.NewPayload().
		WithCredentials(creds).
		Set(models.FieldFundID, req.FundID).
		Set(models.FieldAmount, req.Amount)

	env, err := a.helper.Post(ctx, pathWithdrawals, body)
	if err != nil {
		return fmt.Errorf("create withdrawal: %w", err)
	}
	if err = checkStatus(env); err != nil {
		return err
	}

	a.logger.Info().Str("fund_id", req.FundID).Float64("amount", req.Amount).Msg("withdrawal created")
	return nil
}

// ListNonProfitFunds implements [FundAPI]. GET nonprofitfunds/.
func (a *fundAPI) ListNonProfitFunds(ctx context.Context, creds models.Credentials) ([]models.Fund, error) {
	return fetchList[models.Fund](ctx, a.helper, pathNonProfitFunds, creds)
}

func fetchList[T any](ctx context.Context, helper RequestHelper, path string, creds models.Credentials) ([]T, error) {
	env, err := helper.Get(ctx, path, models.NewPayload().WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	var items []T
	if err = decodeResponse(env, &items); err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	return items, nil
}

func boolDigit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

