package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-fund-client/internal/apitest"
	"github.com/MKhiriev/go-fund-client/internal/config"
	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/internal/mock"
	"github.com/MKhiriev/go-fund-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAPI(t *testing.T) (FundAPI, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t)

	helper, err := NewHTTPRequestHelper(config.ClientAdapter{HTTPAddress: srv.BaseURL()}, logger.Nop())
	require.NoError(t, err)

	return NewFundAPI(helper, logger.Nop()), srv
}

// ── ResolveRole ──────────────────────────────────────────────────────────────

func TestResolveRole_Success(t *testing.T) {
	api, srv := newTestAPI(t)

	info, err := api.ResolveRole(context.Background(), apitest.AdminUser.Credentials())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, info.Role)
	assert.Equal(t, apitest.AdminUser.ID, info.ID)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/api/role/", reqs[0].Path)
}

func TestResolveRole_WrongPassword(t *testing.T) {
	api, _ := newTestAPI(t)

	_, err := api.ResolveRole(context.Background(), models.Credentials{Username: "admin", Password: "nope"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Equal(t, "Incorrect password", statusErr.Message)
}

func TestResolveRole_BareRoleString(t *testing.T) {
	srv, _ := captureServer(t, respondJSON(`{"status":200,"error":null,"response":"NonProfit"}`))
	api := NewFundAPI(newTestHelper(t, srv.URL+"/api/"), logger.Nop())

	info, err := api.ResolveRole(context.Background(), models.Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleNonProfit, info.Role)
}

// ── listings ─────────────────────────────────────────────────────────────────

func TestListFunds_AdminSeesAll(t *testing.T) {
	api, _ := newTestAPI(t)

	funds, err := api.ListFunds(context.Background(), apitest.AdminUser.Credentials())
	require.NoError(t, err)
	require.Len(t, funds, 3)
	assert.Equal(t, "Food Bank", funds[0].Name)
	assert.True(t, bool(funds[0].Accessible))
	assert.False(t, bool(funds[1].Accessible))
}

func TestListings_Admin(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()
	creds := apitest.AdminUser.Credentials()

	nonProfits, err := api.ListNonProfits(ctx, creds)
	require.NoError(t, err)
	assert.Len(t, nonProfits, 2)

	pledgers, err := api.ListPledgers(ctx, creds)
	require.NoError(t, err)
	require.Len(t, pledgers, 1)
	assert.Equal(t, models.Text("4111111111111111"), pledgers[0].CreditCardNumber)

	admins, err := api.ListAdmins(ctx, creds)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	pledges, err := api.ListPledges(ctx, creds)
	require.NoError(t, err)
	assert.Empty(t, pledges)

	withdrawals, err := api.ListWithdrawals(ctx, creds)
	require.NoError(t, err)
	assert.Empty(t, withdrawals)
}

func TestListings_ForbiddenForPledger(t *testing.T) {
	api, _ := newTestAPI(t)

	_, err := api.ListPledgers(context.Background(), apitest.PledgerUser.Credentials())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestListFunds_DecimalStrings(t *testing.T) {
	srv, _ := captureServer(t, respondJSON(
		`{"status":200,"response":[{"FundID":5,"FundName":"X","FundAccessible":"1","FundBalance":"12.50"}]}`))
	api := NewFundAPI(newTestHelper(t, srv.URL+"/api/"), logger.Nop())

	funds, err := api.ListFunds(context.Background(), models.Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.True(t, bool(funds[0].Accessible))
	assert.InDelta(t, 12.5, float64(funds[0].Balance), 1e-9)
}

func TestListFunds_SchemaMismatch(t *testing.T) {
	srv, _ := captureServer(t, respondJSON(`{"status":200,"response":{"FundID":5}}`))
	api := NewFundAPI(newTestHelper(t, srv.URL+"/api/"), logger.Nop())

	_, err := api.ListFunds(context.Background(), models.Credentials{Username: "a", Password: "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestListNonProfitFunds_OnlyOwned(t *testing.T) {
	api, srv := newTestAPI(t)

	funds, err := api.ListNonProfitFunds(context.Background(), apitest.NonProfitUser.Credentials())
	require.NoError(t, err)
	require.Len(t, funds, 2)
	assert.Equal(t, int64(1), funds[0].ID)
	assert.Equal(t, int64(2), funds[1].ID)

	reqs := srv.Requests()
	assert.Equal(t, "/api/nonprofitfunds/", reqs[len(reqs)-1].Path)
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestSetFundAccessibility_RoundTrip(t *testing.T) {
	api, srv := newTestAPI(t)
	ctx := context.Background()
	creds := apitest.AdminUser.Credentials()

	require.NoError(t, api.SetFundAccessibility(ctx, creds, "3", true))

	reqs := srv.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/api/funds/3", last.Path)
	assert.Equal(t, "1", last.Body[models.FieldFundAccessible])

	funds, err := api.ListFunds(ctx, creds)
	require.NoError(t, err)
	assert.True(t, bool(funds[2].Accessible), "re-listing must show the toggled flag")

	require.NoError(t, api.SetFundAccessibility(ctx, creds, "3", false))
	fund, ok := srv.Fund(3)
	require.True(t, ok)
	assert.False(t, bool(fund.Accessible))
}

func TestSetFundAccessibility_UnknownFund(t *testing.T) {
	api, _ := newTestAPI(t)

	err := api.SetFundAccessibility(context.Background(), apitest.AdminUser.Credentials(), "99", true)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Fund not found", statusErr.Message)
}

func TestCreatePledge(t *testing.T) {
	api, srv := newTestAPI(t)

	err := api.CreatePledge(context.Background(), apitest.PledgerUser.Credentials(),
		models.PledgeRequest{FundID: "1", Amount: 25.5})
	require.NoError(t, err)

	pledges := srv.Pledges()
	require.Len(t, pledges, 1)
	assert.Equal(t, int64(1), pledges[0].FundID)
	assert.Equal(t, apitest.PledgerUser.ID, pledges[0].PledgerID)

	fund, _ := srv.Fund(1)
	assert.InDelta(t, 525.5, float64(fund.Balance), 1e-9)

	reqs := srv.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/pledges", last.Path)
	assert.Equal(t, "1", last.Body[models.FieldFundID])
	assert.Equal(t, 25.5, last.Body[models.FieldAmount])
}

func TestCreatePledge_Rejected(t *testing.T) {
	api, _ := newTestAPI(t)

	err := api.CreatePledge(context.Background(), apitest.PledgerUser.Credentials(),
		models.PledgeRequest{FundID: "2", Amount: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestCreateWithdrawal(t *testing.T) {
	api, srv := newTestAPI(t)
	creds := apitest.NonProfitUser.Credentials()

	require.NoError(t, api.CreateWithdrawal(context.Background(), creds,
		models.WithdrawalRequest{FundID: "2", Amount: 40}))

	fund, _ := srv.Fund(2)
	assert.InDelta(t, 60.0, float64(fund.Balance), 1e-9)
	require.Len(t, srv.Withdrawals(), 1)

	err := api.CreateWithdrawal(context.Background(), creds, models.WithdrawalRequest{FundID: "2", Amount: 61})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Insufficient balance", statusErr.Message)
}

func TestCreateWithdrawal_ServerFailure(t *testing.T) {
	api, srv := newTestAPI(t)
	srv.FailOn(http.MethodPost, "/api/withdrawals", 500, "database unavailable")

	err := api.CreateWithdrawal(context.Background(), apitest.NonProfitUser.Credentials(),
		models.WithdrawalRequest{FundID: "1", Amount: 1})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 500, statusErr.Status)
	assert.Equal(t, "database unavailable", statusErr.Message)
}

// ── request building ─────────────────────────────────────────────────────────

func TestFundAPI_BuildsPayloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	helper := mock.NewMockRequestHelper(ctrl)
	api := NewFundAPI(helper, logger.Nop())
	ctx := context.Background()
	creds := models.Credentials{Username: "admin", Password: "pw"}
	ok := models.Envelope{Status: models.StatusOK}

	helper.EXPECT().Put(ctx, "funds/3", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body models.Payload) (models.Envelope, error) {
			assert.Equal(t, models.Payload{
				models.FieldAuthUsername:   "admin",
				models.FieldAuthPassword:   "pw",
				models.FieldFundAccessible: "0",
			}, body)
			return ok, nil
		},
	)
	require.NoError(t, api.SetFundAccessibility(ctx, creds, "3", false))

	helper.EXPECT().Post(ctx, "withdrawals", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body models.Payload) (models.Envelope, error) {
			assert.Equal(t, "7", body[models.FieldFundID])
			assert.Equal(t, 12.5, body[models.FieldAmount])
			return ok, nil
		},
	)
	require.NoError(t, api.CreateWithdrawal(ctx, creds, models.WithdrawalRequest{FundID: "7", Amount: 12.5}))
}

func TestFundAPI_EmptyCredentialsAreOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	helper := mock.NewMockRequestHelper(ctrl)
	api := NewFundAPI(helper, logger.Nop())

	helper.EXPECT().Get(gomock.Any(), "role/", models.Payload{models.FieldAuthUsername: "admin"}).
		Return(models.Envelope{Status: 400, Error: "Incorrect password"}, nil)

	_, err := api.ResolveRole(context.Background(), models.Credentials{Username: "admin"})
	assert.ErrorIs(t, err, ErrRejected)
}

func TestFundAPI_TransportErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	helper := mock.NewMockRequestHelper(ctrl)
	api := NewFundAPI(helper, logger.Nop())
	transportErr := errors.New("connection reset")

	helper.EXPECT().Get(gomock.Any(), "nonprofitfunds/", gomock.Any()).Return(models.Envelope{}, transportErr)

	_, err := api.ListNonProfitFunds(context.Background(), models.Credentials{Username: "a", Password: "b"})
	require.ErrorIs(t, err, transportErr)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "list nonprofitfunds/")
}
