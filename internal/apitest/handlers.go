package apitest

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fund-client/models"
	"github.com/go-chi/chi/v5"
)

type authorizedHandler func(w http.ResponseWriter, r *http.Request, user User)

// authorized checks the credentials in the body and, when roles are given,
// that the caller holds one of them.
func (s *Server) authorized(next authorizedHandler, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, msg := s.authenticate(requestBody(r))
		if msg != "" {
			writeEnvelope(w, http.StatusBadRequest, msg, nil)
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, user.Role) {
			writeEnvelope(w, http.StatusBadRequest, MsgAccessDenied, nil)
			return
		}
		next(w, r, user)
	}
}

func (s *Server) authenticate(body map[string]any) (User, string) {
	username := stringValue(body[models.FieldAuthUsername])
	password := stringValue(body[models.FieldAuthPassword])

	s.mu.Lock()
	user, ok := s.users[username]
	s.mu.Unlock()

	if !ok {
		return User{}, MsgUsernameNotFound
	}
	if user.Password != password {
		return User{}, MsgIncorrectPassword
	}
	return user, ""
}

func (s *Server) handleRole(w http.ResponseWriter, r *http.Request) {
	user, msg := s.authenticate(requestBody(r))
	if msg != "" {
		writeEnvelope(w, http.StatusBadRequest, msg, nil)
		return
	}

	writeEnvelope(w, http.StatusOK, "", map[string]any{"role": user.Role, "ID": user.ID})
}

func (s *Server) handleListFunds(w http.ResponseWriter, _ *http.Request, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	funds := make([]models.Fund, 0, len(s.funds))
	for _, f := range s.funds {
		if user.Role == models.RolePledger && !f.Accessible {
			continue
		}
		funds = append(funds, f)
	}

	writeEnvelope(w, http.StatusOK, "", funds)
}

func (s *Server) handleSetAccessibility(w http.ResponseWriter, r *http.Request, _ User) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, MsgInvalidFundID, nil)
		return
	}

	var accessible bool
	switch stringValue(requestBody(r)[models.FieldFundAccessible]) {
	case "1", "true":
		accessible = true
	case "0", "false":
		accessible = false
	default:
		writeEnvelope(w, http.StatusBadRequest, MsgInvalidAccessible, nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fundIndex(id)
	if i < 0 {
		writeEnvelope(w, http.StatusBadRequest, MsgFundNotFound, nil)
		return
	}
	s.funds[i].Accessible = models.Flag(accessible)

	writeEnvelope(w, http.StatusOK, "", "Updated fund "+strconv.FormatInt(id, 10))
}

func (s *Server) handleListNonProfits(w http.ResponseWriter, _ *http.Request, _ User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", s.nonProfits)
}

func (s *Server) handleListPledgers(w http.ResponseWriter, _ *http.Request, _ User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", s.pledgers)
}

func (s *Server) handleListAdmins(w http.ResponseWriter, _ *http.Request, _ User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", s.admins)
}

func (s *Server) handleListPledges(w http.ResponseWriter, _ *http.Request, _ User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", s.pledges)
}

func (s *Server) handleCreatePledge(w http.ResponseWriter, r *http.Request, user User) {
	fundID, amount, msg := parseMovement(requestBody(r))
	if msg != "" {
		writeEnvelope(w, http.StatusBadRequest, msg, nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fundIndex(fundID)
	if i < 0 || !s.funds[i].Accessible {
		writeEnvelope(w, http.StatusBadRequest, MsgFundClosed, nil)
		return
	}

	s.funds[i].Balance += models.Amount(amount)
	s.pledges = append(s.pledges, models.Pledge{
		ID:        int64(len(s.pledges) + 1),
		PledgerID: user.ID,
		FundID:    fundID,
		Amount:    models.Amount(amount),
		Date:      "2020-05-01",
	})

	writeEnvelope(w, http.StatusOK, "", "Pledge created")
}

func (s *Server) handleListWithdrawals(w http.ResponseWriter, _ *http.Request, _ User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", s.withdrawals)
}

func (s *Server) handleCreateWithdrawal(w http.ResponseWriter, r *http.Request, user User) {
	fundID, amount, msg := parseMovement(requestBody(r))
	if msg != "" {
		writeEnvelope(w, http.StatusBadRequest, msg, nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fundIndex(fundID)
	if i < 0 || s.owners[fundID] != user.ID {
		writeEnvelope(w, http.StatusBadRequest, MsgFundNotOwned, nil)
		return
	}
	if models.Amount(amount) > s.funds[i].Balance {
		writeEnvelope(w, http.StatusBadRequest, MsgInsufficientBalance, nil)
		return
	}

	s.funds[i].Balance -= models.Amount(amount)
	s.withdrawals = append(s.withdrawals, models.Withdrawal{
		ID:          int64(len(s.withdrawals) + 1),
		NonProfitID: user.ID,
		FundID:      fundID,
		Amount:      models.Amount(amount),
		Date:        "2020-05-02",
	})

	writeEnvelope(w, http.StatusOK, "", "Withdrawal created")
}

func (s *Server) handleListNonProfitFunds(w http.ResponseWriter, _ *http.Request, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	funds := make([]models.Fund, 0, len(s.funds))
	for _, f := range s.funds {
		if s.owners[f.ID] == user.ID {
			funds = append(funds, f)
		}
	}

	writeEnvelope(w, http.StatusOK, "", funds)
}

// fundIndex must be called with s.mu held.
func (s *Server) fundIndex(id int64) int {
	return slices.IndexFunc(s.funds, func(f models.Fund) bool { return f.ID == id })
}

func parseMovement(body map[string]any) (int64, float64, string) {
	fundID, err := strconv.ParseInt(stringValue(body[models.FieldFundID]), 10, 64)
	if err != nil {
		return 0, 0, MsgInvalidFundID
	}

	amount, ok := body[models.FieldAmount].(float64)
	if !ok || amount <= 0 {
		return 0, 0, MsgInvalidAmount
	}

	return fundID, amount, ""
}

func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	}
	return ""
}
