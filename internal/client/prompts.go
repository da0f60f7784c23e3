package client

import (
	"strings"

	"github.com/MKhiriev/go-fund-client/models"
)

// fundIDs is the set of fund IDs from the most recent listing. Mutating
// requests may only reference members of it.
type fundIDs map[string]struct{}

func newFundIDs(funds []models.Fund) fundIDs {
	ids := make(fundIDs, len(funds))
	for _, f := range funds {
		ids[f.Key()] = struct{}{}
	}
	return ids
}

func (s fundIDs) contains(id string) bool {
	_, ok := s[id]
	return ok
}

// promptFundID asks until the answer is one of ids.
func (a *App) promptFundID(label string, ids fundIDs) (string, error) {
	for {
		answer, err := a.console.Prompt(label)
		if err != nil {
			return "", err
		}
		if id := strings.TrimSpace(answer); ids.contains(id) {
			return id, nil
		}
	}
}

// promptMenu asks until the answer is between 1 and options.
func (a *App) promptMenu(label string, options int) (int, error) {
	for {
		choice, err := a.console.PromptInt(label)
		if err != nil {
			return 0, err
		}
		if choice >= 1 && choice <= options {
			return choice, nil
		}
	}
}
