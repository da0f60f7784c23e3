// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fund-client/internal/adapter"
	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/internal/tui"
	"github.com/MKhiriev/go-fund-client/internal/utils"
	"github.com/MKhiriev/go-fund-client/models"
)

const (
	loginFailedMessage   = "Username or Password incorrect. Try again please."
	requestFailedMessage = "Error. Please try again."

	continuationPrompt = "Enter a number to select an action:\n" +
		"1 - Make another query\n" +
		"2 - Go back to log-in\n" +
		"3 - Quit this program"
)

// App is the interactive session driver.
type App struct {
	api     adapter.FundAPI
	console tui.Prompter
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewApp wires the driver to its API and console.
func NewApp(api adapter.FundAPI, console tui.Prompter, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errors.New("fund api is required")
	}
	if console == nil {
		return nil, errors.New("console is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &App{
		api:     api,
		console: console,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

// Run implements [Client]. It returns nil when the user quits or the input
// ends. Transport failures, malformed responses and unparsable numbers are
// returned as errors.
func (a *App) Run(ctx context.Context) error {
	for {
		session, ok, err := a.login(ctx)
		if err != nil {
			return a.finish(err)
		}
		if !ok {
			continue
		}

		outcome, err := a.serve(ctx, session)
		if err != nil {
			return a.finish(err)
		}
		if outcome == OutcomeQuit {
			return a.finish(nil)
		}
	}
}

// finish prints the closing blank line on a normal exit. End of input counts
// as one.
func (a *App) finish(err error) error {
	if err != nil && !errors.Is(err, tui.ErrInputClosed) {
		return err
	}
	a.console.Print("")
	return nil
}

// login asks for credentials and resolves them to a session. ok is false when
// the server rejected the credentials or returned a role the client cannot
// serve; the caller simply asks again.
func (a *App) login(ctx context.Context) (models.Session, bool, error) {
	username, err := a.console.Prompt("Username:")
	if err != nil {
		return models.Session{}, false, err
	}
	password, err := a.console.PromptSecret("Password:")
	if err != nil {
		return models.Session{}, false, err
	}

	creds := models.Credentials{Username: username, Password: password}
	info, err := a.api.ResolveRole(ctx, creds)
	if err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) {
			a.logger.Info().Int("status", statusErr.Status).Msg("login rejected")
			a.console.Failure(serverMessage(statusErr, loginFailedMessage))
			return models.Session{}, false, nil
		}
		return models.Session{}, false, fmt.Errorf("login: %w", err)
	}

	if !info.Role.Valid() {
		a.logger.Warn().Str("user_role", info.Role.String()).Msg("unsupported role")
		a.console.Failure(fmt.Sprintf("Unsupported account role %q. Please log in with another account.", info.Role))
		return models.Session{}, false, nil
	}

	session := models.Session{
		ID:          a.ids.Generate(),
		Credentials: creds,
		Role:        info.Role,
		UserID:      info.ID,
	}
	a.logger.Info().
		Str("session", session.ID).
		Str("user_role", session.Role.String()).
		Int64("user_id", session.UserID).
		Msg("logged in")

	return session, true, nil
}

type action func(ctx context.Context, session models.Session) error

func (a *App) actionFor(role models.Role) action {
	switch role {
	case models.RoleAdmin:
		return a.adminAction
	case models.RolePledger:
		return a.pledgerAction
	case models.RoleNonProfit:
		return a.nonProfitAction
	}
	return nil
}

// serve runs the session loop until the user logs out or quits.
func (a *App) serve(ctx context.Context, session models.Session) (Outcome, error) {
	sessionLogger := a.logger.With().
		Str("session", session.ID).
		Str("user_role", session.Role.String()).
		Logger()
	ctx = sessionLogger.WithContext(utils.WithSessionID(ctx, session.ID))

	run := a.actionFor(session.Role)
	if run == nil {
		return OutcomeLoggedOut, nil
	}

	for {
		if err := run(ctx, session); err != nil {
			return OutcomeQuit, err
		}

		outcome, err := a.continuation()
		if err != nil {
			return OutcomeQuit, err
		}
		if outcome != OutcomeContinue {
			logger.FromContext(ctx).Info().Stringer("outcome", outcome).Msg("session ended")
			return outcome, nil
		}
	}
}

func (a *App) continuation() (Outcome, error) {
	choice, err := a.promptMenu(continuationPrompt, 3)
	if err != nil {
		return OutcomeQuit, err
	}

	switch choice {
	case 1:
		return OutcomeContinue, nil
	case 2:
		return OutcomeLoggedOut, nil
	}
	return OutcomeQuit, nil
}

// absorbRejection prints a server rejection and swallows it. Any other error is
// returned unchanged.
func (a *App) absorbRejection(ctx context.Context, err error) error {
	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	logger.FromContext(ctx).Warn().
		Int("status", statusErr.Status).
		Str("message", statusErr.Message).
		Msg("request rejected")
	a.console.Failure(serverMessage(statusErr, requestFailedMessage))
	return nil
}

func serverMessage(err *adapter.StatusError, fallback string) string {
	if err.Message == "" {
		return fallback
	}
	return err.Message
}
