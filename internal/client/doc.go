// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive session driver.
//
// The driver runs two nested loops. The outer one logs a user in; the inner
// one serves the authenticated session, dispatching on the user's role and
// asking after every action whether to continue, log out or quit. Each phase
// returns an [Outcome] instead of flipping shared flags.
package client
