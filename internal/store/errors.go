// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registration fails because a
	// credential with the same email already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrCredentialNotFound is returned when no credential matches the email.
	ErrCredentialNotFound = errors.New("login credential was not found")

	// ErrProfileNotFound is returned when no profile references the credential.
	ErrProfileNotFound = errors.New("user profile was not found")

	// ErrItemNotFound is returned when a vault item lookup or delete targets
	// a row that does not exist for the given owner.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemNotSaved is returned when an INSERT of a vault item completes
	// without returning the generated id.
	ErrItemNotSaved = errors.New("vault item was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
