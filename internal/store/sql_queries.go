// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// login_credentials
const (
	createCredential = `INSERT INTO login_credentials (email, password_hash, password_hash_salt, totp_secret)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	findCredentialByEmail = `SELECT id, email, password_hash, password_hash_salt, totp_secret, created_at
FROM login_credentials
WHERE email = $1`

	updateCredentialPassword = `UPDATE login_credentials
SET password_hash = $2, password_hash_salt = $3
WHERE id = $1`

	deleteCredential = `DELETE FROM login_credentials WHERE id = $1`
)

// user_profiles
const (
	createProfile = `INSERT INTO user_profiles (name, encrypted_master_key, wrapping_key_salt, login_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	findProfileByLoginID = `SELECT id, name, encrypted_master_key, wrapping_key_salt, login_id, created_at
FROM user_profiles
WHERE login_id = $1`

	updateProfileMasterKey = `UPDATE user_profiles
SET encrypted_master_key = $2, wrapping_key_salt = $3
WHERE login_id = $1`
)

const vaultItemsTable = "vault_items"

var vaultItemColumns = []string{"id", "owner_id", "kind", "ciphertext", "created_at"}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func buildInsertItemQuery(ownerID int64, kind string, ciphertext []byte) (string, []any, error) {
	return psql().
		Insert(vaultItemsTable).
		Columns("owner_id", "kind", "ciphertext").
		Values(ownerID, kind, ciphertext).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectItemsByOwnerQuery(ownerID int64) (string, []any, error) {
	return psql().
		Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
}

func buildSelectItemQuery(id int64) (string, []any, error) {
	return psql().
		Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildDeleteItemQuery scopes the delete by owner so a row of another user
// is never removed even if the caller skipped the ownership check.
func buildDeleteItemQuery(id, ownerID int64) (string, []any, error) {
	return psql().
		Delete(vaultItemsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}
