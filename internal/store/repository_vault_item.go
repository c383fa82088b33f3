// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/models"
)

// vaultItemRepository is the PostgreSQL-backed implementation of
// [VaultItemRepository]. Queries are built with squirrel (see sql_queries.go).
type vaultItemRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by db.
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	logger.Debug().Msg("creating vault item repository")
	return &vaultItemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem inserts item and fills in the generated id and creation time.
func (r *vaultItemRepository) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(item.OwnerID, string(item.Kind), item.Ciphertext)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.CreateItem").Msg("failed to build insert query")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrItemNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "*vaultItemRepository.CreateItem").
			Int64("owner_id", item.OwnerID).
			Msg("failed to insert vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// ListItems returns every item of ownerID ordered by id.
func (r *vaultItemRepository) ListItems(ctx context.Context, ownerID int64) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.ListItems").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.ListItems").Int64("owner_id", ownerID).Msg("failed to query vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultItemRepository.ListItems").Msg("failed to scan vault item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.ListItems").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// FindItem returns the item with the given id regardless of its owner.
// The ownership decision belongs to the caller.
func (r *vaultItemRepository) FindItem(ctx context.Context, id int64) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.FindItem").Msg("failed to build select query")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.FindItem").Int64("id", id).Msg("failed to scan vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// DeleteItem removes item id of ownerID. Zero affected rows means the item
// does not exist for that owner.
func (r *vaultItemRepository) DeleteItem(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.DeleteItem").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultItemRepository.DeleteItem").
			Int64("id", id).
			Int64("owner_id", ownerID).
			Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.VaultItem, error) {
	var (
		item models.VaultItem
		kind string
	)
	if err := row.Scan(&item.ID, &item.OwnerID, &kind, &item.Ciphertext, &item.CreatedAt); err != nil {
		return models.VaultItem{}, err
	}
	item.Kind = models.ItemKind(kind)

	return item, nil
}
