// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/satu-password/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultItemValidator_Create(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateItemRequest
		wantErr error
	}{
		{name: "note", req: models.CreateItemRequest{Kind: models.ItemKindNote, Content: "hello"}},
		{name: "password", req: models.CreateItemRequest{Kind: models.ItemKindPassword, Content: "hunter2"}},
		{name: "unknown kind", req: models.CreateItemRequest{Kind: "card", Content: "x"}, wantErr: ErrInvalidItemKind},
		{name: "empty content", req: models.CreateItemRequest{Kind: models.ItemKindNote}, wantErr: ErrEmptyContent},
		{name: "content too large", req: models.CreateItemRequest{Kind: models.ItemKindNote, Content: strings.Repeat("a", MaxContentSize+1)}, wantErr: ErrContentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultItemValidator_Delete(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DeleteItemRequest{ID: 1}))
	assert.ErrorIs(t, v.Validate(ctx, &models.DeleteItemRequest{ID: 0}), ErrInvalidItemID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteItemRequest{ID: -4}), ErrInvalidItemID)
}

func TestVaultItemValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewVaultItemValidator().Validate(context.Background(), "x"), ErrUnsupportedType)
}
