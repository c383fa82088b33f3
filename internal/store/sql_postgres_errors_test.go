// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock wrapped", fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"statement completion unknown", pgError(pgerrcode.StatementCompletionUnknown), Retryable},
		{"query canceled", pgError(pgerrcode.QueryCanceled), NonRetryable},
		{"admin shutdown", pgError(pgerrcode.AdminShutdown), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"unknown code", pgError("XX999"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
