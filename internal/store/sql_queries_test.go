// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-roster-bot/models"
)

func Test_buildSelectUsersQuery(t *testing.T) {
	query, args, err := buildSelectUsersQuery(sq.Question)
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, username FROM bot_users ORDER BY position", query)
	assert.Empty(t, args)
}

func Test_buildDeleteUsersQuery(t *testing.T) {
	query, args, err := buildDeleteUsersQuery(sq.Dollar)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM bot_users", query)
	assert.Empty(t, args)
}

func Test_buildInsertUsersQuery(t *testing.T) {
	users := []models.BotUser{{CallerID: 10, Handle: "@a"}, {CallerID: 20, Handle: "@b"}}

	tests := []struct {
		name      string
		format    sq.PlaceholderFormat
		wantQuery string
	}{
		{
			name:      "sqlite placeholders",
			format:    sq.Question,
			wantQuery: "INSERT INTO bot_users (position,user_id,username) VALUES (?,?,?),(?,?,?)",
		},
		{
			name:      "postgres placeholders",
			format:    sq.Dollar,
			wantQuery: "INSERT INTO bot_users (position,user_id,username) VALUES ($1,$2,$3),($4,$5,$6)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertUsersQuery(tt.format, 7, users)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{int64(7), int64(10), "@a", int64(8), int64(20), "@b"}, args)
		})
	}
}

func Test_buildInsertUsersQuery_NoRows(t *testing.T) {
	_, _, err := buildInsertUsersQuery(sq.Question, 0, nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}
