package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkUpsert_EmptyRows(t *testing.T) {
	n, err := BulkUpsert(context.TODO(), nil, UpsertConfig{
		Table:        "argo_profiles",
		Columns:      []string{"wmo", "cycle_number"},
		ConflictKeys: []string{"wmo", "cycle_number"},
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestBulkUpsert_NoColumns(t *testing.T) {
	_, err := BulkUpsert(context.TODO(), nil, UpsertConfig{
		Table:        "argo_profiles",
		ConflictKeys: []string{"wmo"},
	}, [][]any{{"2902217", 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns specified")
}

func TestBulkUpsert_NoConflictKeys(t *testing.T) {
	_, err := BulkUpsert(context.TODO(), nil, UpsertConfig{
		Table:   "argo_profiles",
		Columns: []string{"wmo", "cycle_number"},
	}, [][]any{{"2902217", 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict keys specified")
}

func TestBulkUpsert_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cols := []string{"wmo", "cycle_number", "temp"}
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TEMP TABLE "_tmp_upsert_argo_profiles"`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_argo_profiles"}, cols).WillReturnResult(2)
	mock.ExpectExec(`INSERT INTO "argo_profiles"`).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	rows := [][]any{
		{"2902217", 1, 27.2},
		{"2902217", 2, 28.0},
	}
	n, err := BulkUpsert(context.Background(), mock, UpsertConfig{
		Table:        "argo_profiles",
		Columns:      cols,
		ConflictKeys: []string{"wmo", "cycle_number"},
	}, rows)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSanitizeTable(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"argo_profiles", `"argo_profiles"`},
		{"public.argo_profiles", `"public"."argo_profiles"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeTable(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQuoteAndJoin(t *testing.T) {
	result := quoteAndJoin([]string{"wmo", "cycle_number", "temp"})
	assert.Equal(t, `"wmo", "cycle_number", "temp"`, result)
}
