package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFrom_EmptyRows(t *testing.T) {
	n, err := CopyFrom(context.TODO(), nil, "argo_floats", []string{"wmo", "n_profiles"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCopyFrom_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"argo_floats"}, []string{"wmo", "n_profiles"}).WillReturnResult(3)

	rows := [][]any{{"2900230", 122}, {"2902210", 247}, {"2902217", 169}}
	n, err := CopyFrom(context.Background(), mock, "argo_floats", []string{"wmo", "n_profiles"}, rows)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"argo_floats"}, []string{"wmo"}).WillReturnError(fmt.Errorf("copy failed"))

	rows := [][]any{{"2900230"}}
	_, err = CopyFrom(context.Background(), mock, "argo_floats", []string{"wmo"}, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY INTO argo_floats")
	assert.NoError(t, mock.ExpectationsWereMet())
}
