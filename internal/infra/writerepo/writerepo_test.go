//go:build unit

package writerepo

import (
	"context"
	"testing"

	"invoice-admin/internal/infra"
	"invoice-admin/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDB captures the statements a repository issues.
type recordingDB struct {
	sql  []string
	args [][]any
	err  error
}

func (f *recordingDB) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, arguments)
	return pgconn.NewCommandTag("EXEC 1"), f.err
}

func (f *recordingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("not expected on the write path")
}

func (f *recordingDB) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("not expected on the write path")
}

func TestUserRepositoryCreate(t *testing.T) {
	t.Run("insert is idempotent on id", func(t *testing.T) {
		fake := &recordingDB{}
		repo := NewUserRepository(fake)

		err := repo.Create(context.Background(), commands.CreateUserParams{
			ID:           "u-1",
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         "admin",
		})

		require.NoError(t, err)
		require.Len(t, fake.sql, 1)
		assert.Contains(t, fake.sql[0], "ON CONFLICT (id) DO NOTHING")
		assert.Equal(t, []any{"u-1", "Alice", "alice@example.com", "$2a$10$hash", "admin"}, fake.args[0])
	})

	t.Run("driver failure is wrapped as a repository error", func(t *testing.T) {
		fake := &recordingDB{err: assert.AnError}
		repo := NewUserRepository(fake)

		err := repo.Create(context.Background(), commands.CreateUserParams{ID: "u-1"})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	fake := &recordingDB{}
	repo := NewUserRepository(fake)

	err := repo.Update(context.Background(), commands.UpdateUserParams{
		ID:    "u-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "user",
	})

	require.NoError(t, err)
	require.Len(t, fake.sql, 1)
	assert.NotContains(t, fake.sql[0], "password")
	assert.Equal(t, []any{"Alice", "alice@example.com", "user", "u-1"}, fake.args[0])
}

func TestInvoiceRepositoryCreate(t *testing.T) {
	fake := &recordingDB{}
	repo := NewInvoiceRepository(fake)

	err := repo.Create(context.Background(), commands.CreateInvoiceParams{
		CustomerID:  "c1",
		AmountCents: 4999,
		Status:      "pending",
		Date:        "2026-08-29",
	})

	require.NoError(t, err)
	require.Len(t, fake.args, 1)
	assert.Equal(t, []any{"c1", int32(4999), "pending", "2026-08-29"}, fake.args[0])
}

func TestInvoiceRepositoryDelete(t *testing.T) {
	t.Run("missing id is a silent no-op", func(t *testing.T) {
		fake := &recordingDB{}
		repo := NewInvoiceRepository(fake)

		id := uuid.New()
		err := repo.Delete(context.Background(), id)

		require.NoError(t, err)
		require.Len(t, fake.args, 1)
		assert.Equal(t, []any{id}, fake.args[0])
	})

	t.Run("driver failure is wrapped", func(t *testing.T) {
		fake := &recordingDB{err: assert.AnError}
		repo := NewInvoiceRepository(fake)

		err := repo.Delete(context.Background(), uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
