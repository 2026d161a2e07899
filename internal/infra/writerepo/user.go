package writerepo

import (
	"context"

	"invoice-admin/internal/infra"
	"invoice-admin/internal/infra/db"
	"invoice-admin/internal/usecase/commands"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create is an idempotent insert: a conflicting id leaves the existing row
// untouched and reports success.
func (r *UserRepository) Create(ctx context.Context, arg commands.CreateUserParams) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password, role)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		arg.ID, arg.Name, arg.Email, arg.PasswordHash, arg.Role,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// Update never touches id or password; credentials are not modifiable through
// this pipeline.
func (r *UserRepository) Update(ctx context.Context, arg commands.UpdateUserParams) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, role = $3
		 WHERE id = $4`,
		arg.Name, arg.Email, arg.Role, arg.ID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}
