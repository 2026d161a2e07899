package readstore

import (
	"context"

	"invoice-admin/internal/infra"
	"invoice-admin/internal/infra/db"
	"invoice-admin/internal/pkg/pgconv"
	"invoice-admin/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, role
		 FROM users
		 ORDER BY name, id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}

	return views, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id string) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, role
		 FROM users
		 WHERE id = $1`,
		id,
	)

	var v queries.UserView
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Role); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}

// FindByEmail also returns the stored password hash for credential checks.
// The hash stays out of UserView so it cannot leak through listing payloads.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, role
		 FROM users
		 WHERE email = $1`,
		email,
	)

	var v queries.UserView
	var hash string
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &hash, &v.Role); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, hash, nil
}
