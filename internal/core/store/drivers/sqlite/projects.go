package sqlite

import (
	"context"
	"time"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/store"
)

type projectsRepo struct {
	q querier
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO projects (id, name, encrypted_secrets, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.EncryptedSecrets, now, now,
	)
	return err
}

func (r *projectsRepo) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var p domain.Project
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, encrypted_secrets, created_at, updated_at
		FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.EncryptedSecrets, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) UpdateEncryptedSecrets(ctx context.Context, projectID, ciphertext string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE projects SET encrypted_secrets = ?, updated_at = ?
		WHERE id = ?`,
		ciphertext, time.Now().UTC(), projectID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *projectsRepo) GetMembership(ctx context.Context, projectID string) (map[string]domain.Role, error) {
	// The project row itself distinguishes "no such project" from "project
	// with no members"; callers depend on that distinction.
	var exists int
	err := r.q.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?`, projectID).Scan(&exists)
	if err != nil {
		return nil, mapNotFound(err)
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT user_id, role FROM project_members WHERE project_id = ?`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make(map[string]domain.Role)
	for rows.Next() {
		var userID, raw string
		if err := rows.Scan(&userID, &raw); err != nil {
			return nil, err
		}
		role, err := domain.ParseRole(raw)
		if err != nil {
			return nil, err
		}
		members[userID] = role
	}
	return members, rows.Err()
}

func (r *projectsRepo) SetMembership(ctx context.Context, projectID string, members map[string]domain.Role) error {
	var exists int
	err := r.q.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?`, projectID).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}

	if _, err := r.q.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, projectID); err != nil {
		return err
	}

	now := time.Now().UTC()
	for userID, role := range members {
		if _, err := r.q.ExecContext(ctx, `
			INSERT INTO project_members (project_id, user_id, role, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			projectID, userID, role.String(), now, now,
		); err != nil {
			return err
		}
	}
	return nil
}
