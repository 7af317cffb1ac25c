package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ampedent/internal/models"
)

// CreateUser inserts a new admin account. The password must already be
// hashed; role defaults to admin when empty.
func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	if u.Role == models.RoleNone {
		u.Role = models.RoleAdmin
	}

	now := time.Now()
	res, err := db.ExecContext(ctx,
		"INSERT INTO users (name, password, role, created_at) VALUES (?, ?, ?, ?)",
		u.Name, u.Password, u.Role, now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	u.ID = id
	u.CreatedAt = now
	return nil
}

// GetUserByName returns an account by its unique name, or ErrNotFound.
func (db *DB) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	return db.getUser(ctx, "SELECT id, name, password, role, created_at FROM users WHERE name = ?", name)
}

// GetUserByID returns an account by id, or ErrNotFound.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return db.getUser(ctx, "SELECT id, name, password, role, created_at FROM users WHERE id = ?", id)
}

func (db *DB) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Password, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListUsers returns all accounts without their password hashes.
func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, name, role, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateUser changes the name and/or password hash of an account.
// Empty fields are left untouched. Returns ErrNotFound for unknown ids.
func (db *DB) UpdateUser(ctx context.Context, id int64, name, passwordHash string) error {
	if _, err := db.GetUserByID(ctx, id); err != nil {
		return err
	}

	query := "UPDATE users SET "
	var args []any

	if name != "" {
		query += "name = ?"
		args = append(args, name)
	}
	if passwordHash != "" {
		if len(args) > 0 {
			query += ", "
		}
		query += "password = ?"
		args = append(args, passwordHash)
	}
	if len(args) == 0 {
		return nil
	}

	query += " WHERE id = ?"
	args = append(args, id)

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteUser removes an account. Superadmin accounts are protected and
// return ErrSuperAdminProtected regardless of who asks.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	u, err := db.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == models.RoleSuperAdmin {
		return ErrSuperAdminProtected
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
