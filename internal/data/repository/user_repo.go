package repository

import (
	"context"
	"fmt"

	"bakerist/internal/data/entity"
	"bakerist/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailAndRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error)
	FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

// checkRole rejects rows whose role column holds an unknown value. Roles
// are plain text in storage, so the closed enum is enforced on every read.
func checkRole(user *entity.User) error {
	if !user.Role.Valid() {
		return fmt.Errorf("user %s has unknown role %q", user.ID.String(), user.Role)
	}
	return nil
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, contact_no, barangay, sitio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.ContactNo,
		user.Barangay,
		user.Sitio,
		user.CreatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, contact_no, barangay, sitio, created_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ContactNo,
		&user.Barangay,
		&user.Sitio,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	if err := checkRole(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, contact_no, barangay, sitio, created_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ContactNo,
		&user.Barangay,
		&user.Sitio,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	if err := checkRole(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmailAndRole narrows the lookup to one role so the admin login
// never matches a customer row with the same email.
func (ur *userRepository) FindByEmailAndRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, contact_no, barangay, sitio, created_at
		FROM users
		WHERE email = $1 AND role = $2
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email, role).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ContactNo,
		&user.Barangay,
		&user.Sitio,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email and role",
			zap.Error(err),
			zap.String("email", email),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("find user by email %s role %s: %w", email, role, err)
	}

	if err := checkRole(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (ur *userRepository) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, contact_no, barangay, sitio, created_at
		FROM users
		WHERE role = $1
		ORDER BY created_at DESC
	`

	rows, err := ur.db.Query(ctx, query, role)
	if err != nil {
		ur.log.Error("Failed to find users by role",
			zap.Error(err),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("find users by role %s: %w", role, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.ContactNo,
			&user.Barangay,
			&user.Sitio,
			&user.CreatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		if err := checkRole(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}
