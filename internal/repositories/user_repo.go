package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fund-portal/backend/internal/models"
	"github.com/fund-portal/backend/internal/validation"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `wallet_address, email, phone_number, display_name, auth_method,
	       profile_image, last_login_at, login_count, created_at, updated_at`

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// CreateUserParams carries the optional profile fields accepted at signup.
// Nil means not supplied.
type CreateUserParams struct {
	Email        *string
	PhoneNumber  *string
	DisplayName  string
	ProfileImage *string
}

// LoginUpdate carries the optional fields a login may overwrite. Nil or
// empty values leave the stored column untouched; a login never clears a
// profile field.
type LoginUpdate struct {
	AuthMethod   *string
	Email        *string
	PhoneNumber  *string
	DisplayName  *string
	ProfileImage *string
}

// ProfileUpdate distinguishes absent (nil, untouched) from present-but-empty
// (explicit clear, stored as NULL).
type ProfileUpdate struct {
	Email        *string
	DisplayName  *string
	ProfileImage *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Email == nil && u.DisplayName == nil && u.ProfileImage == nil
}

func (r *UserRepo) FindByAddress(ctx context.Context, address string) (*models.User, error) {
	address = validation.NormalizeAddress(address)
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE wallet_address = $1
	`, address).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// Create inserts a new user with login_count=1. The caller may pre-check
// existence for a friendlier error, but the unique constraint on
// wallet_address is what turns a concurrent duplicate into ErrConflict.
func (r *UserRepo) Create(ctx context.Context, address, authMethod string, p CreateUserParams) (*models.User, error) {
	address = validation.NormalizeAddress(address)
	displayName := p.DisplayName
	if displayName == "" {
		displayName = models.DefaultDisplayName
	}

	var u models.User
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (wallet_address, email, phone_number, display_name, auth_method, profile_image, last_login_at, login_count)
		VALUES ($1, $2, $3, $4, $5, $6, now(), 1)
		RETURNING `+userColumns+`
	`, address, p.Email, p.PhoneNumber, displayName, authMethod, p.ProfileImage).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// FindOrCreateOnConnect is the idempotent upsert behind POST /user. It fires
// on every page load while a wallet is connected, so the existing path
// returns the row unchanged and does not bump login_count.
func (r *UserRepo) FindOrCreateOnConnect(ctx context.Context, address, authMethod, displayName string) (*models.User, error) {
	address = validation.NormalizeAddress(address)
	if displayName == "" {
		displayName = models.DefaultDisplayName
	}

	var u models.User
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (wallet_address, display_name, auth_method, last_login_at, login_count)
		VALUES ($1, $2, $3, now(), 1)
		ON CONFLICT (wallet_address) DO NOTHING
		RETURNING `+userColumns+`
	`, address, displayName, authMethod).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(mapError(err), ErrNotFound) {
		return nil, mapError(err)
	}
	// Conflict path: DO NOTHING returned no row, the user already exists.
	return r.FindByAddress(ctx, address)
}

// TouchLogin bumps login bookkeeping on an existing user and overwrites any
// optional field that was supplied non-empty.
func (r *UserRepo) TouchLogin(ctx context.Context, address string, upd LoginUpdate) (*models.User, error) {
	address = validation.NormalizeAddress(address)

	set, args := buildLoginSet(upd)
	args = append(args, address)

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE wallet_address = $%d
		RETURNING `+userColumns, strings.Join(set, ", "), len(args))

	var u models.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// buildLoginSet assembles the SET list for TouchLogin. Column names come
// from the fixed set below, never from user input; values are always bound
// through placeholders.
func buildLoginSet(upd LoginUpdate) ([]string, []any) {
	set := []string{"login_count = login_count + 1", "last_login_at = now()", "updated_at = now()"}
	var args []any
	argIdx := 1

	appendField := func(column string, v *string) {
		if v == nil || *v == "" {
			return
		}
		set = append(set, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, *v)
		argIdx++
	}

	appendField("auth_method", upd.AuthMethod)
	appendField("email", upd.Email)
	appendField("phone_number", upd.PhoneNumber)
	appendField("display_name", upd.DisplayName)
	appendField("profile_image", upd.ProfileImage)

	return set, args
}

func (r *UserRepo) UpdateDisplayName(ctx context.Context, address, name string) (*models.User, error) {
	address = validation.NormalizeAddress(address)
	var u models.User
	err := r.pool.QueryRow(ctx, `
		UPDATE users SET display_name = $1, updated_at = now()
		WHERE wallet_address = $2
		RETURNING `+userColumns,
		name, address).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// UpdateProfile applies a partial profile change. Fields left nil are
// untouched; fields supplied empty are cleared to NULL (display_name falls
// back to the default instead, it is NOT NULL in the schema).
func (r *UserRepo) UpdateProfile(ctx context.Context, address string, upd ProfileUpdate) (*models.User, error) {
	address = validation.NormalizeAddress(address)

	set, args := buildProfileSet(upd)
	args = append(args, address)

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE wallet_address = $%d
		RETURNING `+userColumns, strings.Join(set, ", "), len(args))

	var u models.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func buildProfileSet(upd ProfileUpdate) ([]string, []any) {
	set := []string{"updated_at = now()"}
	var args []any
	argIdx := 1

	appendNullable := func(column string, v *string) {
		if v == nil {
			return
		}
		set = append(set, fmt.Sprintf("%s = $%d", column, argIdx))
		if *v == "" {
			args = append(args, nil)
		} else {
			args = append(args, *v)
		}
		argIdx++
	}

	appendNullable("email", upd.Email)
	appendNullable("profile_image", upd.ProfileImage)

	if upd.DisplayName != nil {
		name := *upd.DisplayName
		if name == "" {
			name = models.DefaultDisplayName
		}
		set = append(set, fmt.Sprintf("display_name = $%d", argIdx))
		args = append(args, name)
		argIdx++
	}

	return set, args
}

func (r *UserRepo) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT wallet_address, display_name, auth_method, last_login_at, login_count, created_at
		FROM users ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.WalletAddress, &u.DisplayName, &u.AuthMethod, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) Delete(ctx context.Context, address string) (*models.User, error) {
	address = validation.NormalizeAddress(address)
	var u models.User
	err := r.pool.QueryRow(ctx, `
		DELETE FROM users WHERE wallet_address = $1
		RETURNING `+userColumns,
		address).Scan(
		&u.WalletAddress, &u.Email, &u.PhoneNumber, &u.DisplayName, &u.AuthMethod,
		&u.ProfileImage, &u.LastLoginAt, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}
