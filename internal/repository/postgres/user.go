package postgres

import (
	"database/sql"

	"wishbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetOrCreate returns the user for telegramID, inserting a new row if none
// exists. An existing user is returned unchanged, the name is never overwritten.
func (r *UserRepo) GetOrCreate(telegramID int64, name, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (telegram_id, name, username)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (telegram_id) DO NOTHING
		RETURNING id, telegram_id, COALESCE(username, ''), name, is_admin
	`
	user, err := r.scanUser(r.db.QueryRow(query, telegramID, name, username))
	if err == sql.ErrNoRows {
		// Row already existed, the insert did nothing
		return r.FindByTelegramID(telegramID)
	}
	return user, err
}

// FindByTelegramID returns the user for telegramID, or nil if not registered
func (r *UserRepo) FindByTelegramID(telegramID int64) (*domain.User, error) {
	query := `
		SELECT id, telegram_id, COALESCE(username, ''), name, is_admin
		FROM users WHERE telegram_id = $1
	`
	user, err := r.scanUser(r.db.QueryRow(query, telegramID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// UpdateUsername refreshes the display handle, returns nil if user not found
func (r *UserRepo) UpdateUsername(telegramID int64, username string) (*domain.User, error) {
	query := `
		UPDATE users SET username = NULLIF($2, '')
		WHERE telegram_id = $1
		RETURNING id, telegram_id, COALESCE(username, ''), name, is_admin
	`
	user, err := r.scanUser(r.db.QueryRow(query, telegramID, username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// Delete removes the user; owned wishes go with it via FK cascade
func (r *UserRepo) Delete(telegramID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE telegram_id = $1`, telegramID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListAll returns all registered users
func (r *UserRepo) ListAll() ([]domain.User, error) {
	query := `
		SELECT id, telegram_id, COALESCE(username, ''), name, is_admin
		FROM users ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.TelegramID, &u.Username, &u.Name, &u.IsAdmin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *UserRepo) scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.Name, &u.IsAdmin); err != nil {
		return nil, err
	}
	return &u, nil
}
