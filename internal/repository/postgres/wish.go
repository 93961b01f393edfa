package postgres

import (
	"database/sql"

	"wishbot/internal/domain"
)

// WishRepo implements repository.WishRepository
type WishRepo struct {
	db *sql.DB
}

// NewWishRepo creates a new wish repository
func NewWishRepo(db *sql.DB) *WishRepo {
	return &WishRepo{db: db}
}

// Create inserts a new wish and returns it with the assigned id
func (r *WishRepo) Create(userID int, text string, priority int) (*domain.Wish, error) {
	query := `
		INSERT INTO wishes (user_id, text, priority)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	w := domain.Wish{UserID: userID, Text: text, Priority: priority}
	if err := r.db.QueryRow(query, userID, text, priority).Scan(&w.ID); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUser returns the user's wishes, highest priority first.
// Ties keep insertion order.
func (r *WishRepo) ListByUser(userID int) ([]domain.Wish, error) {
	query := `
		SELECT id, user_id, text, priority
		FROM wishes
		WHERE user_id = $1
		ORDER BY priority DESC, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWishes(rows)
}

// Delete removes a wish only if it belongs to userID.
// Returns false when the wish is absent or owned by someone else.
func (r *WishRepo) Delete(wishID, userID int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM wishes WHERE id = $1 AND user_id = $2`, wishID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListAll returns every wish in the store, highest priority first
func (r *WishRepo) ListAll() ([]domain.Wish, error) {
	query := `
		SELECT id, user_id, text, priority
		FROM wishes
		ORDER BY priority DESC, id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWishes(rows)
}

func scanWishes(rows *sql.Rows) ([]domain.Wish, error) {
	var wishes []domain.Wish
	for rows.Next() {
		var w domain.Wish
		if err := rows.Scan(&w.ID, &w.UserID, &w.Text, &w.Priority); err != nil {
			return nil, err
		}
		wishes = append(wishes, w)
	}
	return wishes, rows.Err()
}
