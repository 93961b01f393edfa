package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var wishColumns = []string{"id", "user_id", "text", "priority"}

func TestWishRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWishRepo(db)

	mock.ExpectQuery("INSERT INTO wishes").
		WithArgs(1, "Bike", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	wish, err := repo.Create(1, "Bike", 7)

	assert.NoError(t, err)
	assert.NotNil(t, wish)
	assert.Equal(t, 42, wish.ID)
	assert.Equal(t, 1, wish.UserID)
	assert.Equal(t, "Bike", wish.Text)
	assert.Equal(t, 7, wish.Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishRepo_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWishRepo(db)

	// Store returns highest priority first, ties in insertion order
	mock.ExpectQuery("SELECT (.+) FROM wishes").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(wishColumns).
			AddRow(3, 1, "Bike", 9).
			AddRow(1, 1, "Book", 5).
			AddRow(2, 1, "Socks", 5))

	wishes, err := repo.ListByUser(1)

	assert.NoError(t, err)
	assert.Len(t, wishes, 3)
	assert.Equal(t, "Bike", wishes[0].Text)
	assert.Equal(t, 9, wishes[0].Priority)
	assert.Equal(t, "Book", wishes[1].Text)
	assert.Equal(t, "Socks", wishes[2].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishRepo_ListByUser_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWishRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM wishes").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(wishColumns))

	wishes, err := repo.ListByUser(7)

	assert.NoError(t, err)
	assert.Empty(t, wishes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishRepo_Delete(t *testing.T) {
	tests := []struct {
		name            string
		wishID          int
		userID          int
		affected        int64
		expectedDeleted bool
	}{
		{
			name:            "owned wish deleted",
			wishID:          42,
			userID:          1,
			affected:        1,
			expectedDeleted: true,
		},
		{
			name:            "wish absent or owned by someone else",
			wishID:          42,
			userID:          2,
			affected:        0,
			expectedDeleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWishRepo(db)

			mock.ExpectExec("DELETE FROM wishes").
				WithArgs(tt.wishID, tt.userID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.Delete(tt.wishID, tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedDeleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWishRepo_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWishRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM wishes").
		WillReturnRows(sqlmock.NewRows(wishColumns).
			AddRow(2, 2, "Drone", 10).
			AddRow(1, 1, "Bike", 7))

	wishes, err := repo.ListAll()

	assert.NoError(t, err)
	assert.Len(t, wishes, 2)
	assert.Equal(t, 10, wishes[0].Priority)
	assert.Equal(t, 2, wishes[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
