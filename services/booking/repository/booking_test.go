package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BookingRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func bookingRows(b *models.Booking) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"booking_id", "user_id", "hotel_id", "room_id",
		"check_in_date", "check_out_date", "total_amount", "status",
		"created_at", "updated_at",
	}).AddRow(
		b.BookingID, b.UserID, b.HotelID, b.RoomID,
		b.CheckInDate, b.CheckOutDate, b.TotalAmount, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		BookingID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		UserID:       uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		HotelID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440002"),
		RoomID:       uuid.MustParse("550e8400-e29b-41d4-a716-446655440003"),
		CheckInDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TotalAmount:  250000,
		Status:       models.BookingStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestCreateBooking(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, b *models.Booking)
		assertFunc func(t *testing.T, created *models.Booking, err error)
	}{
		{
			name: "Success - No Conflict",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectExec("SELECT pg_advisory_xact_lock").
					WithArgs(b.RoomID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT EXISTS").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("INSERT INTO bookings").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, created *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, models.BookingStatusPending, created.Status)
				assert.NotEqual(t, uuid.Nil, created.BookingID)
			},
		},
		{
			name: "Conflict - Overlapping Booking",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectExec("SELECT pg_advisory_xact_lock").
					WithArgs(b.RoomID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT EXISTS").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, created *models.Booking, err error) {
				assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
				assert.Nil(t, created)
			},
		},
		{
			name: "Error - Conflict Check Fails",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectBegin()
				mock.ExpectExec("SELECT pg_advisory_xact_lock").
					WithArgs(b.RoomID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT EXISTS").
					WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, created *models.Booking, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, booking.ErrRoomUnavailable)
				assert.Nil(t, created)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			b := sampleBooking()
			tc.mockSetup(mock, b)

			created, err := repo.CreateBooking(context.Background(), b)
			tc.assertFunc(t, created, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// conflictQueryPattern pins the comparison direction and bind positions of
// the overlap predicate: the candidate check-out binds as $5 against
// check_in_date, the candidate check-in as $4 against check_out_date.
const conflictQueryPattern = `SELECT EXISTS \(\s*SELECT 1 FROM bookings\s*WHERE room_id = \$1\s*AND status IN \(\$2, \$3\)\s*AND check_in_date < \$5\s*AND check_out_date > \$4\s*\)`

func TestHasConflict(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	// Room occupied 2024-06-01 to 2024-06-05, checkout day free
	existingIn := date(2024, 6, 1)
	existingOut := date(2024, 6, 5)

	testCases := []struct {
		name         string
		checkIn      time.Time
		checkOut     time.Time
		wantConflict bool
	}{
		{
			name:         "Overlapping Tail Conflicts",
			checkIn:      date(2024, 6, 4),
			checkOut:     date(2024, 6, 8),
			wantConflict: true,
		},
		{
			name:         "Checkout Day Is Free",
			checkIn:      date(2024, 6, 5),
			checkOut:     date(2024, 6, 8),
			wantConflict: false,
		},
		{
			name:         "Ending On Checkin Day Is Free",
			checkIn:      date(2024, 5, 1),
			checkOut:     date(2024, 6, 1),
			wantConflict: false,
		},
		{
			name:         "Fully Contained Range Conflicts",
			checkIn:      date(2024, 6, 2),
			checkOut:     date(2024, 6, 3),
			wantConflict: true,
		},
		{
			name:         "Enclosing Range Conflicts",
			checkIn:      date(2024, 5, 30),
			checkOut:     date(2024, 6, 10),
			wantConflict: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			roomID := sampleBooking().RoomID

			// What the database computes for the occupied range under the
			// half-open rule the query encodes
			exists := existingIn.Before(tc.checkOut) && existingOut.After(tc.checkIn)
			mock.ExpectQuery(conflictQueryPattern).
				WithArgs(roomID, models.BookingStatusPending, models.BookingStatusConfirmed, tc.checkIn, tc.checkOut).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))

			conflict, err := repo.HasConflict(context.Background(), roomID, tc.checkIn, tc.checkOut)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantConflict, conflict)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBooking(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, b *models.Booking)
		assertFunc func(t *testing.T, got *models.Booking, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE booking_id").
					WithArgs(b.BookingID).
					WillReturnRows(bookingRows(b))
			},
			assertFunc: func(t *testing.T, got *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, int64(250000), got.TotalAmount)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE booking_id").
					WithArgs(b.BookingID).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, got *models.Booking, err error) {
				assert.ErrorIs(t, err, booking.ErrBookingNotFound)
				assert.Nil(t, got)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			b := sampleBooking()
			tc.mockSetup(mock, b)

			got, err := repo.GetBooking(context.Background(), b.BookingID)
			tc.assertFunc(t, got, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConfirmBooking(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, b *models.Booking)
		assertFunc func(t *testing.T, got *models.Booking, err error)
	}{
		{
			name: "Success - Pending Promoted",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				confirmed := *b
				confirmed.Status = models.BookingStatusConfirmed
				mock.ExpectQuery("UPDATE bookings").
					WillReturnRows(bookingRows(&confirmed))
			},
			assertFunc: func(t *testing.T, got *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, models.BookingStatusConfirmed, got.Status)
			},
		},
		{
			name: "Idempotent - Already Confirmed",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				confirmed := *b
				confirmed.Status = models.BookingStatusConfirmed
				mock.ExpectQuery("UPDATE bookings").
					WillReturnRows(bookingRows(&confirmed))
			},
			assertFunc: func(t *testing.T, got *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, models.BookingStatusConfirmed, got.Status)
			},
		},
		{
			name: "Cancelled Booking Returns ErrBookingCancelled",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectQuery("UPDATE bookings").
					WillReturnError(sql.ErrNoRows)
				cancelled := *b
				cancelled.Status = models.BookingStatusCancelled
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE booking_id").
					WithArgs(b.BookingID).
					WillReturnRows(bookingRows(&cancelled))
			},
			assertFunc: func(t *testing.T, got *models.Booking, err error) {
				assert.ErrorIs(t, err, booking.ErrBookingCancelled)
				assert.Nil(t, got)
			},
		},
		{
			name: "Unknown Booking Returns ErrBookingNotFound",
			mockSetup: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectQuery("UPDATE bookings").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE booking_id").
					WithArgs(b.BookingID).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, got *models.Booking, err error) {
				assert.ErrorIs(t, err, booking.ErrBookingNotFound)
				assert.Nil(t, got)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			b := sampleBooking()
			tc.mockSetup(mock, b)

			got, err := repo.ConfirmBooking(context.Background(), b.BookingID)
			tc.assertFunc(t, got, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancelBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	b := sampleBooking()
	cancelled := *b
	cancelled.Status = models.BookingStatusCancelled
	mock.ExpectQuery("UPDATE bookings").
		WillReturnRows(bookingRows(&cancelled))

	got, err := repo.CancelBooking(context.Background(), b.BookingID)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		b := sampleBooking()
		mock.ExpectExec("DELETE FROM bookings").
			WithArgs(b.BookingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteBooking(context.Background(), b.BookingID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		b := sampleBooking()
		mock.ExpectExec("DELETE FROM bookings").
			WithArgs(b.BookingID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteBooking(context.Background(), b.BookingID)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
