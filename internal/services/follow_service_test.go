package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestInitialStatus(t *testing.T) {
	t.Run("public followee auto-approves", func(t *testing.T) {
		assert.Equal(t, models.FollowStatusApproved, initialStatus(false))
	})

	t.Run("private followee starts pending", func(t *testing.T) {
		assert.Equal(t, models.FollowStatusPending, initialStatus(true))
	})
}

func TestRequestFollow(t *testing.T) {
	followerID := uuid.New()
	followeeID := uuid.New()

	t.Run("self follow is a conflict without touching storage", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		_, err := svc.RequestFollow(followerID, followerID)
		assert.ErrorIs(t, err, ErrSelfFollow)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate edge surfaces as conflict", func(t *testing.T) {
		// Two racing inserts: the loser hits the unique pair index and must
		// come back as a deterministic conflict, not a driver error.
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_private"}).
				AddRow(followeeID.String(), "target", false))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "blocks"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "follows"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_follows_pair"})
		mock.ExpectRollback()

		_, err := svc.RequestFollow(followerID, followeeID)
		assert.ErrorIs(t, err, ErrAlreadyFollowing)
		assert.ErrorIs(t, err, ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("block in either direction forbids the edge", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_private"}).
				AddRow(followeeID.String(), "target", true))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "blocks"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		_, err := svc.RequestFollow(followerID, followeeID)
		assert.ErrorIs(t, err, ErrBlocked)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApproveFollow(t *testing.T) {
	followerID := uuid.New()
	followeeID := uuid.New()
	edgeID := uuid.New()

	edgeRows := func(status string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "follower_id", "followee_id", "status"}).
			AddRow(edgeID.String(), followerID.String(), followeeID.String(), status)
	}

	t.Run("approving a non-pending edge is an invalid transition", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		mock.ExpectQuery(`SELECT \* FROM "follows"`).
			WillReturnRows(edgeRows(models.FollowStatusApproved))

		_, err := svc.ApproveFollow(followeeID, edgeID)
		assert.ErrorIs(t, err, ErrNotPending)
		assert.ErrorIs(t, err, ErrInvalidState)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("only the followee may approve", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		mock.ExpectQuery(`SELECT \* FROM "follows"`).
			WillReturnRows(edgeRows(models.FollowStatusPending))

		_, err := svc.ApproveFollow(followerID, edgeID)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.ErrorIs(t, err, ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing edge is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		mock.ExpectQuery(`SELECT \* FROM "follows"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := svc.ApproveFollow(followeeID, edgeID)
		assert.ErrorIs(t, err, ErrFollowNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRejectFollow(t *testing.T) {
	followerID := uuid.New()
	followeeID := uuid.New()
	edgeID := uuid.New()

	t.Run("rejecting a non-pending edge is an invalid transition", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewFollowService(db)

		mock.ExpectQuery(`SELECT \* FROM "follows"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "followee_id", "status"}).
				AddRow(edgeID.String(), followerID.String(), followeeID.String(), models.FollowStatusApproved))

		err := svc.RejectFollow(followeeID, edgeID)
		assert.ErrorIs(t, err, ErrNotPending)
		assert.ErrorIs(t, err, ErrInvalidState)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUnfollowMissingEdge(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFollowService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "follows"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Unfollow(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrFollowNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
