package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFollowRepository_Follow_Idempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO follows .*ON CONFLICT \(follower_id, following_id\) DO NOTHING`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO follows .*ON CONFLICT \(follower_id, following_id\) DO NOTHING`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Follow(ctx, 1, 2))
	assert.NoError(t, repo.Follow(ctx, 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Unfollow_AbsentRowIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE follower_id = $1 AND following_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Unfollow(ctx, 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_IsFollowing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE follower_id = $1 AND following_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	following, err := repo.IsFollowing(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, following)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Following_OrdersByFollowRecency(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`JOIN follows ON follows\.following_id = users\.id AND follows\.follower_id = \$1.*ORDER BY follows\.created_at DESC LIMIT \$2`).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(3, "newest_follow").
			AddRow(2, "older_follow"))

	users, err := repo.Following(ctx, 1, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "newest_follow", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// With 11 follows and a page size of 10, the second page holds the single
// oldest follow.
func TestFollowRepository_Following_SecondPage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`JOIN follows ON follows\.following_id = users\.id AND follows\.follower_id = \$1.*LIMIT \$2 OFFSET \$3`).
		WithArgs(1, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(42, "oldest_follow"))

	users, err := repo.Following(ctx, 1, 10, 10)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "oldest_follow", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Followers_Paginated(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`JOIN follows ON follows\.follower_id = users\.id AND follows\.following_id = \$1.*ORDER BY follows\.created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(1, 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(8, "page_three_fan"))

	users, err := repo.Followers(ctx, 1, 10, 20)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Counts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE follower_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE following_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	following, err := repo.CountFollowing(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), following)

	followers, err := repo.CountFollowers(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), followers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
