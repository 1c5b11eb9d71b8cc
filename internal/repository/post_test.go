package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/soremkrs/Twex/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Content: "hello world", UserID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		postID        uint
		currentUserID uint
		mockBehavior  func()
		expectedError bool
	}{
		{
			name:          "Success with Details",
			postID:        1,
			currentUserID: 2,
			mockBehavior: func() {
				// counts and flags are subqueries in the main select
				mock.ExpectQuery(`SELECT posts\.\*, \(SELECT COUNT\(\*\) FROM likes`).
					WithArgs(2, 2, 1, 1).
					WillReturnRows(sqlmock.NewRows(
						[]string{"id", "content", "user_id", "total_likes", "total_replies", "liked", "bookmarked"}).
						AddRow(1, "Post 1", 10, 5, 3, true, false))

				// preload user - GORM preloads after main query
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
					WithArgs(10).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "user10"))
			},
		},
		{
			name:          "Not Found",
			postID:        99,
			currentUserID: 2,
			mockBehavior: func() {
				mock.ExpectQuery(`SELECT posts\.\*, \(SELECT COUNT\(\*\) FROM likes`).
					WithArgs(2, 2, 99, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			post, err := repo.GetByID(ctx, tt.postID, tt.currentUserID)

			if tt.expectedError {
				assert.Error(t, err)
				var appErr *models.AppError
				assert.ErrorAs(t, err, &appErr)
				assert.Equal(t, "NOT_FOUND", appErr.Code)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Post 1", post.Content)
				assert.Equal(t, 5, post.TotalLikes)
				assert.Equal(t, 3, post.TotalReplies)
				assert.True(t, post.Liked)
				assert.False(t, post.Bookmarked)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_ListFeed_FollowingScope(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`posts\.user_id IN \(SELECT following_id FROM follows WHERE follower_id`).
		WithArgs(2, 2, 2, 10).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "content", "user_id", "total_likes", "total_replies", "liked", "bookmarked"}).
			AddRow(12, "newest", 5, 0, 0, false, false).
			AddRow(11, "older", 5, 1, 0, true, false))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(5, "followed"))

	posts, err := repo.ListFeed(ctx, FeedScopeFollowing, 2, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, uint(12), posts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListLikedBy_OrdersByCreatedAt(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// this scope is the one list ordered by creation date rather than id
	mock.ExpectQuery(`JOIN likes user_likes ON user_likes\.post_id = posts\.id.*ORDER BY posts\.created_at DESC`).
		WithArgs(2, 2, 7, 10).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "content", "user_id", "total_likes", "total_replies", "liked", "bookmarked"}).
			AddRow(3, "liked post", 9, 1, 0, true, false))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(9, "author"))

	posts, err := repo.ListLikedBy(ctx, 7, 10, 0, 2)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.True(t, posts[0].Liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Like_Idempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// first insert creates the row
	mock.ExpectExec(`INSERT INTO likes .*ON CONFLICT \(user_id, post_id\) DO NOTHING`).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// duplicate insert hits the conflict and does nothing
	mock.ExpectExec(`INSERT INTO likes .*ON CONFLICT \(user_id, post_id\) DO NOTHING`).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Like(ctx, 2, 1))
	assert.NoError(t, repo.Like(ctx, 2, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Unlike_AbsentRowIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Unlike(ctx, 2, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete_CascadesInTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "replies" WHERE post_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE post_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bookmarks" WHERE post_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE "posts"."id" = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(ctx, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Exists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "posts" WHERE id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
