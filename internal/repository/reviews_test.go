package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews(t *testing.T) {
	t.Parallel()
	created := time.Date(2025, 5, 3, 20, 0, 0, 0, time.UTC)
	columns := []string{
		"id", "reservation_id", "user_id", "restaurant_id", "user_name", "rating", "content", "images",
		"owner_comment", "owner_comment_at", "created_at", "updated_at",
	}

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)
		review := &models.Review{
			ReservationID: ptr(int64(11)), UserID: 3, RestaurantID: 7, UserName: "kim", Rating: 5,
			Content: "great", Images: []string{"a.jpg"},
		}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
			WithArgs(ptr(int64(11)), int64(3), int64(7), "kim", 5, "great", []string{"a.jpg"}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(8), created, created))

		require.NoError(t, repo.CreateReview(t.Context(), review))
		assert.Equal(t, int64(8), review.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create error", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).WillReturnError(assert.AnError)

		err := repo.CreateReview(t.Context(), &models.Review{UserID: 3, RestaurantID: 7, Rating: 4})

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to insert review")
	})

	t.Run("list by restaurant", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM reviews WHERE restaurant_id = $1 ORDER BY created_at DESC")).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(8), nil, int64(3), int64(7), "kim", 4, "good", []string{}, ptr("thanks"), &created,
					created, created))

		reviews, err := repo.ListReviewsByRestaurant(t.Context(), 7)

		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "thanks", *reviews[0].OwnerComment)
		assert.Nil(t, reviews[0].ReservationID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list by user error", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM reviews WHERE user_id = $1")).
			WithArgs(int64(3)).
			WillReturnError(assert.AnError)

		reviews, err := repo.ListReviewsByUser(t.Context(), 3)

		require.Nil(t, reviews)
		require.ErrorContains(t, err, "failed to list reviews of user 3")
	})

	t.Run("owner comment on missing review", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE reviews SET owner_comment = $2")).
			WithArgs(int64(9), "thanks", created).
			WillReturnRows(pgxmock.NewRows(columns))

		review, err := repo.SetOwnerComment(t.Context(), 9, "thanks", created)

		require.Nil(t, review)
		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
