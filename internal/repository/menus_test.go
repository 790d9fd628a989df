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

var menuColumns = []string{
	"menu_id", "store_id", "name", "description", "price", "image_url", "thumbnail_url", "category",
	"is_available", "is_popular", "is_recommended", "allergen_info", "nutrition_info", "preparation_time",
	"spice_level", "sort_order", "created_at",
}

func TestMenus(t *testing.T) {
	t.Parallel()
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("list filters by category and flags", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE store_id = $1 AND is_available")).
			WithArgs(int64(7), "main", true, false).
			WillReturnRows(pgxmock.NewRows(menuColumns).
				AddRow(int64(1), int64(7), "Bibimbap", nil, 9000, nil, nil, ptr("main"),
					ptr(true), true, false, nil, nil, ptr(10), ptr(2), ptr(0), created))

		menus, err := repo.ListMenus(t.Context(), models.MenuFilter{StoreID: 7, Category: "main", Popular: true})

		require.NoError(t, err)
		require.Len(t, menus, 1)
		assert.Equal(t, "Bibimbap", menus[0].Name)
		assert.Equal(t, "main", *menus[0].Category)
		assert.Equal(t, 2, *menus[0].SpiceLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list query error", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM menu")).
			WithArgs(int64(7), "", false, false).
			WillReturnError(assert.AnError)

		menus, err := repo.ListMenus(t.Context(), models.MenuFilter{StoreID: 7})

		require.Nil(t, menus)
		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to list menus of store 7")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("categories", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT category FROM menu")).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"category"}).AddRow("dessert").AddRow("main"))

		categories, err := repo.MenuCategories(t.Context(), 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"dessert", "main"}, categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM menu WHERE menu_id = $1")).
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows(menuColumns))

		menu, err := repo.GetMenu(t.Context(), 9)

		require.Nil(t, menu)
		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)
		menu := &models.Menu{StoreID: 7, Name: "Bibimbap", Price: 9000, IsAvailable: ptr(true), SortOrder: ptr(0)}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu")).
			WithArgs(int64(7), "Bibimbap", pgxmock.AnyArg(), 9000, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), ptr(true), false, false, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), ptr(0)).
			WillReturnRows(pgxmock.NewRows([]string{"menu_id", "created_at"}).AddRow(int64(4), created))

		require.NoError(t, repo.CreateMenu(t.Context(), menu))
		assert.Equal(t, int64(4), menu.ID)
		assert.Equal(t, created, menu.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save missing", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)
		menu := &models.Menu{ID: 4, StoreID: 7, Name: "Bibimbap", Price: 9500}

		mock.ExpectExec(regexp.QuoteMeta("UPDATE menu SET")).
			WithArgs(int64(7), "Bibimbap", pgxmock.AnyArg(), 9500, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), false, false, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.ErrorIs(t, repo.SaveMenu(t.Context(), menu), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		mock, repo := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM menu WHERE menu_id = $1")).
			WithArgs(int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteMenu(t.Context(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
