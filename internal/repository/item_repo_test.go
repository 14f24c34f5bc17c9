package repository

import (
	"testing"

	"go-pos-backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRepoTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func itemRows(item *model.Item) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "legacy_item_id", "name", "price", "quantity"}).
		AddRow(item.ID, item.LegacyItemID, item.Name, item.Price, item.Quantity)
}

func TestItemRepoFindForUpdateLocksRow(t *testing.T) {
	db, mock := newRepoTestDB(t)
	repo := NewItemRepo(db)

	item := &model.Item{LegacyItemID: 1001, Name: "DVD Player", Price: decimal.RequireFromString("10.00"), Quantity: 5}
	item.ID = uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "items" WHERE id = .* FOR UPDATE`).
		WillReturnRows(itemRows(item))

	got, err := repo.FindForUpdate(db, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, 5, got.Quantity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepoReduceQuantityGuarded(t *testing.T) {
	db, mock := newRepoTestDB(t)
	repo := NewItemRepo(db)
	id := uuid.New()

	// guard satisfied: one row updated
	mock.ExpectExec(`UPDATE "items" SET .* WHERE id = .* AND quantity >= `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ReduceQuantity(db, id, 2, "emp-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// guard rejects: zero rows updated, caller must abort
	mock.ExpectExec(`UPDATE "items" SET .* WHERE id = .* AND quantity >= `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.ReduceQuantity(db, id, 99, "emp-1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepoIncreaseQuantity(t *testing.T) {
	db, mock := newRepoTestDB(t)
	repo := NewItemRepo(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "items" SET .* WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncreaseQuantity(db, id, 1, "return"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepoFindAllOrdersByLegacyID(t *testing.T) {
	db, mock := newRepoTestDB(t)
	repo := NewItemRepo(db)

	first := &model.Item{LegacyItemID: 1, Name: "A", Price: decimal.Zero, Quantity: 1}
	first.ID = uuid.New()
	second := &model.Item{LegacyItemID: 2, Name: "B", Price: decimal.Zero, Quantity: 1}
	second.ID = uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "items" .* ORDER BY legacy_item_id ASC`).
		WillReturnRows(itemRows(first).AddRow(second.ID, second.LegacyItemID, second.Name, second.Price, second.Quantity))

	items, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].LegacyItemID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepoFindByIDNotFound(t *testing.T) {
	db, mock := newRepoTestDB(t)
	repo := NewItemRepo(db)

	mock.ExpectQuery(`SELECT .* FROM "items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
