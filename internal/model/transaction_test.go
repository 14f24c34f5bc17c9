package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionItemBeforeSaveRecomputesSubtotal(t *testing.T) {
	item := TransactionItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("9.99"),
		// Stale subtotal on purpose; the hook must overwrite it.
		Subtotal: decimal.RequireFromString("1.00"),
	}

	require.NoError(t, item.BeforeSave(nil))

	assert.Equal(t, "29.97", item.Subtotal.StringFixed(2))
}

func TestEmployeePasswordHashing(t *testing.T) {
	employee := Employee{Username: "cashier1", Position: PositionCashier}

	require.NoError(t, employee.SetPassword("s3cret!"))

	assert.NotEqual(t, "s3cret!", employee.Password)
	assert.True(t, employee.CheckPassword("s3cret!"))
	assert.False(t, employee.CheckPassword("wrong"))
}

func TestEmployeeHelpers(t *testing.T) {
	admin := Employee{FirstName: "Dana", LastName: "Reyes", Position: PositionAdmin}
	assert.Equal(t, "Dana Reyes", admin.FullName())
	assert.True(t, admin.IsAdmin())

	cashier := Employee{Position: PositionCashier}
	assert.False(t, cashier.IsAdmin())
}
