package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	FindAll(limit int) ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	GetSalesMovement(startDate, endDate time.Time) ([]SalesMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

// SalesMovementData aggregates daily totals for the dashboard chart
type SalesMovementData struct {
	Date        string          `json:"date"`
	SaleTotal   decimal.Decimal `json:"sale_total"`
	RentalTotal decimal.Decimal `json:"rental_total"`
}

// DashboardStats for the overview screen
type DashboardStats struct {
	TotalItems     int64           `json:"total_items"`
	LowStockCount  int64           `json:"low_stock_count"`
	ActiveRentals  int64           `json:"active_rentals"`
	OverdueRentals int64           `json:"overdue_rentals"`
	TodaySales     decimal.Decimal `json:"today_sales"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create persists the transaction with its item lines inside the caller's
// unit of work. GORM inserts the Items children in the same statement batch.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindAll(limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.Preload("Items").Preload("Employee").Preload("Customer").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.
		Preload("Items.Item").
		Preload("Employee").
		Preload("Customer").
		Preload("Rentals").
		First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) GetSalesMovement(startDate, endDate time.Time) ([]SalesMovementData, error) {
	var results []SalesMovementData

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN transaction_type = 'Sale' THEN total_amount ELSE 0 END), 0) as sale_total,
			COALESCE(SUM(CASE WHEN transaction_type = 'Rental' THEN total_amount ELSE 0 END), 0) as rental_total
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data SalesMovementData
		if err := rows.Scan(&data.Date, &data.SaleTotal, &data.RentalTotal); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *transactionRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Item{}).Count(&stats.TotalItems)

	// Low Stock Count (quantity < 10)
	r.db.Model(&model.Item{}).Where("quantity < ?", 10).Count(&stats.LowStockCount)

	r.db.Model(&model.Rental{}).Where("is_returned = ?", false).Count(&stats.ActiveRentals)
	r.db.Model(&model.Rental{}).
		Where("is_returned = ? AND due_date < ?", false, time.Now()).
		Count(&stats.OverdueRentals)

	r.db.Model(&model.Transaction{}).
		Where("transaction_type = ? AND DATE(created_at) = CURRENT_DATE", model.TxSale).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TodaySales)

	return &stats, nil
}
