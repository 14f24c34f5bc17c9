package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrItemNotFound          = errors.New("item not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrEmptyCart             = errors.New("cart must contain at least one item")
	ErrInvalidQuantity       = errors.New("quantity must be greater than zero")
	ErrInvalidPhone          = errors.New("phone number must be 10-15 digits")
	ErrInsufficientInventory = errors.New("insufficient quantity")
	ErrNoActiveRentals       = errors.New("no active rentals found for these items")
)

// DefaultTaxRate is the store's sales tax (6%) unless configured otherwise.
var DefaultTaxRate = decimal.NewFromFloat(0.06)

// CartLine is one requested cart entry.
type CartLine struct {
	ItemID   uuid.UUID `json:"item_id" validate:"uuid_required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// EngineService turns a cart into a committed sale or rental, and reverses
// rentals on return. Every operation is a single unit of work: item rows are
// locked FOR UPDATE, totals are computed against the locked snapshot, and all
// writes commit or roll back together.
type EngineService interface {
	CreateSale(employeeID uuid.UUID, cart []CartLine, couponCode string) (*model.Transaction, error)
	CreateRental(employeeID uuid.UUID, customerPhone string, cart []CartLine) (*model.Transaction, error)
	ProcessReturn(customerPhone string, itemIDs []uuid.UUID) ([]model.Rental, error)
}

type engineService struct {
	db           *gorm.DB
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	couponRepo   repository.CouponRepository
	employeeRepo repository.EmployeeRepository
	txRepo       repository.TransactionRepository
	rentalRepo   repository.RentalRepository
	auditRepo    repository.AuditLogRepository
	wsHub        *ws.Hub
	taxRate      decimal.Decimal
}

func NewEngineService(
	db *gorm.DB,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	couponRepo repository.CouponRepository,
	employeeRepo repository.EmployeeRepository,
	txRepo repository.TransactionRepository,
	rentalRepo repository.RentalRepository,
	auditRepo repository.AuditLogRepository,
	wsHub *ws.Hub,
	taxRate decimal.Decimal,
) EngineService {
	if taxRate.IsZero() {
		taxRate = DefaultTaxRate
	}
	return &engineService{
		db:           db,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		couponRepo:   couponRepo,
		employeeRepo: employeeRepo,
		txRepo:       txRepo,
		rentalRepo:   rentalRepo,
		auditRepo:    auditRepo,
		wsHub:        wsHub,
		taxRate:      taxRate,
	}
}

// lineSnapshot holds one cart line priced against its locked item row.
type lineSnapshot struct {
	item      *model.Item
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal
}

func validateCart(cart []CartLine) error {
	if len(cart) == 0 {
		return ErrEmptyCart
	}
	for _, line := range cart {
		if line.ItemID == uuid.Nil {
			return ErrItemNotFound
		}
		if line.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// applyTax adds the tax and rounds to two decimals for storage.
func applyTax(amount, taxRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Add(taxRate)).Round(2)
}

// lockAndPrice fetches and locks every cart item, checks availability, and
// returns the per-line snapshots with the pre-discount running total.
func (s *engineService) lockAndPrice(tx *gorm.DB, cart []CartLine) ([]lineSnapshot, decimal.Decimal, error) {
	snapshots := make([]lineSnapshot, 0, len(cart))
	runningTotal := decimal.Zero

	for _, line := range cart {
		item, err := s.itemRepo.FindForUpdate(tx, line.ItemID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrItemNotFound, line.ItemID)
		}
		if !item.IsAvailable(line.Quantity) {
			return nil, decimal.Zero, fmt.Errorf("%w for item %s", ErrInsufficientInventory, item.Name)
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		runningTotal = runningTotal.Add(subtotal)
		snapshots = append(snapshots, lineSnapshot{
			item:      item,
			quantity:  line.Quantity,
			unitPrice: item.Price,
			subtotal:  subtotal,
		})
	}

	return snapshots, runningTotal, nil
}

func buildTransactionItems(snapshots []lineSnapshot) []model.TransactionItem {
	items := make([]model.TransactionItem, len(snapshots))
	for i, snap := range snapshots {
		items[i] = model.TransactionItem{
			ItemID:    snap.item.ID,
			Quantity:  snap.quantity,
			UnitPrice: snap.unitPrice,
			Subtotal:  snap.subtotal,
		}
	}
	return items
}

// reduceStock decrements every locked item. The conditional guard cannot fire
// under the row locks taken by lockAndPrice, but a false result still aborts
// the whole unit of work.
func (s *engineService) reduceStock(tx *gorm.DB, snapshots []lineSnapshot, updatedBy string) error {
	for _, snap := range snapshots {
		ok, err := s.itemRepo.ReduceQuantity(tx, snap.item.ID, snap.quantity, updatedBy)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w for item %s", ErrInsufficientInventory, snap.item.Name)
		}
	}
	return nil
}

func (s *engineService) CreateSale(employeeID uuid.UUID, cart []CartLine, couponCode string) (*model.Transaction, error) {
	if err := validateCart(cart); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	var created *model.Transaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		snapshots, runningTotal, err := s.lockAndPrice(tx, cart)
		if err != nil {
			return err
		}

		// A missing or invalid coupon is not an error; the sale proceeds
		// without discount.
		discountApplied := false
		var appliedCode *string
		if couponCode != "" {
			coupon, err := s.couponRepo.FindByCode(couponCode)
			if err == nil && coupon.IsValid() {
				runningTotal = coupon.ApplyDiscount(runningTotal)
				discountApplied = true
				appliedCode = &coupon.Code
			}
		}

		transaction := &model.Transaction{
			Type:            model.TxSale,
			EmployeeID:      employee.ID,
			TotalAmount:     applyTax(runningTotal, s.taxRate),
			TaxRate:         s.taxRate,
			DiscountApplied: discountApplied,
			CouponCode:      appliedCode,
			Items:           buildTransactionItems(snapshots),
		}
		transaction.CreatedBy = employee.ID.String()
		transaction.UpdatedBy = employee.ID.String()

		if err := s.txRepo.Create(tx, transaction); err != nil {
			return err
		}
		if err := s.reduceStock(tx, snapshots, employee.ID.String()); err != nil {
			return err
		}

		created = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(employee.ID, model.ActionTransactionCreated,
		fmt.Sprintf("Sale transaction #%s created", created.ID))
	s.broadcastTransaction(created, employee)

	return created, nil
}

func (s *engineService) CreateRental(employeeID uuid.UUID, customerPhone string, cart []CartLine) (*model.Transaction, error) {
	if err := validateCart(cart); err != nil {
		return nil, err
	}
	if !validator.IsValidPhone(customerPhone) {
		return nil, ErrInvalidPhone
	}

	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	var created *model.Transaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := s.customerRepo.GetOrCreate(tx, customerPhone)
		if err != nil {
			return err
		}

		snapshots, runningTotal, err := s.lockAndPrice(tx, cart)
		if err != nil {
			return err
		}

		transaction := &model.Transaction{
			Type:        model.TxRental,
			EmployeeID:  employee.ID,
			CustomerID:  &customer.ID,
			TotalAmount: applyTax(runningTotal, s.taxRate),
			TaxRate:     s.taxRate,
			Items:       buildTransactionItems(snapshots),
		}
		transaction.CreatedBy = employee.ID.String()
		transaction.UpdatedBy = employee.ID.String()

		if err := s.txRepo.Create(tx, transaction); err != nil {
			return err
		}

		// One Rental row per physical unit: a line of quantity 3 fans out
		// into 3 records, each individually returnable.
		rentalDate := time.Now()
		dueDate := rentalDate.AddDate(0, 0, model.RentalPeriodDays)
		rentals := make([]model.Rental, 0, len(snapshots))
		for _, snap := range snapshots {
			for i := 0; i < snap.quantity; i++ {
				rentals = append(rentals, model.Rental{
					TransactionID: &transaction.ID,
					ItemID:        snap.item.ID,
					CustomerID:    customer.ID,
					RentalDate:    rentalDate,
					DueDate:       dueDate,
				})
			}
		}
		if err := s.rentalRepo.CreateBatch(tx, rentals); err != nil {
			return err
		}

		if err := s.reduceStock(tx, snapshots, employee.ID.String()); err != nil {
			return err
		}

		transaction.Rentals = rentals
		transaction.Customer = customer
		created = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(employee.ID, model.ActionTransactionCreated,
		fmt.Sprintf("Rental transaction #%s created for customer %s", created.ID, customerPhone))
	s.broadcastTransaction(created, employee)

	return created, nil
}

// ProcessReturn marks EVERY active rental of the customer matching the given
// item ids as returned and restores one unit of stock per rental record.
// Callers wanting a partial return must pass distinct item ids.
func (s *engineService) ProcessReturn(customerPhone string, itemIDs []uuid.UUID) ([]model.Rental, error) {
	if !validator.IsValidPhone(customerPhone) {
		return nil, ErrInvalidPhone
	}

	customer, err := s.customerRepo.FindByPhone(customerPhone)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	var returned []model.Rental
	err = s.db.Transaction(func(tx *gorm.DB) error {
		rentals, err := s.rentalRepo.FindActiveForReturn(tx, customer.ID, itemIDs)
		if err != nil {
			return err
		}
		if len(rentals) == 0 {
			return ErrNoActiveRentals
		}

		returnDate := time.Now()
		for i := range rentals {
			rentals[i].MarkAsReturned(returnDate)
			rentals[i].UpdatedBy = customer.PhoneNumber
			if err := s.rentalRepo.Save(tx, &rentals[i]); err != nil {
				return err
			}
			// Each rental record is exactly one physical unit.
			if err := s.itemRepo.IncreaseQuantity(tx, rentals[i].ItemID, 1, customer.PhoneNumber); err != nil {
				return err
			}
		}

		returned = rentals
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":           "stock_update",
		"action":         "rental_returned",
		"customer_phone": customer.PhoneNumber,
		"count":          len(returned),
	})

	return returned, nil
}

// logAudit appends an audit entry. Failures are logged and swallowed; the
// audit trail must never fail the primary operation.
func (s *engineService) logAudit(employeeID uuid.UUID, action model.AuditAction, details string) {
	entry := &model.AuditLog{
		EmployeeID: employeeID,
		Action:     action,
		Details:    details,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		log.Printf("Warning: failed to write audit log (%s): %v", action, err)
	}
}

func (s *engineService) broadcastTransaction(transaction *model.Transaction, employee *model.Employee) {
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "transaction_created",
		"transaction": map[string]interface{}{
			"id":               transaction.ID,
			"transaction_type": transaction.Type,
			"total_amount":     transaction.TotalAmount,
		},
		"employee": map[string]interface{}{
			"id":   employee.ID,
			"name": employee.FullName(),
		},
		"message": fmt.Sprintf("%s recorded a %s of %s", employee.FullName(), transaction.Type, transaction.TotalAmount.StringFixed(2)),
	})
}
