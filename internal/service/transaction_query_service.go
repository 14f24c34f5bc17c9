package service

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

// TransactionQueryService is the read-only side of the transaction records.
type TransactionQueryService interface {
	GetRecentTransactions(limit int) ([]model.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*model.Transaction, error)
}

type transactionQueryService struct {
	txRepo repository.TransactionRepository
}

func NewTransactionQueryService(txRepo repository.TransactionRepository) TransactionQueryService {
	return &transactionQueryService{txRepo: txRepo}
}

func (s *transactionQueryService) GetRecentTransactions(limit int) ([]model.Transaction, error) {
	return s.txRepo.FindAll(limit)
}

func (s *transactionQueryService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.txRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}
