package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type CashTransactionService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewCashTransactionService(store *engine.Store, logger *zap.SugaredLogger) *CashTransactionService {
	return &CashTransactionService{store: store, logger: logger}
}

func (s *CashTransactionService) Create(transaction *entities.CashTransaction) error {
	doc, err := helpers.ToDocument(transaction)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.CashTransactions, doc); err != nil {
		return fmt.Errorf("creating cash transaction: %w", err)
	}
	return nil
}

func (s *CashTransactionService) Delete(id string) error {
	if err := s.store.Delete(entities.CashTransactions, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("cash transaction not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *CashTransactionService) GetByID(id string) (*entities.CashTransaction, error) {
	doc, ok, err := s.store.GetByID(entities.CashTransactions, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.CashTransaction](doc)
}

func (s *CashTransactionService) GetAll() ([]entities.CashTransaction, error) {
	docs, err := s.store.GetAll(entities.CashTransactions)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CashTransaction](docs)
}

func (s *CashTransactionService) GetByRegister(registerID string) ([]entities.CashTransaction, error) {
	docs, err := s.store.GetByIndex(entities.CashTransactions, "cash_register_id", registerID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CashTransaction](docs)
}

func (s *CashTransactionService) GetByType(transactionType string) ([]entities.CashTransaction, error) {
	docs, err := s.store.GetByIndex(entities.CashTransactions, "type", transactionType)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CashTransaction](docs)
}
