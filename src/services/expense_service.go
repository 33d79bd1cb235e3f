package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ExpenseService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewExpenseService(store *engine.Store, logger *zap.SugaredLogger) *ExpenseService {
	return &ExpenseService{store: store, logger: logger}
}

func (s *ExpenseService) Create(expense *entities.Expense) error {
	doc, err := helpers.ToDocument(expense)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Expenses, doc); err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) Update(id string, expense *entities.Expense) error {
	doc, err := helpers.ToDocument(expense)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Expenses, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("expense not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ExpenseService) Delete(id string) error {
	if err := s.store.Delete(entities.Expenses, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("expense not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ExpenseService) GetByID(id string) (*entities.Expense, error) {
	doc, ok, err := s.store.GetByID(entities.Expenses, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Expense](doc)
}

func (s *ExpenseService) GetAll() ([]entities.Expense, error) {
	docs, err := s.store.GetAll(entities.Expenses)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Expense](docs)
}

func (s *ExpenseService) GetByCategory(category string) ([]entities.Expense, error) {
	docs, err := s.store.GetByIndex(entities.Expenses, "category", category)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Expense](docs)
}

func (s *ExpenseService) GetBySupplier(supplierID string) ([]entities.Expense, error) {
	docs, err := s.store.GetByIndex(entities.Expenses, "supplier_id", supplierID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Expense](docs)
}

func (s *ExpenseService) GetByDate(date string) ([]entities.Expense, error) {
	docs, err := s.store.GetByIndex(entities.Expenses, "expense_date", date)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Expense](docs)
}
