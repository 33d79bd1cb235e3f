package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type BudgetService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewBudgetService(store *engine.Store, logger *zap.SugaredLogger) *BudgetService {
	return &BudgetService{store: store, logger: logger}
}

func (s *BudgetService) Create(budget *entities.Budget) error {
	number, err := s.store.NextSequence(entities.Budgets)
	if err != nil {
		return err
	}
	budget.BudgetNumber = number

	doc, err := helpers.ToDocument(budget)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Budgets, doc); err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}
	return nil
}

func (s *BudgetService) Update(id string, budget *entities.Budget) error {
	budget.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(budget)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "budget_number")
	if err := s.store.Update(entities.Budgets, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("budget not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *BudgetService) Delete(id string) error {
	if err := s.store.Delete(entities.Budgets, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("budget not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *BudgetService) GetByID(id string) (*entities.Budget, error) {
	doc, ok, err := s.store.GetByID(entities.Budgets, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Budget](doc)
}

func (s *BudgetService) GetAll() ([]entities.Budget, error) {
	docs, err := s.store.GetAll(entities.Budgets)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Budget](docs)
}

func (s *BudgetService) GetByStatus(status string) ([]entities.Budget, error) {
	docs, err := s.store.GetByIndex(entities.Budgets, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Budget](docs)
}

func (s *BudgetService) GetByClient(clientID string) ([]entities.Budget, error) {
	docs, err := s.store.GetByIndex(entities.Budgets, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Budget](docs)
}
