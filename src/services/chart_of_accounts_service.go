package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ChartOfAccountsService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewChartOfAccountsService(store *engine.Store, logger *zap.SugaredLogger) *ChartOfAccountsService {
	return &ChartOfAccountsService{store: store, logger: logger}
}

func (s *ChartOfAccountsService) Create(account *entities.ChartOfAccount) error {
	doc, err := helpers.ToDocument(account)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.ChartOfAccounts, doc); err != nil {
		return fmt.Errorf("creating chart account: %w", err)
	}
	return nil
}

func (s *ChartOfAccountsService) Update(id string, account *entities.ChartOfAccount) error {
	account.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(account)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.ChartOfAccounts, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("chart account not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ChartOfAccountsService) Delete(id string) error {
	if err := s.store.Delete(entities.ChartOfAccounts, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("chart account not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ChartOfAccountsService) GetByID(id string) (*entities.ChartOfAccount, error) {
	doc, ok, err := s.store.GetByID(entities.ChartOfAccounts, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.ChartOfAccount](doc)
}

func (s *ChartOfAccountsService) GetAll() ([]entities.ChartOfAccount, error) {
	docs, err := s.store.GetAll(entities.ChartOfAccounts)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ChartOfAccount](docs)
}

func (s *ChartOfAccountsService) GetByCode(code string) (*entities.ChartOfAccount, error) {
	docs, err := s.store.GetByIndex(entities.ChartOfAccounts, "code", code)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.ChartOfAccount](docs[0])
}

func (s *ChartOfAccountsService) GetByType(accountType string) ([]entities.ChartOfAccount, error) {
	docs, err := s.store.GetByIndex(entities.ChartOfAccounts, "type", accountType)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ChartOfAccount](docs)
}

func (s *ChartOfAccountsService) GetActive() ([]entities.ChartOfAccount, error) {
	docs, err := s.store.GetByIndex(entities.ChartOfAccounts, "active", true)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ChartOfAccount](docs)
}
