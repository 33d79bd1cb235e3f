package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type AccountService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewAccountService(store *engine.Store, logger *zap.SugaredLogger) *AccountService {
	return &AccountService{store: store, logger: logger}
}

func (s *AccountService) Create(account *entities.Account) error {
	doc, err := helpers.ToDocument(account)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Accounts, doc); err != nil {
		return fmt.Errorf("creating account entry: %w", err)
	}
	return nil
}

func (s *AccountService) Update(id string, account *entities.Account) error {
	account.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(account)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Accounts, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("account entry not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *AccountService) Delete(id string) error {
	if err := s.store.Delete(entities.Accounts, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("account entry not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *AccountService) GetByID(id string) (*entities.Account, error) {
	doc, ok, err := s.store.GetByID(entities.Accounts, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Account](doc)
}

func (s *AccountService) GetAll() ([]entities.Account, error) {
	docs, err := s.store.GetAll(entities.Accounts)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Account](docs)
}

func (s *AccountService) GetByType(accountType string) ([]entities.Account, error) {
	docs, err := s.store.GetByIndex(entities.Accounts, "type", accountType)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Account](docs)
}

func (s *AccountService) GetByStatus(status string) ([]entities.Account, error) {
	docs, err := s.store.GetByIndex(entities.Accounts, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Account](docs)
}

func (s *AccountService) GetByClient(clientID string) ([]entities.Account, error) {
	docs, err := s.store.GetByIndex(entities.Accounts, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Account](docs)
}

// MarkPaid settles a pending entry, stamping the paid date and the payment
// method used.
func (s *AccountService) MarkPaid(id, paymentMethod string) error {
	account, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return &engine.NotFoundError{Kind: entities.Accounts, ID: id}
	}

	account.Status = entities.AccountPaid
	account.PaidDate = entities.NowISO()
	account.PaymentMethod = paymentMethod
	return s.Update(id, account)
}
