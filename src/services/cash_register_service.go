package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type CashRegisterService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewCashRegisterService(store *engine.Store, logger *zap.SugaredLogger) *CashRegisterService {
	return &CashRegisterService{store: store, logger: logger}
}

func (s *CashRegisterService) Create(register *entities.CashRegister) error {
	doc, err := helpers.ToDocument(register)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.CashRegisters, doc); err != nil {
		return fmt.Errorf("creating cash register: %w", err)
	}
	return nil
}

func (s *CashRegisterService) Update(id string, register *entities.CashRegister) error {
	doc, err := helpers.ToDocument(register)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "opening_date")
	if err := s.store.Update(entities.CashRegisters, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("cash register not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *CashRegisterService) Delete(id string) error {
	if err := s.store.Delete(entities.CashRegisters, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("cash register not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *CashRegisterService) GetByID(id string) (*entities.CashRegister, error) {
	doc, ok, err := s.store.GetByID(entities.CashRegisters, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.CashRegister](doc)
}

func (s *CashRegisterService) GetAll() ([]entities.CashRegister, error) {
	docs, err := s.store.GetAll(entities.CashRegisters)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CashRegister](docs)
}

func (s *CashRegisterService) GetByUser(userID string) ([]entities.CashRegister, error) {
	docs, err := s.store.GetByIndex(entities.CashRegisters, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CashRegister](docs)
}

func (s *CashRegisterService) GetByStatus(status string) ([]entities.CashRegister, error) {
	docs, err := s.store.GetByIndex(entities.CashRegisters, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CashRegister](docs)
}

// GetOpen returns the registers currently open. A till normally has at
// most one, but the store does not enforce that.
func (s *CashRegisterService) GetOpen() ([]entities.CashRegister, error) {
	return s.GetByStatus(entities.RegisterOpen)
}

// Close marks a register closed, stamping the closing date and balance.
func (s *CashRegisterService) Close(id string, closingBalance float64, notes string) error {
	register, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if register == nil {
		return &engine.NotFoundError{Kind: entities.CashRegisters, ID: id}
	}
	if register.Status == entities.RegisterClosed {
		return fmt.Errorf("cash register %s is already closed", id)
	}

	register.Status = entities.RegisterClosed
	register.ClosingDate = entities.NowISO()
	register.ClosingBalance = closingBalance
	if notes != "" {
		register.Notes = notes
	}
	return s.Update(id, register)
}
