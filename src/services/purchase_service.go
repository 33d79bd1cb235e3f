package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type PurchaseService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewPurchaseService(store *engine.Store, logger *zap.SugaredLogger) *PurchaseService {
	return &PurchaseService{store: store, logger: logger}
}

func (s *PurchaseService) Create(purchase *entities.Purchase) error {
	number, err := s.store.NextSequence(entities.Purchases)
	if err != nil {
		return err
	}
	purchase.PurchaseNumber = number

	doc, err := helpers.ToDocument(purchase)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Purchases, doc); err != nil {
		return fmt.Errorf("creating purchase: %w", err)
	}
	return nil
}

func (s *PurchaseService) Update(id string, purchase *entities.Purchase) error {
	purchase.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(purchase)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "purchase_number")
	if err := s.store.Update(entities.Purchases, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("purchase not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *PurchaseService) Delete(id string) error {
	if err := s.store.Delete(entities.Purchases, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("purchase not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *PurchaseService) GetByID(id string) (*entities.Purchase, error) {
	doc, ok, err := s.store.GetByID(entities.Purchases, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Purchase](doc)
}

func (s *PurchaseService) GetAll() ([]entities.Purchase, error) {
	docs, err := s.store.GetAll(entities.Purchases)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Purchase](docs)
}

func (s *PurchaseService) GetByStatus(status string) ([]entities.Purchase, error) {
	docs, err := s.store.GetByIndex(entities.Purchases, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Purchase](docs)
}

func (s *PurchaseService) GetBySupplier(supplierID string) ([]entities.Purchase, error) {
	docs, err := s.store.GetByIndex(entities.Purchases, "supplier_id", supplierID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Purchase](docs)
}
