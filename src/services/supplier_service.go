package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type SupplierService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewSupplierService(store *engine.Store, logger *zap.SugaredLogger) *SupplierService {
	return &SupplierService{store: store, logger: logger}
}

func (s *SupplierService) Create(supplier *entities.Supplier) error {
	doc, err := helpers.ToDocument(supplier)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Suppliers, doc); err != nil {
		return fmt.Errorf("creating supplier: %w", err)
	}
	return nil
}

func (s *SupplierService) Update(id string, supplier *entities.Supplier) error {
	supplier.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(supplier)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Suppliers, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("supplier not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *SupplierService) Delete(id string) error {
	if err := s.store.Delete(entities.Suppliers, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("supplier not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *SupplierService) GetByID(id string) (*entities.Supplier, error) {
	doc, ok, err := s.store.GetByID(entities.Suppliers, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Supplier](doc)
}

func (s *SupplierService) GetAll() ([]entities.Supplier, error) {
	docs, err := s.store.GetAll(entities.Suppliers)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Supplier](docs)
}

func (s *SupplierService) GetByDocument(document string) (*entities.Supplier, error) {
	docs, err := s.store.GetByIndex(entities.Suppliers, "document", document)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.Supplier](docs[0])
}

func (s *SupplierService) GetActive() ([]entities.Supplier, error) {
	suppliers, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	active := make([]entities.Supplier, 0, len(suppliers))
	for _, sup := range suppliers {
		if sup.Active {
			active = append(active, sup)
		}
	}
	return active, nil
}
