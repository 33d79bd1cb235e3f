package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type CostCenterService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewCostCenterService(store *engine.Store, logger *zap.SugaredLogger) *CostCenterService {
	return &CostCenterService{store: store, logger: logger}
}

func (s *CostCenterService) Create(center *entities.CostCenter) error {
	doc, err := helpers.ToDocument(center)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.CostCenters, doc); err != nil {
		return fmt.Errorf("creating cost center: %w", err)
	}
	return nil
}

func (s *CostCenterService) Update(id string, center *entities.CostCenter) error {
	center.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(center)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.CostCenters, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("cost center not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *CostCenterService) Delete(id string) error {
	if err := s.store.Delete(entities.CostCenters, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("cost center not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *CostCenterService) GetByID(id string) (*entities.CostCenter, error) {
	doc, ok, err := s.store.GetByID(entities.CostCenters, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.CostCenter](doc)
}

func (s *CostCenterService) GetAll() ([]entities.CostCenter, error) {
	docs, err := s.store.GetAll(entities.CostCenters)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CostCenter](docs)
}

func (s *CostCenterService) GetByCode(code string) (*entities.CostCenter, error) {
	docs, err := s.store.GetByIndex(entities.CostCenters, "code", code)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.CostCenter](docs[0])
}

func (s *CostCenterService) GetActive() ([]entities.CostCenter, error) {
	docs, err := s.store.GetByIndex(entities.CostCenters, "active", true)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.CostCenter](docs)
}
