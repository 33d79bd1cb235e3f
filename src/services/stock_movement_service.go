package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

// StockMovementService reads the movement ledger. Movements are written by
// ProductService.AdjustStock as a side effect of stock changes; direct
// Create is for imports and corrections.
type StockMovementService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewStockMovementService(store *engine.Store, logger *zap.SugaredLogger) *StockMovementService {
	return &StockMovementService{store: store, logger: logger}
}

func (s *StockMovementService) Create(movement *entities.StockMovement) error {
	doc, err := helpers.ToDocument(movement)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.StockMovements, doc); err != nil {
		return fmt.Errorf("creating stock movement: %w", err)
	}
	return nil
}

func (s *StockMovementService) Delete(id string) error {
	if err := s.store.Delete(entities.StockMovements, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("stock movement not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *StockMovementService) GetByID(id string) (*entities.StockMovement, error) {
	doc, ok, err := s.store.GetByID(entities.StockMovements, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.StockMovement](doc)
}

func (s *StockMovementService) GetAll() ([]entities.StockMovement, error) {
	docs, err := s.store.GetAll(entities.StockMovements)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.StockMovement](docs)
}

func (s *StockMovementService) GetByProduct(productID string) ([]entities.StockMovement, error) {
	docs, err := s.store.GetByIndex(entities.StockMovements, "product_id", productID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.StockMovement](docs)
}

func (s *StockMovementService) GetByType(movementType string) ([]entities.StockMovement, error) {
	docs, err := s.store.GetByIndex(entities.StockMovements, "type", movementType)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.StockMovement](docs)
}
