package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ProductionOrderService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewProductionOrderService(store *engine.Store, logger *zap.SugaredLogger) *ProductionOrderService {
	return &ProductionOrderService{store: store, logger: logger}
}

func (s *ProductionOrderService) Create(order *entities.ProductionOrder) error {
	number, err := s.store.NextSequence(entities.ProductionOrders)
	if err != nil {
		return err
	}
	order.OrderNumber = number

	doc, err := helpers.ToDocument(order)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.ProductionOrders, doc); err != nil {
		return fmt.Errorf("creating production order: %w", err)
	}
	return nil
}

func (s *ProductionOrderService) Update(id string, order *entities.ProductionOrder) error {
	order.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(order)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "order_number")
	if err := s.store.Update(entities.ProductionOrders, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("production order not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ProductionOrderService) Delete(id string) error {
	if err := s.store.Delete(entities.ProductionOrders, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("production order not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ProductionOrderService) GetByID(id string) (*entities.ProductionOrder, error) {
	doc, ok, err := s.store.GetByID(entities.ProductionOrders, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.ProductionOrder](doc)
}

func (s *ProductionOrderService) GetAll() ([]entities.ProductionOrder, error) {
	docs, err := s.store.GetAll(entities.ProductionOrders)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ProductionOrder](docs)
}

func (s *ProductionOrderService) GetByStatus(status string) ([]entities.ProductionOrder, error) {
	docs, err := s.store.GetByIndex(entities.ProductionOrders, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ProductionOrder](docs)
}

func (s *ProductionOrderService) GetByProduct(productID string) ([]entities.ProductionOrder, error) {
	docs, err := s.store.GetByIndex(entities.ProductionOrders, "product_id", productID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ProductionOrder](docs)
}
