package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ServiceOrderService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewServiceOrderService(store *engine.Store, logger *zap.SugaredLogger) *ServiceOrderService {
	return &ServiceOrderService{store: store, logger: logger}
}

func (s *ServiceOrderService) Create(order *entities.ServiceOrder) error {
	number, err := s.store.NextSequence(entities.ServiceOrders)
	if err != nil {
		return err
	}
	order.OrderNumber = number

	doc, err := helpers.ToDocument(order)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.ServiceOrders, doc); err != nil {
		return fmt.Errorf("creating service order: %w", err)
	}
	return nil
}

func (s *ServiceOrderService) Update(id string, order *entities.ServiceOrder) error {
	order.UpdatedAt = entities.NowISO()
	order.TotalCost = order.LaborCost + order.PartsCost
	doc, err := helpers.ToDocument(order)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "order_number")
	if err := s.store.Update(entities.ServiceOrders, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("service order not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ServiceOrderService) Delete(id string) error {
	if err := s.store.Delete(entities.ServiceOrders, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("service order not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ServiceOrderService) GetByID(id string) (*entities.ServiceOrder, error) {
	doc, ok, err := s.store.GetByID(entities.ServiceOrders, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.ServiceOrder](doc)
}

func (s *ServiceOrderService) GetAll() ([]entities.ServiceOrder, error) {
	docs, err := s.store.GetAll(entities.ServiceOrders)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ServiceOrder](docs)
}

func (s *ServiceOrderService) GetByStatus(status string) ([]entities.ServiceOrder, error) {
	docs, err := s.store.GetByIndex(entities.ServiceOrders, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ServiceOrder](docs)
}

func (s *ServiceOrderService) GetByClient(clientID string) ([]entities.ServiceOrder, error) {
	docs, err := s.store.GetByIndex(entities.ServiceOrders, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ServiceOrder](docs)
}

func (s *ServiceOrderService) GetByAssignee(employeeID string) ([]entities.ServiceOrder, error) {
	docs, err := s.store.GetByIndex(entities.ServiceOrders, "assigned_to", employeeID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.ServiceOrder](docs)
}
