package services

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type SaleService struct {
	store    *engine.Store
	products *ProductService
	logger   *zap.SugaredLogger
}

func NewSaleService(store *engine.Store, products *ProductService, logger *zap.SugaredLogger) *SaleService {
	return &SaleService{store: store, products: products, logger: logger}
}

// Create draws the next sale number and stores the sale. Stock is not
// touched; RecordSale is the entry point that also moves inventory.
func (s *SaleService) Create(sale *entities.Sale) error {
	number, err := s.store.NextSequence(entities.Sales)
	if err != nil {
		return err
	}
	sale.SaleNumber = number

	doc, err := helpers.ToDocument(sale)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Sales, doc); err != nil {
		return fmt.Errorf("creating sale: %w", err)
	}
	return nil
}

// RecordSale stores the sale and decrements stock for every item. The two
// collections cannot be mutated atomically, so a failed decrement triggers
// the compensating action: the just-created sale is deleted and the
// already-applied decrements are reversed.
func (s *SaleService) RecordSale(sale *entities.Sale) error {
	if err := s.Create(sale); err != nil {
		return err
	}

	for i, item := range sale.Items {
		err := s.products.AdjustStock(item.ProductID, -item.Quantity, entities.StockOut,
			fmt.Sprintf("sale %d", sale.SaleNumber), sale.UserID, sale.ID)
		if err == nil {
			continue
		}

		for _, done := range sale.Items[:i] {
			if cerr := s.products.AdjustStock(done.ProductID, done.Quantity, entities.StockIn,
				fmt.Sprintf("reversal of sale %d", sale.SaleNumber), sale.UserID, sale.ID); cerr != nil {
				s.logger.Errorf("Compensating stock reversal for product %s failed: %v", done.ProductID, cerr)
			}
		}
		if derr := s.store.Delete(entities.Sales, sale.ID); derr != nil {
			s.logger.Errorf("Compensating delete of sale %s failed: %v", sale.ID, derr)
		}
		return fmt.Errorf("recording sale: %w", err)
	}
	return nil
}

func (s *SaleService) Update(id string, sale *entities.Sale) error {
	doc, err := helpers.ToDocument(sale)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "sale_number")
	if err := s.store.Update(entities.Sales, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("sale not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *SaleService) Delete(id string) error {
	if err := s.store.Delete(entities.Sales, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("sale not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *SaleService) GetByID(id string) (*entities.Sale, error) {
	doc, ok, err := s.store.GetByID(entities.Sales, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Sale](doc)
}

func (s *SaleService) GetAll() ([]entities.Sale, error) {
	docs, err := s.store.GetAll(entities.Sales)
	if err != nil {
		return nil, err
	}
	sales, err := decodeAll[entities.Sale](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].SaleNumber < sales[j].SaleNumber })
	return sales, nil
}

func (s *SaleService) GetByClient(clientID string) ([]entities.Sale, error) {
	docs, err := s.store.GetByIndex(entities.Sales, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Sale](docs)
}

func (s *SaleService) GetByUser(userID string) ([]entities.Sale, error) {
	docs, err := s.store.GetByIndex(entities.Sales, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Sale](docs)
}
