package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ProductService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewProductService(store *engine.Store, logger *zap.SugaredLogger) *ProductService {
	return &ProductService{store: store, logger: logger}
}

func (s *ProductService) Create(product *entities.Product) error {
	doc, err := helpers.ToDocument(product)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Products, doc); err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

func (s *ProductService) Update(id string, product *entities.Product) error {
	product.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(product)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Products, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("product not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ProductService) Delete(id string) error {
	if err := s.store.Delete(entities.Products, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("product not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ProductService) GetByID(id string) (*entities.Product, error) {
	doc, ok, err := s.store.GetByID(entities.Products, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Product](doc)
}

func (s *ProductService) GetAll() ([]entities.Product, error) {
	docs, err := s.store.GetAll(entities.Products)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Product](docs)
}

func (s *ProductService) GetByCode(code string) (*entities.Product, error) {
	docs, err := s.store.GetByIndex(entities.Products, "code", code)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.Product](docs[0])
}

func (s *ProductService) GetByCategory(category string) ([]entities.Product, error) {
	docs, err := s.store.GetByIndex(entities.Products, "category", category)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Product](docs)
}

// GetLowStock returns every active product at or below its minimum stock
// level. Computed over the full collection; stock levels are not indexed.
func (s *ProductService) GetLowStock() ([]entities.Product, error) {
	products, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	low := make([]entities.Product, 0)
	for _, p := range products {
		if p.Active && p.StockQuantity <= p.MinStock {
			low = append(low, p)
		}
	}
	return low, nil
}

// AdjustStock changes a product's stock level by delta and records a stock
// movement referencing the cause. The two writes touch two collections and
// are not atomic; when the movement cannot be recorded the stock change is
// reverted and the error returned, so a nil return means both writes landed.
func (s *ProductService) AdjustStock(productID string, delta float64, movementType, reason, userID, referenceID string) error {
	product, err := s.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product not found: %w", &engine.NotFoundError{Kind: entities.Products, ID: productID})
	}

	updated := product.StockQuantity + delta
	if updated < 0 {
		return fmt.Errorf("product %s: stock cannot go below zero (have %v, requested %v)",
			product.Code, product.StockQuantity, delta)
	}

	movement := entities.NewStockMovement(productID, movementType, delta, reason, userID)
	movement.ReferenceID = referenceID
	movementDoc, err := helpers.ToDocument(movement)
	if err != nil {
		return err
	}

	product.StockQuantity = updated
	if err := s.Update(productID, product); err != nil {
		return err
	}

	if _, err := s.store.Create(entities.StockMovements, movementDoc); err != nil {
		product.StockQuantity = updated - delta
		if rerr := s.Update(productID, product); rerr != nil {
			s.logger.Errorf("Reverting stock of product %s after unrecorded movement: %v", productID, rerr)
		}
		return fmt.Errorf("recording stock movement for product %s: %w", productID, err)
	}
	return nil
}
