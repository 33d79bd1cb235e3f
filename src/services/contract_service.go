package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ContractService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewContractService(store *engine.Store, logger *zap.SugaredLogger) *ContractService {
	return &ContractService{store: store, logger: logger}
}

func (s *ContractService) Create(contract *entities.Contract) error {
	doc, err := helpers.ToDocument(contract)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Contracts, doc); err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}
	return nil
}

func (s *ContractService) Update(id string, contract *entities.Contract) error {
	contract.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(contract)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Contracts, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("contract not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ContractService) Delete(id string) error {
	if err := s.store.Delete(entities.Contracts, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("contract not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ContractService) GetByID(id string) (*entities.Contract, error) {
	doc, ok, err := s.store.GetByID(entities.Contracts, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Contract](doc)
}

func (s *ContractService) GetAll() ([]entities.Contract, error) {
	docs, err := s.store.GetAll(entities.Contracts)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Contract](docs)
}

func (s *ContractService) GetByStatus(status string) ([]entities.Contract, error) {
	docs, err := s.store.GetByIndex(entities.Contracts, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Contract](docs)
}

// GetExpiringSoon returns active contracts whose end date falls within
// [now, now + days]. The window is computed over the full collection, not
// an index range; end_date is only equality-indexed.
func (s *ContractService) GetExpiringSoon(now time.Time, days int) ([]entities.Contract, error) {
	contracts, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	limit := now.Add(time.Duration(days) * 24 * time.Hour)

	expiring := make([]entities.Contract, 0)
	for _, c := range contracts {
		if c.Status != entities.ContractActive {
			continue
		}
		end, err := time.Parse(time.RFC3339, c.EndDate)
		if err != nil {
			s.logger.Warnf("Contract %s has malformed end date %q", c.ContractNumber, c.EndDate)
			continue
		}
		if !end.Before(now) && !end.After(limit) {
			expiring = append(expiring, c)
		}
	}
	return expiring, nil
}
