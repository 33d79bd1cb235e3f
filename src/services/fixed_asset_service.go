package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type FixedAssetService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewFixedAssetService(store *engine.Store, logger *zap.SugaredLogger) *FixedAssetService {
	return &FixedAssetService{store: store, logger: logger}
}

func (s *FixedAssetService) Create(asset *entities.FixedAsset) error {
	doc, err := helpers.ToDocument(asset)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.FixedAssets, doc); err != nil {
		return fmt.Errorf("creating fixed asset: %w", err)
	}
	return nil
}

func (s *FixedAssetService) Update(id string, asset *entities.FixedAsset) error {
	asset.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(asset)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.FixedAssets, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("fixed asset not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *FixedAssetService) Delete(id string) error {
	if err := s.store.Delete(entities.FixedAssets, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("fixed asset not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *FixedAssetService) GetByID(id string) (*entities.FixedAsset, error) {
	doc, ok, err := s.store.GetByID(entities.FixedAssets, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.FixedAsset](doc)
}

func (s *FixedAssetService) GetAll() ([]entities.FixedAsset, error) {
	docs, err := s.store.GetAll(entities.FixedAssets)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.FixedAsset](docs)
}

func (s *FixedAssetService) GetByStatus(status string) ([]entities.FixedAsset, error) {
	docs, err := s.store.GetByIndex(entities.FixedAssets, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.FixedAsset](docs)
}

func (s *FixedAssetService) GetByCategory(category string) ([]entities.FixedAsset, error) {
	docs, err := s.store.GetByIndex(entities.FixedAssets, "category", category)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.FixedAsset](docs)
}

// AccruedDepreciation computes straight-line depreciation accrued up to
// now: elapsed whole 30-day months times the monthly charge, capped at the
// depreciable base (acquisition value minus residual value). Deterministic
// and side-effect free.
func AccruedDepreciation(asset *entities.FixedAsset, now time.Time) (float64, error) {
	acquired, err := time.Parse(time.RFC3339, asset.AcquisitionDate)
	if err != nil {
		return 0, fmt.Errorf("asset %s has malformed acquisition date %q", asset.Code, asset.AcquisitionDate)
	}
	if now.Before(acquired) {
		return 0, nil
	}
	monthsElapsed := float64(int64(now.Sub(acquired) / (30 * 24 * time.Hour)))
	accrued := monthsElapsed * asset.MonthlyDepreciation
	base := asset.AcquisitionValue - asset.ResidualValue
	if accrued > base {
		accrued = base
	}
	return accrued, nil
}
