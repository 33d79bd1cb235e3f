package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/entities"
)

func TestNewFixedAsset_ComputesMonthlyDepreciation(t *testing.T) {
	asset := entities.NewFixedAsset("A-1", "Lathe", "machinery", 12000, 60)
	assert.InDelta(t, 200.0, asset.MonthlyDepreciation, 1e-9)
}

func TestAccruedDepreciation(t *testing.T) {
	asset := entities.NewFixedAsset("A-1", "Lathe", "machinery", 12000, 60)
	acquired, err := time.Parse(time.RFC3339, asset.AcquisitionDate)
	require.NoError(t, err)

	got, err := AccruedDepreciation(asset, acquired.Add(90*24*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 600.0, got, 1e-9, "three 30-day months at 200 each")

	got, err = AccruedDepreciation(asset, acquired.Add(89*24*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 400.0, got, 1e-9, "partial months do not accrue")
}

func TestAccruedDepreciation_CapsAtDepreciableBase(t *testing.T) {
	asset := entities.NewFixedAsset("A-1", "Lathe", "machinery", 12000, 60)
	asset.ResidualValue = 2000
	acquired, err := time.Parse(time.RFC3339, asset.AcquisitionDate)
	require.NoError(t, err)

	got, err := AccruedDepreciation(asset, acquired.Add(10*365*24*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, got, 1e-9, "never exceeds acquisition minus residual")
}

func TestAccruedDepreciation_BeforeAcquisition(t *testing.T) {
	asset := entities.NewFixedAsset("A-1", "Lathe", "machinery", 12000, 60)
	acquired, err := time.Parse(time.RFC3339, asset.AcquisitionDate)
	require.NoError(t, err)

	got, err := AccruedDepreciation(asset, acquired.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestAccruedDepreciation_MalformedDate(t *testing.T) {
	asset := entities.NewFixedAsset("A-1", "Lathe", "machinery", 12000, 60)
	asset.AcquisitionDate = "last spring"

	_, err := AccruedDepreciation(asset, time.Now())
	assert.Error(t, err)
}

func TestFixedAssetService_CRUDAndQueries(t *testing.T) {
	m := newTestManager(t)

	lathe := entities.NewFixedAsset("A-1", "Lathe", "machinery", 12000, 60)
	require.NoError(t, m.FixedAssets.Create(lathe))

	van := entities.NewFixedAsset("A-2", "Van", "vehicles", 80000, 48)
	van.Status = entities.AssetMaintenance
	require.NoError(t, m.FixedAssets.Create(van))

	byCategory, err := m.FixedAssets.GetByCategory("machinery")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, lathe.ID, byCategory[0].ID)

	byStatus, err := m.FixedAssets.GetByStatus(entities.AssetMaintenance)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, van.ID, byStatus[0].ID)

	require.NoError(t, m.FixedAssets.Delete(lathe.ID))
	got, err := m.FixedAssets.GetByID(lathe.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
