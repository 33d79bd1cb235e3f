package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/engine"
	"tallydb/src/entities"
)

func activeContract(number string, now time.Time, endsInDays int) *entities.Contract {
	c := entities.NewContract(number, "Maintenance "+number, entities.ContractService, "u-1")
	c.Status = entities.ContractActive
	c.EndDate = isoDaysFrom(now, endsInDays)
	return c
}

func TestContractService_NumberIsUnique(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	require.NoError(t, m.Contracts.Create(activeContract("CT-001", now, 90)))

	err := m.Contracts.Create(activeContract("CT-001", now, 30))
	require.Error(t, err)
	assert.True(t, engine.IsUniqueViolation(err))
}

func TestContractService_GetExpiringSoon(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	expiring := activeContract("CT-001", now, 15)
	require.NoError(t, m.Contracts.Create(expiring))

	distant := activeContract("CT-002", now, 120)
	require.NoError(t, m.Contracts.Create(distant))

	lapsed := activeContract("CT-003", now, -3)
	require.NoError(t, m.Contracts.Create(lapsed))

	draft := activeContract("CT-004", now, 10)
	draft.Status = entities.ContractDraft
	require.NoError(t, m.Contracts.Create(draft))

	got, err := m.Contracts.GetExpiringSoon(now, 30)
	require.NoError(t, err)
	require.Len(t, got, 1, "only active contracts ending inside the window")
	assert.Equal(t, expiring.ID, got[0].ID)
}

func TestContractService_GetByStatus(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	require.NoError(t, m.Contracts.Create(activeContract("CT-001", now, 90)))
	suspended := activeContract("CT-002", now, 90)
	suspended.Status = entities.ContractSuspended
	require.NoError(t, m.Contracts.Create(suspended))

	got, err := m.Contracts.GetByStatus(entities.ContractSuspended)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, suspended.ID, got[0].ID)
}
