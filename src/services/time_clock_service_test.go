package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/entities"
)

func TestWorkedHours(t *testing.T) {
	assert.InDelta(t, 9.0, WorkedHours("08:00", "18:00", "12:00", "13:00"), 1e-9)
	assert.InDelta(t, 8.0, WorkedHours("09:00", "17:00", "", ""), 1e-9)
	assert.InDelta(t, 4.25, WorkedHours("08:15", "12:30", "", ""), 1e-9)

	assert.Zero(t, WorkedHours("", "18:00", "", ""), "missing clock-in counts as zero")
	assert.Zero(t, WorkedHours("08:00", "", "", ""), "missing clock-out counts as zero")
	assert.Zero(t, WorkedHours("18:00", "08:00", "", ""), "negative spans clamp at zero")
	assert.Zero(t, WorkedHours("bogus", "18:00", "", ""))
}

func TestOvertime(t *testing.T) {
	assert.Zero(t, Overtime(7.5))
	assert.Zero(t, Overtime(8.0))
	assert.InDelta(t, 1.0, Overtime(9.0), 1e-9)
	assert.InDelta(t, 2.5, Overtime(10.5), 1e-9)
}

func TestTimeClockService_CreateComputesHours(t *testing.T) {
	m := newTestManager(t)

	clock := entities.NewTimeClock("e-1", entities.NowISO())
	clock.ClockIn = "08:00"
	clock.ClockOut = "18:00"
	clock.LunchStart = "12:00"
	clock.LunchEnd = "13:00"
	require.NoError(t, m.TimeClocks.Create(clock))

	got, err := m.TimeClocks.GetByID(clock.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 9.0, got.TotalHours, 1e-9)
	assert.InDelta(t, 1.0, got.OvertimeHours, 1e-9)
}

func TestTimeClockService_OpenDayHasZeroHours(t *testing.T) {
	m := newTestManager(t)

	clock := entities.NewTimeClock("e-1", entities.NowISO())
	clock.ClockIn = "08:00"
	require.NoError(t, m.TimeClocks.Create(clock))

	got, err := m.TimeClocks.GetByID(clock.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Zero(t, got.TotalHours)
	assert.Zero(t, got.OvertimeHours)
}

func TestTimeClockService_UpdateRecomputesHours(t *testing.T) {
	m := newTestManager(t)

	clock := entities.NewTimeClock("e-1", entities.NowISO())
	clock.ClockIn = "08:00"
	require.NoError(t, m.TimeClocks.Create(clock))

	clock.ClockOut = "17:00"
	require.NoError(t, m.TimeClocks.Update(clock.ID, clock))

	got, err := m.TimeClocks.GetByID(clock.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 9.0, got.TotalHours, 1e-9)
}

func TestTimeClockService_GetByEmployeeAndDate(t *testing.T) {
	m := newTestManager(t)
	date := entities.NowISO()

	a := entities.NewTimeClock("e-1", date)
	require.NoError(t, m.TimeClocks.Create(a))
	b := entities.NewTimeClock("e-2", date)
	require.NoError(t, m.TimeClocks.Create(b))

	byEmployee, err := m.TimeClocks.GetByEmployee("e-1")
	require.NoError(t, err)
	require.Len(t, byEmployee, 1)
	assert.Equal(t, a.ID, byEmployee[0].ID)

	byDate, err := m.TimeClocks.GetByDate(date)
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}
