package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
	"tallydb/src/schema"
)

// RegularWorkday is the daily hour threshold above which time counts as
// overtime.
const RegularWorkday = 8.0

type TimeClockService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewTimeClockService(store *engine.Store, logger *zap.SugaredLogger) *TimeClockService {
	return &TimeClockService{store: store, logger: logger}
}

// Create computes worked and overtime hours from the punches before
// storing the record.
func (s *TimeClockService) Create(clock *entities.TimeClock) error {
	clock.TotalHours = WorkedHours(clock.ClockIn, clock.ClockOut, clock.LunchStart, clock.LunchEnd)
	clock.OvertimeHours = Overtime(clock.TotalHours)

	doc, err := helpers.ToDocument(clock)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.TimeClocks, doc); err != nil {
		return fmt.Errorf("creating time clock entry: %w", err)
	}
	return nil
}

func (s *TimeClockService) Update(id string, clock *entities.TimeClock) error {
	clock.UpdatedAt = entities.NowISO()
	clock.TotalHours = WorkedHours(clock.ClockIn, clock.ClockOut, clock.LunchStart, clock.LunchEnd)
	clock.OvertimeHours = Overtime(clock.TotalHours)

	doc, err := helpers.ToDocument(clock)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.TimeClocks, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("time clock entry not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *TimeClockService) Delete(id string) error {
	if err := s.store.Delete(entities.TimeClocks, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("time clock entry not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *TimeClockService) GetByID(id string) (*entities.TimeClock, error) {
	doc, ok, err := s.store.GetByID(entities.TimeClocks, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.TimeClock](doc)
}

func (s *TimeClockService) GetAll() ([]entities.TimeClock, error) {
	docs, err := s.store.GetAll(entities.TimeClocks)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.TimeClock](docs)
}

func (s *TimeClockService) GetByEmployee(employeeID string) ([]entities.TimeClock, error) {
	docs, err := s.store.GetByIndex(entities.TimeClocks, "employee_id", employeeID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.TimeClock](docs)
}

func (s *TimeClockService) GetByDate(date string) ([]entities.TimeClock, error) {
	docs, err := s.store.GetByIndex(entities.TimeClocks, "date", date)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.TimeClock](docs)
}

// WorkedHours returns the fractional hours between clock-in and clock-out
// minus the lunch break, clamped at zero. A day without both punches
// counts as zero hours.
func WorkedHours(clockIn, clockOut, lunchStart, lunchEnd string) float64 {
	if clockIn == "" || clockOut == "" {
		return 0
	}
	in, err := schema.ParseClock(clockIn)
	if err != nil {
		return 0
	}
	out, err := schema.ParseClock(clockOut)
	if err != nil {
		return 0
	}

	worked := out - in
	if lunchStart != "" && lunchEnd != "" {
		start, serr := schema.ParseClock(lunchStart)
		end, eerr := schema.ParseClock(lunchEnd)
		if serr == nil && eerr == nil {
			worked -= end - start
		}
	}
	if worked < 0 {
		return 0
	}
	return worked
}

// Overtime returns the hours worked beyond the regular workday.
func Overtime(workedHours float64) float64 {
	if workedHours <= RegularWorkday {
		return 0
	}
	return workedHours - RegularWorkday
}
