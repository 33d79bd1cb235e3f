package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type EmployeeService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewEmployeeService(store *engine.Store, logger *zap.SugaredLogger) *EmployeeService {
	return &EmployeeService{store: store, logger: logger}
}

func (s *EmployeeService) Create(employee *entities.Employee) error {
	doc, err := helpers.ToDocument(employee)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Employees, doc); err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) Update(id string, employee *entities.Employee) error {
	employee.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(employee)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Employees, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("employee not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *EmployeeService) Delete(id string) error {
	if err := s.store.Delete(entities.Employees, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("employee not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *EmployeeService) GetByID(id string) (*entities.Employee, error) {
	doc, ok, err := s.store.GetByID(entities.Employees, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Employee](doc)
}

func (s *EmployeeService) GetAll() ([]entities.Employee, error) {
	docs, err := s.store.GetAll(entities.Employees)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Employee](docs)
}

func (s *EmployeeService) GetByDocument(document string) (*entities.Employee, error) {
	docs, err := s.store.GetByIndex(entities.Employees, "document", document)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.Employee](docs[0])
}

func (s *EmployeeService) GetByDepartment(department string) ([]entities.Employee, error) {
	docs, err := s.store.GetByIndex(entities.Employees, "department", department)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Employee](docs)
}

func (s *EmployeeService) GetActive() ([]entities.Employee, error) {
	docs, err := s.store.GetByIndex(entities.Employees, "active", true)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Employee](docs)
}
