package services

import (
	"fmt"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type ClientService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewClientService(store *engine.Store, logger *zap.SugaredLogger) *ClientService {
	return &ClientService{store: store, logger: logger}
}

func (s *ClientService) Create(client *entities.Client) error {
	doc, err := helpers.ToDocument(client)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Clients, doc); err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	return nil
}

func (s *ClientService) Update(id string, client *entities.Client) error {
	client.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(client)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Clients, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("client not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ClientService) Delete(id string) error {
	if err := s.store.Delete(entities.Clients, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("client not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *ClientService) GetByID(id string) (*entities.Client, error) {
	doc, ok, err := s.store.GetByID(entities.Clients, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Client](doc)
}

func (s *ClientService) GetAll() ([]entities.Client, error) {
	docs, err := s.store.GetAll(entities.Clients)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Client](docs)
}

// GetByDocument looks a client up by tax document (CPF/CNPJ); the unique
// index guarantees at most one match.
func (s *ClientService) GetByDocument(document string) (*entities.Client, error) {
	docs, err := s.store.GetByIndex(entities.Clients, "document", document)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.Client](docs[0])
}

func (s *ClientService) GetActive() ([]entities.Client, error) {
	clients, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	active := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if c.Active {
			active = append(active, c)
		}
	}
	return active, nil
}
