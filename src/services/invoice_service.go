package services

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

type InvoiceService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewInvoiceService(store *engine.Store, logger *zap.SugaredLogger) *InvoiceService {
	return &InvoiceService{store: store, logger: logger}
}

func (s *InvoiceService) Create(invoice *entities.Invoice) error {
	number, err := s.store.NextSequence(entities.Invoices)
	if err != nil {
		return err
	}
	invoice.InvoiceNumber = number

	doc, err := helpers.ToDocument(invoice)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Invoices, doc); err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}
	return nil
}

func (s *InvoiceService) Update(id string, invoice *entities.Invoice) error {
	invoice.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(invoice)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "invoice_number")
	if err := s.store.Update(entities.Invoices, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("invoice not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *InvoiceService) Delete(id string) error {
	if err := s.store.Delete(entities.Invoices, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("invoice not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *InvoiceService) GetByID(id string) (*entities.Invoice, error) {
	doc, ok, err := s.store.GetByID(entities.Invoices, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.Invoice](doc)
}

func (s *InvoiceService) GetAll() ([]entities.Invoice, error) {
	docs, err := s.store.GetAll(entities.Invoices)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Invoice](docs)
}

func (s *InvoiceService) GetByStatus(status string) ([]entities.Invoice, error) {
	docs, err := s.store.GetByIndex(entities.Invoices, "status", status)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Invoice](docs)
}

func (s *InvoiceService) GetByClient(clientID string) ([]entities.Invoice, error) {
	docs, err := s.store.GetByIndex(entities.Invoices, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.Invoice](docs)
}

// GetOverdue returns pending invoices whose due date has passed. Time
// filtering is computed over the status index result.
func (s *InvoiceService) GetOverdue(now time.Time) ([]entities.Invoice, error) {
	pending, err := s.GetByStatus(entities.InvoicePending)
	if err != nil {
		return nil, err
	}
	overdue := make([]entities.Invoice, 0)
	for _, inv := range pending {
		due, err := time.Parse(time.RFC3339, inv.DueDate)
		if err != nil {
			s.logger.Warnf("Invoice %d has malformed due date %q", inv.InvoiceNumber, inv.DueDate)
			continue
		}
		if due.Before(now) {
			overdue = append(overdue, inv)
		}
	}
	return overdue, nil
}

// MarkPaid settles an invoice with a partial update; untouched fields keep
// their stored values.
func (s *InvoiceService) MarkPaid(id, paymentMethod string, now time.Time) error {
	invoice, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return fmt.Errorf("invoice not found: %w", &engine.NotFoundError{Kind: entities.Invoices, ID: id})
	}
	err = s.store.Update(entities.Invoices, id, bson.M{
		"status":         entities.InvoicePaid,
		"payment_method": paymentMethod,
		"paid_amount":    invoice.Amount,
		"updated_at":     now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("invoice not found: %w", err)
		}
		return err
	}
	return nil
}
