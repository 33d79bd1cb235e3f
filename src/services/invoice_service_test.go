package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/entities"
)

func isoDaysFrom(now time.Time, days int) string {
	return now.Add(time.Duration(days) * 24 * time.Hour).UTC().Format(time.RFC3339)
}

func TestInvoiceService_CreateAssignsSequentialNumbers(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	first := entities.NewInvoice("c-1", 100, isoDaysFrom(now, 30))
	require.NoError(t, m.Invoices.Create(first))
	assert.Equal(t, int64(1), first.InvoiceNumber)

	second := entities.NewInvoice("c-1", 50, isoDaysFrom(now, 30))
	require.NoError(t, m.Invoices.Create(second))
	assert.Equal(t, int64(2), second.InvoiceNumber)
}

func TestInvoiceService_GetOverdue(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	overdue := entities.NewInvoice("c-1", 100, isoDaysFrom(now, -5))
	require.NoError(t, m.Invoices.Create(overdue))

	current := entities.NewInvoice("c-1", 100, isoDaysFrom(now, 5))
	require.NoError(t, m.Invoices.Create(current))

	paidLate := entities.NewInvoice("c-1", 100, isoDaysFrom(now, -5))
	require.NoError(t, m.Invoices.Create(paidLate))
	require.NoError(t, m.Invoices.MarkPaid(paidLate.ID, entities.PaymentPix, now))

	got, err := m.Invoices.GetOverdue(now)
	require.NoError(t, err)
	require.Len(t, got, 1, "only pending invoices past due count")
	assert.Equal(t, overdue.ID, got[0].ID)
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	invoice := entities.NewInvoice("c-1", 250, isoDaysFrom(now, 10))
	require.NoError(t, m.Invoices.Create(invoice))

	require.NoError(t, m.Invoices.MarkPaid(invoice.ID, entities.PaymentCreditCard, now))

	got, err := m.Invoices.GetByID(invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.InvoicePaid, got.Status)
	assert.Equal(t, entities.PaymentCreditCard, got.PaymentMethod)
	assert.Equal(t, float64(250), got.PaidAmount)
	assert.Equal(t, "c-1", got.ClientID, "untouched fields survive the partial update")
}

func TestInvoiceService_MarkPaidUnknownInvoice(t *testing.T) {
	m := newTestManager(t)

	err := m.Invoices.MarkPaid("ghost", entities.PaymentCash, time.Now())
	assert.Error(t, err)
}

func TestInvoiceService_GetByStatusAndClient(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	a := entities.NewInvoice("c-1", 100, isoDaysFrom(now, 30))
	require.NoError(t, m.Invoices.Create(a))
	b := entities.NewInvoice("c-2", 100, isoDaysFrom(now, 30))
	require.NoError(t, m.Invoices.Create(b))
	require.NoError(t, m.Invoices.MarkPaid(b.ID, entities.PaymentCash, now))

	pending, err := m.Invoices.GetByStatus(entities.InvoicePending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, a.ID, pending[0].ID)

	byClient, err := m.Invoices.GetByClient("c-2")
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, b.ID, byClient[0].ID)
}
