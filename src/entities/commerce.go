package entities

import "tallydb/src/helpers"

// LineItem is one product line of a sale or purchase.
type LineItem struct {
	ProductID   string  `bson:"product_id"`
	ProductName string  `bson:"product_name"`
	Quantity    float64 `bson:"quantity"`
	UnitPrice   float64 `bson:"unit_price"`
	Subtotal    float64 `bson:"subtotal"`
}

type Sale struct {
	ID            string     `bson:"id"`
	SaleNumber    int64      `bson:"sale_number"`
	ClientID      string     `bson:"client_id,omitempty"`
	UserID        string     `bson:"user_id"`
	TotalAmount   float64    `bson:"total_amount"`
	Discount      float64    `bson:"discount"`
	FinalAmount   float64    `bson:"final_amount"`
	PaymentMethod string     `bson:"payment_method"`
	Status        string     `bson:"status"`
	Items         []LineItem `bson:"items"`
	Notes         string     `bson:"notes,omitempty"`
	CreatedAt     string     `bson:"created_at"`
}

func NewSale(userID, paymentMethod string, items []LineItem) *Sale {
	if items == nil {
		items = []LineItem{}
	}
	sale := &Sale{
		ID:            helpers.GenerateUUID(),
		UserID:        userID,
		PaymentMethod: paymentMethod,
		Status:        SaleCompleted,
		Items:         items,
		CreatedAt:     NowISO(),
	}
	for _, item := range items {
		sale.TotalAmount += item.Subtotal
	}
	sale.FinalAmount = sale.TotalAmount
	return sale
}

type Invoice struct {
	ID            string  `bson:"id"`
	InvoiceNumber int64   `bson:"invoice_number"`
	SaleID        string  `bson:"sale_id,omitempty"`
	ClientID      string  `bson:"client_id"`
	IssueDate     string  `bson:"issue_date"`
	DueDate       string  `bson:"due_date"`
	Amount        float64 `bson:"amount"`
	PaidAmount    float64 `bson:"paid_amount"`
	Status        string  `bson:"status"`
	PaymentMethod string  `bson:"payment_method,omitempty"`
	Notes         string  `bson:"notes,omitempty"`
	CreatedAt     string  `bson:"created_at"`
	UpdatedAt     string  `bson:"updated_at"`
}

func NewInvoice(clientID string, amount float64, dueDate string) *Invoice {
	now := NowISO()
	return &Invoice{
		ID:        helpers.GenerateUUID(),
		ClientID:  clientID,
		IssueDate: now,
		DueDate:   dueDate,
		Amount:    amount,
		Status:    InvoicePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type Purchase struct {
	ID             string     `bson:"id"`
	PurchaseNumber int64      `bson:"purchase_number"`
	SupplierID     string     `bson:"supplier_id"`
	UserID         string     `bson:"user_id"`
	TotalAmount    float64    `bson:"total_amount"`
	Discount       float64    `bson:"discount"`
	FinalAmount    float64    `bson:"final_amount"`
	Status         string     `bson:"status"`
	Items          []LineItem `bson:"items"`
	ExpectedDate   string     `bson:"expected_date,omitempty"`
	ReceivedDate   string     `bson:"received_date,omitempty"`
	Notes          string     `bson:"notes,omitempty"`
	CreatedAt      string     `bson:"created_at"`
	UpdatedAt      string     `bson:"updated_at"`
}

func NewPurchase(supplierID, userID string, items []LineItem) *Purchase {
	if items == nil {
		items = []LineItem{}
	}
	now := NowISO()
	purchase := &Purchase{
		ID:         helpers.GenerateUUID(),
		SupplierID: supplierID,
		UserID:     userID,
		Status:     PurchasePending,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range items {
		purchase.TotalAmount += item.Subtotal
	}
	purchase.FinalAmount = purchase.TotalAmount
	return purchase
}

// BudgetItem is one quoted line; the product reference is optional so free
// text services can be quoted too.
type BudgetItem struct {
	ProductID   string  `bson:"product_id,omitempty"`
	Description string  `bson:"description"`
	Quantity    float64 `bson:"quantity"`
	UnitPrice   float64 `bson:"unit_price"`
	Subtotal    float64 `bson:"subtotal"`
}

type Budget struct {
	ID              string       `bson:"id"`
	BudgetNumber    int64        `bson:"budget_number"`
	ClientID        string       `bson:"client_id"`
	UserID          string       `bson:"user_id"`
	IssueDate       string       `bson:"issue_date"`
	ExpiryDate      string       `bson:"expiry_date"`
	TotalAmount     float64      `bson:"total_amount"`
	Discount        float64      `bson:"discount"`
	FinalAmount     float64      `bson:"final_amount"`
	Status          string       `bson:"status"`
	Items           []BudgetItem `bson:"items"`
	Notes           string       `bson:"notes,omitempty"`
	Terms           string       `bson:"terms,omitempty"`
	ConvertedSaleID string       `bson:"converted_sale_id,omitempty"`
	CreatedAt       string       `bson:"created_at"`
	UpdatedAt       string       `bson:"updated_at"`
}

func NewBudget(clientID, userID, expiryDate string, items []BudgetItem) *Budget {
	if items == nil {
		items = []BudgetItem{}
	}
	now := NowISO()
	budget := &Budget{
		ID:         helpers.GenerateUUID(),
		ClientID:   clientID,
		UserID:     userID,
		IssueDate:  now,
		ExpiryDate: expiryDate,
		Status:     BudgetDraft,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range items {
		budget.TotalAmount += item.Subtotal
	}
	budget.FinalAmount = budget.TotalAmount
	return budget
}
