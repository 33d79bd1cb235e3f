package entities

import "tallydb/src/helpers"

type CashRegister struct {
	ID             string  `bson:"id"`
	UserID         string  `bson:"user_id"`
	OpeningDate    string  `bson:"opening_date"`
	ClosingDate    string  `bson:"closing_date,omitempty"`
	OpeningBalance float64 `bson:"opening_balance"`
	ClosingBalance float64 `bson:"closing_balance,omitempty"`
	TotalSales     float64 `bson:"total_sales"`
	TotalExpenses  float64 `bson:"total_expenses"`
	Status         string  `bson:"status"`
	Notes          string  `bson:"notes,omitempty"`
}

func NewCashRegister(userID string, openingBalance float64) *CashRegister {
	return &CashRegister{
		ID:             helpers.GenerateUUID(),
		UserID:         userID,
		OpeningDate:    NowISO(),
		OpeningBalance: openingBalance,
		Status:         RegisterOpen,
	}
}

type CashTransaction struct {
	ID             string  `bson:"id"`
	CashRegisterID string  `bson:"cash_register_id"`
	Type           string  `bson:"type"`
	Amount         float64 `bson:"amount"`
	PaymentMethod  string  `bson:"payment_method"`
	Description    string  `bson:"description"`
	ReferenceID    string  `bson:"reference_id,omitempty"`
	CreatedAt      string  `bson:"created_at"`
}

func NewCashTransaction(registerID, transactionType string, amount float64, paymentMethod, description string) *CashTransaction {
	return &CashTransaction{
		ID:             helpers.GenerateUUID(),
		CashRegisterID: registerID,
		Type:           transactionType,
		Amount:         amount,
		PaymentMethod:  paymentMethod,
		Description:    description,
		CreatedAt:      NowISO(),
	}
}

// Account is one receivable or payable entry.
type Account struct {
	ID            string  `bson:"id"`
	Type          string  `bson:"type"`
	Description   string  `bson:"description"`
	Amount        float64 `bson:"amount"`
	DueDate       string  `bson:"due_date"`
	PaidDate      string  `bson:"paid_date,omitempty"`
	Status        string  `bson:"status"`
	ClientID      string  `bson:"client_id,omitempty"`
	SupplierID    string  `bson:"supplier_id,omitempty"`
	InvoiceID     string  `bson:"invoice_id,omitempty"`
	PurchaseID    string  `bson:"purchase_id,omitempty"`
	PaymentMethod string  `bson:"payment_method,omitempty"`
	Notes         string  `bson:"notes,omitempty"`
	CreatedAt     string  `bson:"created_at"`
	UpdatedAt     string  `bson:"updated_at"`
}

func NewAccount(accountType, description string, amount float64, dueDate string) *Account {
	now := NowISO()
	return &Account{
		ID:          helpers.GenerateUUID(),
		Type:        accountType,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      AccountPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type Expense struct {
	ID            string  `bson:"id"`
	Description   string  `bson:"description"`
	Category      string  `bson:"category"`
	Amount        float64 `bson:"amount"`
	PaymentMethod string  `bson:"payment_method"`
	ExpenseDate   string  `bson:"expense_date"`
	SupplierID    string  `bson:"supplier_id,omitempty"`
	UserID        string  `bson:"user_id"`
	ReceiptNumber string  `bson:"receipt_number,omitempty"`
	Notes         string  `bson:"notes,omitempty"`
	CreatedAt     string  `bson:"created_at"`
}

func NewExpense(description, category string, amount float64, paymentMethod, userID string) *Expense {
	now := NowISO()
	return &Expense{
		ID:            helpers.GenerateUUID(),
		Description:   description,
		Category:      category,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		ExpenseDate:   now,
		UserID:        userID,
		CreatedAt:     now,
	}
}

type CostCenter struct {
	ID          string  `bson:"id"`
	Code        string  `bson:"code"`
	Name        string  `bson:"name"`
	Description string  `bson:"description,omitempty"`
	ParentID    string  `bson:"parent_id,omitempty"`
	Budget      float64 `bson:"budget"`
	Active      bool    `bson:"active"`
	CreatedAt   string  `bson:"created_at"`
	UpdatedAt   string  `bson:"updated_at"`
}

func NewCostCenter(code, name string) *CostCenter {
	now := NowISO()
	return &CostCenter{
		ID:        helpers.GenerateUUID(),
		Code:      code,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChartOfAccount is one node of the chart of accounts tree; Level runs from
// 1 (root groups) to 5, and only accounts with AcceptEntries take postings.
type ChartOfAccount struct {
	ID            string `bson:"id"`
	Code          string `bson:"code"`
	Name          string `bson:"name"`
	Type          string `bson:"type"`
	ParentID      string `bson:"parent_id,omitempty"`
	Level         int64  `bson:"level"`
	AcceptEntries bool   `bson:"accept_entries"`
	Description   string `bson:"description,omitempty"`
	Active        bool   `bson:"active"`
	CreatedAt     string `bson:"created_at"`
	UpdatedAt     string `bson:"updated_at"`
}

func NewChartOfAccount(code, name, accountType string, level int64) *ChartOfAccount {
	now := NowISO()
	return &ChartOfAccount{
		ID:            helpers.GenerateUUID(),
		Code:          code,
		Name:          name,
		Type:          accountType,
		Level:         level,
		AcceptEntries: true,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
