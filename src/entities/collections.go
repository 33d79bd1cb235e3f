package entities

import "tallydb/src/schema"

// Collections declares the schema and index set of all 21 entity kinds.
// The store is opened with this exact set; changes here must be additive
// and go with a SchemaVersion bump.
func Collections() []*schema.Collection {
	lineItems := []schema.Field{
		schema.ID("product_id"),
		schema.String("product_name", 1, 0),
		schema.Number("quantity", 0.01),
		schema.Number("unit_price", 0),
		schema.Number("subtotal", 0),
	}

	return []*schema.Collection{
		{
			Kind: Users,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("name", 2, 100),
				schema.Email("email", true),
				schema.String("password_hash", 1, 0),
				schema.Enum("role", RoleAdmin, RoleCashier),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "email", Field: "email", Unique: true},
				{Name: "role", Field: "role"},
			},
		},
		{
			Kind: Products,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("code", 1, 50),
				schema.String("name", 2, 200),
				schema.OptionalString("description", 1000),
				schema.String("category", 1, 100),
				schema.String("unit", 1, 20),
				schema.Number("cost_price", 0),
				schema.Number("sale_price", 0),
				schema.NumberDefault("stock_quantity", 0, 0),
				schema.NumberDefault("min_stock", 0, 0),
				schema.OptionalString("barcode", 50),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "code", Field: "code", Unique: true},
				{Name: "barcode", Field: "barcode"},
				{Name: "category", Field: "category"},
			},
		},
		{
			Kind: Clients,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("name", 2, 200),
				schema.String("document", 1, 20),
				schema.Email("email", false),
				schema.OptionalString("phone", 20),
				schema.OptionalString("address", 500),
				schema.OptionalString("city", 100),
				schema.OptionalString("state", 2),
				schema.OptionalString("zip_code", 10),
				schema.NumberDefault("credit_limit", 0, 0),
				schema.NumberDefault("current_debt", 0, 0),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "document", Field: "document", Unique: true},
				{Name: "email", Field: "email"},
			},
		},
		{
			Kind:     Sales,
			Numbered: true,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Int("sale_number", 1, 0),
				schema.OptionalID("client_id"),
				schema.ID("user_id"),
				schema.Number("total_amount", 0),
				schema.NumberDefault("discount", 0, 0),
				schema.Number("final_amount", 0),
				schema.Enum("payment_method", PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankTransfer, PaymentCheck),
				schema.Enum("status", SaleCompleted, SaleCancelled, SalePending),
				schema.Array("items", lineItems...),
				schema.OptionalString("notes", 500),
				schema.DateTime("created_at"),
			},
			Indexes: []schema.Index{
				{Name: "sale_number", Field: "sale_number", Unique: true},
				{Name: "client_id", Field: "client_id"},
				{Name: "user_id", Field: "user_id"},
				{Name: "created_at", Field: "created_at"},
			},
		},
		{
			Kind:     Invoices,
			Numbered: true,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Int("invoice_number", 1, 0),
				schema.OptionalID("sale_id"),
				schema.ID("client_id"),
				schema.DateTime("issue_date"),
				schema.DateTime("due_date"),
				schema.Number("amount", 0),
				schema.NumberDefault("paid_amount", 0, 0),
				schema.Enum("status", InvoicePending, InvoicePaid, InvoiceCancelled, InvoiceOverdue),
				schema.OptionalEnum("payment_method", PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankTransfer, PaymentCheck),
				schema.OptionalString("notes", 500),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "invoice_number", Field: "invoice_number", Unique: true},
				{Name: "client_id", Field: "client_id"},
				{Name: "status", Field: "status"},
				{Name: "due_date", Field: "due_date"},
			},
		},
		{
			Kind: CashRegisters,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.ID("user_id"),
				schema.DateTime("opening_date"),
				schema.OptionalDateTime("closing_date"),
				schema.Number("opening_balance", 0),
				schema.OptionalNumber("closing_balance", 0),
				schema.NumberDefault("total_sales", 0, 0),
				schema.NumberDefault("total_expenses", 0, 0),
				schema.Enum("status", RegisterOpen, RegisterClosed),
				schema.OptionalString("notes", 500),
			},
			Indexes: []schema.Index{
				{Name: "user_id", Field: "user_id"},
				{Name: "status", Field: "status"},
				{Name: "opening_date", Field: "opening_date"},
			},
		},
		{
			Kind: CashTransactions,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.ID("cash_register_id"),
				schema.Enum("type", TransactionSale, TransactionExpense, TransactionWithdrawal, TransactionDeposit),
				schema.FreeNumber("amount"),
				schema.Enum("payment_method", PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankTransfer, PaymentCheck),
				schema.String("description", 1, 500),
				schema.OptionalID("reference_id"),
				schema.DateTime("created_at"),
			},
			Indexes: []schema.Index{
				{Name: "cash_register_id", Field: "cash_register_id"},
				{Name: "type", Field: "type"},
				{Name: "created_at", Field: "created_at"},
			},
		},
		{
			Kind: Accounts,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Enum("type", AccountReceivable, AccountPayable),
				schema.String("description", 2, 500),
				schema.FreeNumber("amount"),
				schema.DateTime("due_date"),
				schema.OptionalDateTime("paid_date"),
				schema.Enum("status", AccountPending, AccountPaid, AccountOverdue, AccountCancelled),
				schema.OptionalID("client_id"),
				schema.OptionalID("supplier_id"),
				schema.OptionalID("invoice_id"),
				schema.OptionalID("purchase_id"),
				schema.OptionalEnum("payment_method", PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankTransfer, PaymentCheck),
				schema.OptionalString("notes", 500),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "type", Field: "type"},
				{Name: "status", Field: "status"},
				{Name: "due_date", Field: "due_date"},
				{Name: "client_id", Field: "client_id"},
			},
		},
		{
			Kind: StockMovements,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.ID("product_id"),
				schema.Enum("type", StockIn, StockOut, StockAdjustment),
				schema.FreeNumber("quantity"),
				schema.OptionalNumber("unit_cost", 0),
				schema.String("reason", 1, 500),
				schema.OptionalID("reference_id"),
				schema.ID("user_id"),
				schema.DateTime("created_at"),
			},
			Indexes: []schema.Index{
				{Name: "product_id", Field: "product_id"},
				{Name: "type", Field: "type"},
				{Name: "created_at", Field: "created_at"},
			},
		},
		{
			Kind: Suppliers,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("name", 2, 200),
				schema.String("document", 1, 20),
				schema.Email("email", false),
				schema.OptionalString("phone", 20),
				schema.OptionalString("address", 500),
				schema.OptionalString("city", 100),
				schema.OptionalString("state", 2),
				schema.OptionalString("zip_code", 10),
				schema.OptionalString("contact_person", 200),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "document", Field: "document", Unique: true},
				{Name: "email", Field: "email"},
			},
		},
		{
			Kind:     Purchases,
			Numbered: true,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Int("purchase_number", 1, 0),
				schema.ID("supplier_id"),
				schema.ID("user_id"),
				schema.Number("total_amount", 0),
				schema.NumberDefault("discount", 0, 0),
				schema.Number("final_amount", 0),
				schema.Enum("status", PurchasePending, PurchaseApproved, PurchaseReceived, PurchaseCancelled),
				schema.Array("items", lineItems...),
				schema.OptionalDateTime("expected_date"),
				schema.OptionalDateTime("received_date"),
				schema.OptionalString("notes", 500),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "purchase_number", Field: "purchase_number", Unique: true},
				{Name: "supplier_id", Field: "supplier_id"},
				{Name: "status", Field: "status"},
				{Name: "created_at", Field: "created_at"},
			},
		},
		{
			Kind: Expenses,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("description", 2, 500),
				schema.Enum("category", ExpenseRent, ExpenseUtilities, ExpenseSalaries, ExpenseSupplies, ExpenseMaintenance, ExpenseTaxes, ExpenseInsurance, ExpenseMarketing, ExpenseTransport, ExpenseOther),
				schema.Number("amount", 0),
				schema.Enum("payment_method", PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankTransfer, PaymentCheck),
				schema.DateTime("expense_date"),
				schema.OptionalID("supplier_id"),
				schema.ID("user_id"),
				schema.OptionalString("receipt_number", 100),
				schema.OptionalString("notes", 500),
				schema.DateTime("created_at"),
			},
			Indexes: []schema.Index{
				{Name: "category", Field: "category"},
				{Name: "expense_date", Field: "expense_date"},
				{Name: "supplier_id", Field: "supplier_id"},
			},
		},
		{
			Kind: Employees,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("name", 2, 200),
				schema.String("document", 1, 20),
				schema.Email("email", false),
				schema.OptionalString("phone", 20),
				schema.String("position", 1, 100),
				schema.String("department", 1, 100),
				schema.Number("salary", 0),
				schema.DateTime("hire_date"),
				schema.OptionalDateTime("termination_date"),
				schema.OptionalString("address", 500),
				schema.OptionalString("city", 100),
				schema.OptionalString("state", 2),
				schema.OptionalString("zip_code", 10),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "document", Field: "document", Unique: true},
				{Name: "department", Field: "department"},
				{Name: "active", Field: "active"},
			},
		},
		{
			Kind:     Budgets,
			Numbered: true,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Int("budget_number", 1, 0),
				schema.ID("client_id"),
				schema.ID("user_id"),
				schema.DateTime("issue_date"),
				schema.DateTime("expiry_date"),
				schema.Number("total_amount", 0),
				schema.NumberDefault("discount", 0, 0),
				schema.Number("final_amount", 0),
				schema.Enum("status", BudgetDraft, BudgetSent, BudgetApproved, BudgetRejected, BudgetExpired, BudgetConverted),
				schema.Array("items",
					schema.OptionalID("product_id"),
					schema.String("description", 1, 0),
					schema.Number("quantity", 0.01),
					schema.Number("unit_price", 0),
					schema.Number("subtotal", 0),
				),
				schema.OptionalString("notes", 1000),
				schema.OptionalString("terms", 2000),
				schema.OptionalID("converted_sale_id"),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "budget_number", Field: "budget_number", Unique: true},
				{Name: "client_id", Field: "client_id"},
				{Name: "status", Field: "status"},
				{Name: "created_at", Field: "created_at"},
			},
		},
		{
			Kind:     ServiceOrders,
			Numbered: true,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Int("order_number", 1, 0),
				schema.ID("client_id"),
				schema.String("equipment", 1, 200),
				schema.OptionalString("serial_number", 100),
				schema.String("reported_problem", 1, 1000),
				schema.OptionalString("diagnosis", 1000),
				schema.OptionalString("solution", 1000),
				schema.Enum("status", OrderOpen, OrderInProgress, OrderWaitingParts, OrderCompleted, OrderCancelled),
				schema.Enum("priority", PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent),
				schema.OptionalID("assigned_to"),
				schema.DateTime("start_date"),
				schema.OptionalDateTime("estimated_completion"),
				schema.OptionalDateTime("completion_date"),
				schema.NumberDefault("labor_cost", 0, 0),
				schema.NumberDefault("parts_cost", 0, 0),
				schema.NumberDefault("total_cost", 0, 0),
				schema.OptionalArray("parts_used", lineItems...),
				schema.OptionalString("notes", 1000),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "order_number", Field: "order_number", Unique: true},
				{Name: "client_id", Field: "client_id"},
				{Name: "status", Field: "status"},
				{Name: "assigned_to", Field: "assigned_to"},
			},
		},
		{
			Kind: Contracts,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("contract_number", 1, 50),
				schema.String("title", 1, 200),
				schema.Enum("type", ContractService, ContractRental, ContractSupply, ContractPartnership, ContractOther),
				schema.OptionalID("client_id"),
				schema.OptionalID("supplier_id"),
				schema.DateTime("start_date"),
				schema.DateTime("end_date"),
				schema.Number("value", 0),
				schema.String("payment_terms", 0, 500),
				schema.Enum("status", ContractDraft, ContractActive, ContractSuspended, ContractExpired, ContractCancelled),
				schema.Bool("auto_renew", false),
				schema.NumberDefault("renewal_notice_days", 0, 30),
				schema.OptionalString("description", 2000),
				schema.OptionalString("terms", 5000),
				schema.ID("responsible_user_id"),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "contract_number", Field: "contract_number", Unique: true},
				{Name: "status", Field: "status"},
				{Name: "end_date", Field: "end_date"},
			},
		},
		{
			Kind: CostCenters,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("code", 1, 20),
				schema.String("name", 1, 200),
				schema.OptionalString("description", 500),
				schema.OptionalID("parent_id"),
				schema.NumberDefault("budget", 0, 0),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "code", Field: "code", Unique: true},
				{Name: "active", Field: "active"},
			},
		},
		{
			Kind: ChartOfAccounts,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("code", 1, 20),
				schema.String("name", 1, 200),
				schema.Enum("type", AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense),
				schema.OptionalID("parent_id"),
				schema.Int("level", 1, 5),
				schema.Bool("accept_entries", true),
				schema.OptionalString("description", 500),
				schema.Bool("active", true),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "code", Field: "code", Unique: true},
				{Name: "type", Field: "type"},
				{Name: "active", Field: "active"},
			},
		},
		{
			Kind: FixedAssets,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.String("code", 1, 50),
				schema.String("name", 1, 200),
				schema.OptionalString("description", 1000),
				schema.String("category", 1, 100),
				schema.DateTime("acquisition_date"),
				schema.Number("acquisition_value", 0),
				schema.Number("useful_life_months", 1),
				schema.Number("monthly_depreciation", 0),
				schema.NumberDefault("accumulated_depreciation", 0, 0),
				schema.NumberDefault("residual_value", 0, 0),
				schema.OptionalString("location", 200),
				schema.OptionalID("responsible_id"),
				schema.Enum("status", AssetActive, AssetInactive, AssetMaintenance, AssetDisposed),
				schema.OptionalDateTime("disposal_date"),
				schema.OptionalNumber("disposal_value", 0),
				schema.OptionalString("notes", 1000),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "code", Field: "code", Unique: true},
				{Name: "status", Field: "status"},
				{Name: "category", Field: "category"},
			},
		},
		{
			Kind: TimeClocks,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.ID("employee_id"),
				schema.DateTime("date"),
				schema.Clock("clock_in"),
				schema.Clock("clock_out"),
				schema.Clock("lunch_start"),
				schema.Clock("lunch_end"),
				schema.NumberDefault("total_hours", 0, 0),
				schema.NumberDefault("overtime_hours", 0, 0),
				schema.OptionalString("notes", 500),
				schema.OptionalID("approved_by"),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "employee_id", Field: "employee_id"},
				{Name: "date", Field: "date"},
			},
		},
		{
			Kind:     ProductionOrders,
			Numbered: true,
			Fields: []schema.Field{
				schema.ID("id"),
				schema.Int("order_number", 1, 0),
				schema.ID("product_id"),
				schema.String("product_name", 1, 0),
				schema.Number("quantity", 0.01),
				schema.DateTime("start_date"),
				schema.DateTime("expected_completion"),
				schema.OptionalDateTime("completion_date"),
				schema.Enum("status", ProductionPlanned, ProductionInProgress, ProductionCompleted, ProductionCancelled),
				schema.Array("materials",
					schema.ID("product_id"),
					schema.String("product_name", 1, 0),
					schema.Number("quantity_needed", 0.01),
					schema.NumberDefault("quantity_used", 0, 0),
				),
				schema.NumberDefault("labor_hours", 0, 0),
				schema.NumberDefault("production_cost", 0, 0),
				schema.OptionalString("notes", 1000),
				schema.OptionalID("responsible_id"),
				schema.DateTime("created_at"),
				schema.DateTime("updated_at"),
			},
			Indexes: []schema.Index{
				{Name: "order_number", Field: "order_number", Unique: true},
				{Name: "product_id", Field: "product_id"},
				{Name: "status", Field: "status"},
			},
		},
	}
}
