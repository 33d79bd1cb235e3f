package entities

// User roles.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// Payment methods.
const (
	PaymentCash         = "cash"
	PaymentCreditCard   = "credit_card"
	PaymentDebitCard    = "debit_card"
	PaymentPix          = "pix"
	PaymentBankTransfer = "bank_transfer"
	PaymentCheck        = "check"
)

// Sale statuses.
const (
	SaleCompleted = "completed"
	SaleCancelled = "cancelled"
	SalePending   = "pending"
)

// Invoice statuses.
const (
	InvoicePending   = "pending"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
	InvoiceOverdue   = "overdue"
)

// Purchase statuses.
const (
	PurchasePending   = "pending"
	PurchaseApproved  = "approved"
	PurchaseReceived  = "received"
	PurchaseCancelled = "cancelled"
)

// Budget statuses.
const (
	BudgetDraft     = "draft"
	BudgetSent      = "sent"
	BudgetApproved  = "approved"
	BudgetRejected  = "rejected"
	BudgetExpired   = "expired"
	BudgetConverted = "converted"
)

// Service order statuses and priorities.
const (
	OrderOpen         = "open"
	OrderInProgress   = "in_progress"
	OrderWaitingParts = "waiting_parts"
	OrderCompleted    = "completed"
	OrderCancelled    = "cancelled"

	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Contract statuses and types.
const (
	ContractDraft     = "draft"
	ContractActive    = "active"
	ContractSuspended = "suspended"
	ContractExpired   = "expired"
	ContractCancelled = "cancelled"

	ContractService     = "service"
	ContractRental      = "rental"
	ContractSupply      = "supply"
	ContractPartnership = "partnership"
	ContractOther       = "other"
)

// Fixed asset statuses.
const (
	AssetActive      = "active"
	AssetInactive    = "inactive"
	AssetMaintenance = "maintenance"
	AssetDisposed    = "disposed"
)

// Production order statuses.
const (
	ProductionPlanned    = "planned"
	ProductionInProgress = "in_progress"
	ProductionCompleted  = "completed"
	ProductionCancelled  = "cancelled"
)

// Cash register statuses and transaction types.
const (
	RegisterOpen   = "open"
	RegisterClosed = "closed"

	TransactionSale       = "sale"
	TransactionExpense    = "expense"
	TransactionWithdrawal = "withdrawal"
	TransactionDeposit    = "deposit"
)

// Account (receivable/payable) fields.
const (
	AccountReceivable = "receivable"
	AccountPayable    = "payable"

	AccountPending   = "pending"
	AccountPaid      = "paid"
	AccountOverdue   = "overdue"
	AccountCancelled = "cancelled"
)

// Stock movement types.
const (
	StockIn         = "in"
	StockOut        = "out"
	StockAdjustment = "adjustment"
)

// Chart of accounts types.
const (
	AccountTypeAsset     = "asset"
	AccountTypeLiability = "liability"
	AccountTypeEquity    = "equity"
	AccountTypeRevenue   = "revenue"
	AccountTypeExpense   = "expense"
)

// Expense categories.
const (
	ExpenseRent        = "rent"
	ExpenseUtilities   = "utilities"
	ExpenseSalaries    = "salaries"
	ExpenseSupplies    = "supplies"
	ExpenseMaintenance = "maintenance"
	ExpenseTaxes       = "taxes"
	ExpenseInsurance   = "insurance"
	ExpenseMarketing   = "marketing"
	ExpenseTransport   = "transport"
	ExpenseOther       = "other"
)
