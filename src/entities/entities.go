// Package entities defines the typed record for every collection kind, the
// constructors that assign identifiers and inject default values before
// validation, and the declarative schemas and index sets the store is
// opened with.
package entities

import "time"

// NowISO returns the current instant in the ISO-8601 form all temporal
// fields are stored in.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Collection kinds.
const (
	Users            = "users"
	Products         = "products"
	Clients          = "clients"
	Sales            = "sales"
	Invoices         = "invoices"
	CashRegisters    = "cash_registers"
	CashTransactions = "cash_transactions"
	Accounts         = "accounts"
	StockMovements   = "stock_movements"
	Suppliers        = "suppliers"
	Purchases        = "purchases"
	Expenses         = "expenses"
	Employees        = "employees"
	Budgets          = "budgets"
	ServiceOrders    = "service_orders"
	Contracts        = "contracts"
	CostCenters      = "cost_centers"
	ChartOfAccounts  = "chart_of_accounts"
	FixedAssets      = "fixed_assets"
	TimeClocks       = "time_clocks"
	ProductionOrders = "production_orders"
)

// SchemaVersion is bumped whenever a collection or index is added. Version
// increases are additive only.
const SchemaVersion = 2
