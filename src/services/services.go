// Package services holds the per-entity facades consumed by the
// presentation layer. Each service takes an explicit store handle at
// construction, translates missing-document failures into business
// language, and layers the domain queries and pure calculations of its
// entity kind on the generic engine operations.
package services

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/helpers"
)

func decode[T any](doc bson.M) (*T, error) {
	var out T
	if err := helpers.FromDocument(doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func decodeAll[T any](docs []bson.M) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := helpers.FromDocument(doc, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Manager wires one service per entity kind to a single store handle.
type Manager struct {
	Users            *UserService
	Products         *ProductService
	Clients          *ClientService
	Suppliers        *SupplierService
	Employees        *EmployeeService
	Sales            *SaleService
	Invoices         *InvoiceService
	Purchases        *PurchaseService
	Budgets          *BudgetService
	ServiceOrders    *ServiceOrderService
	Contracts        *ContractService
	CostCenters      *CostCenterService
	ChartOfAccounts  *ChartOfAccountsService
	FixedAssets      *FixedAssetService
	TimeClocks       *TimeClockService
	ProductionOrders *ProductionOrderService
	CashRegisters    *CashRegisterService
	CashTransactions *CashTransactionService
	Accounts         *AccountService
	Expenses         *ExpenseService
	StockMovements   *StockMovementService
}

func NewManager(store *engine.Store, logger *zap.SugaredLogger) *Manager {
	m := &Manager{
		Users:            NewUserService(store, logger),
		Products:         NewProductService(store, logger),
		Clients:          NewClientService(store, logger),
		Suppliers:        NewSupplierService(store, logger),
		Employees:        NewEmployeeService(store, logger),
		Invoices:         NewInvoiceService(store, logger),
		Purchases:        NewPurchaseService(store, logger),
		Budgets:          NewBudgetService(store, logger),
		ServiceOrders:    NewServiceOrderService(store, logger),
		Contracts:        NewContractService(store, logger),
		CostCenters:      NewCostCenterService(store, logger),
		ChartOfAccounts:  NewChartOfAccountsService(store, logger),
		FixedAssets:      NewFixedAssetService(store, logger),
		TimeClocks:       NewTimeClockService(store, logger),
		ProductionOrders: NewProductionOrderService(store, logger),
		CashRegisters:    NewCashRegisterService(store, logger),
		CashTransactions: NewCashTransactionService(store, logger),
		Accounts:         NewAccountService(store, logger),
		Expenses:         NewExpenseService(store, logger),
		StockMovements:   NewStockMovementService(store, logger),
	}
	m.Sales = NewSaleService(store, m.Products, logger)
	return m
}
