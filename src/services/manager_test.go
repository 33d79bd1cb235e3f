package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/engine"
	"tallydb/src/entities"
)

func TestClientService_GetByDocument(t *testing.T) {
	m := newTestManager(t)

	client := entities.NewClient("Acme Ltda", "12.345.678/0001-00")
	require.NoError(t, m.Clients.Create(client))

	got, err := m.Clients.GetByDocument("12.345.678/0001-00")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, client.ID, got.ID)

	err = m.Clients.Create(entities.NewClient("Other", "12.345.678/0001-00"))
	require.Error(t, err)
	assert.True(t, engine.IsUniqueViolation(err))
}

func TestEmployeeService_GetByDepartmentAndActive(t *testing.T) {
	m := newTestManager(t)

	ana := entities.NewEmployee("Ana", "111", "Technician", "workshop", 3000)
	require.NoError(t, m.Employees.Create(ana))

	bia := entities.NewEmployee("Bia", "222", "Clerk", "front desk", 2500)
	bia.Active = false
	require.NoError(t, m.Employees.Create(bia))

	workshop, err := m.Employees.GetByDepartment("workshop")
	require.NoError(t, err)
	require.Len(t, workshop, 1)
	assert.Equal(t, ana.ID, workshop[0].ID)

	active, err := m.Employees.GetActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, ana.ID, active[0].ID)
}

func TestServiceOrderService_TotalCostRecomputed(t *testing.T) {
	m := newTestManager(t)

	order := entities.NewServiceOrder("c-1", "Compressor", "will not start")
	require.NoError(t, m.ServiceOrders.Create(order))
	assert.Equal(t, int64(1), order.OrderNumber)

	order.LaborCost = 120
	order.PartsCost = 80
	require.NoError(t, m.ServiceOrders.Update(order.ID, order))

	got, err := m.ServiceOrders.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, float64(200), got.TotalCost)
}

func TestProductionOrderService_SequenceAndQueries(t *testing.T) {
	m := newTestManager(t)

	first := entities.NewProductionOrder("p-1", "Bench", 5)
	require.NoError(t, m.ProductionOrders.Create(first))
	assert.Equal(t, int64(1), first.OrderNumber)

	second := entities.NewProductionOrder("p-2", "Table", 2)
	second.Status = entities.ProductionInProgress
	require.NoError(t, m.ProductionOrders.Create(second))
	assert.Equal(t, int64(2), second.OrderNumber)

	byProduct, err := m.ProductionOrders.GetByProduct("p-1")
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, first.ID, byProduct[0].ID)

	inProgress, err := m.ProductionOrders.GetByStatus(entities.ProductionInProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, second.ID, inProgress[0].ID)
}

func TestBudgetService_SequenceAndStatus(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	budget := entities.NewBudget("c-1", "u-1", isoDaysFrom(now, 15), []entities.BudgetItem{
		{Description: "Site survey", Quantity: 1, UnitPrice: 300, Subtotal: 300},
	})
	require.NoError(t, m.Budgets.Create(budget))
	assert.Equal(t, int64(1), budget.BudgetNumber)
	assert.Equal(t, float64(300), budget.FinalAmount)

	drafts, err := m.Budgets.GetByStatus(entities.BudgetDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestPurchaseService_SequenceAndSupplier(t *testing.T) {
	m := newTestManager(t)

	purchase := entities.NewPurchase("s-1", "u-1", []entities.LineItem{
		{ProductID: "p-1", ProductName: "Bolts", Quantity: 100, UnitPrice: 0.5, Subtotal: 50},
	})
	require.NoError(t, m.Purchases.Create(purchase))
	assert.Equal(t, int64(1), purchase.PurchaseNumber)

	bySupplier, err := m.Purchases.GetBySupplier("s-1")
	require.NoError(t, err)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, purchase.ID, bySupplier[0].ID)
}

func TestCostCenterService_GetByCodeAndActive(t *testing.T) {
	m := newTestManager(t)

	admin := entities.NewCostCenter("CC-01", "Administration")
	require.NoError(t, m.CostCenters.Create(admin))

	closed := entities.NewCostCenter("CC-02", "Old Branch")
	closed.Active = false
	require.NoError(t, m.CostCenters.Create(closed))

	got, err := m.CostCenters.GetByCode("CC-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, admin.ID, got.ID)

	active, err := m.CostCenters.GetActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, admin.ID, active[0].ID)
}

func TestChartOfAccountsService_GetByType(t *testing.T) {
	m := newTestManager(t)

	cash := entities.NewChartOfAccount("1.1.01", "Cash", entities.AccountTypeAsset, 3)
	require.NoError(t, m.ChartOfAccounts.Create(cash))

	rent := entities.NewChartOfAccount("4.1.01", "Rent", entities.AccountTypeExpense, 3)
	require.NoError(t, m.ChartOfAccounts.Create(rent))

	assets, err := m.ChartOfAccounts.GetByType(entities.AccountTypeAsset)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, cash.ID, assets[0].ID)

	got, err := m.ChartOfAccounts.GetByCode("4.1.01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rent.ID, got.ID)
}

func TestCashRegisterService_OpenAndClose(t *testing.T) {
	m := newTestManager(t)

	register := entities.NewCashRegister("u-1", 150)
	require.NoError(t, m.CashRegisters.Create(register))

	open, err := m.CashRegisters.GetOpen()
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, m.CashRegisters.Close(register.ID, 480, "till balanced"))

	got, err := m.CashRegisters.GetByID(register.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.RegisterClosed, got.Status)
	assert.Equal(t, float64(480), got.ClosingBalance)
	assert.NotEmpty(t, got.ClosingDate)

	err = m.CashRegisters.Close(register.ID, 480, "")
	assert.Error(t, err, "closing twice is rejected")

	open, err = m.CashRegisters.GetOpen()
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestCashTransactionService_GetByRegister(t *testing.T) {
	m := newTestManager(t)

	register := entities.NewCashRegister("u-1", 100)
	require.NoError(t, m.CashRegisters.Create(register))

	sale := entities.NewCashTransaction(register.ID, entities.TransactionSale, 75, entities.PaymentCash, "counter sale")
	require.NoError(t, m.CashTransactions.Create(sale))

	withdrawal := entities.NewCashTransaction(register.ID, entities.TransactionWithdrawal, -50, entities.PaymentCash, "bank deposit")
	require.NoError(t, m.CashTransactions.Create(withdrawal))

	byRegister, err := m.CashTransactions.GetByRegister(register.ID)
	require.NoError(t, err)
	assert.Len(t, byRegister, 2)

	sales, err := m.CashTransactions.GetByType(entities.TransactionSale)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)
}

func TestAccountService_MarkPaid(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	payable := entities.NewAccount(entities.AccountPayable, "Office rent", 1200, isoDaysFrom(now, 10))
	require.NoError(t, m.Accounts.Create(payable))

	require.NoError(t, m.Accounts.MarkPaid(payable.ID, entities.PaymentBankTransfer))

	got, err := m.Accounts.GetByID(payable.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.AccountPaid, got.Status)
	assert.Equal(t, entities.PaymentBankTransfer, got.PaymentMethod)
	assert.NotEmpty(t, got.PaidDate)

	pending, err := m.Accounts.GetByStatus(entities.AccountPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestExpenseService_GetByCategory(t *testing.T) {
	m := newTestManager(t)

	rent := entities.NewExpense("July rent", entities.ExpenseRent, 2000, entities.PaymentBankTransfer, "u-1")
	require.NoError(t, m.Expenses.Create(rent))

	power := entities.NewExpense("Electricity", entities.ExpenseUtilities, 350, entities.PaymentPix, "u-1")
	require.NoError(t, m.Expenses.Create(power))

	byCategory, err := m.Expenses.GetByCategory(entities.ExpenseRent)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, rent.ID, byCategory[0].ID)
}
