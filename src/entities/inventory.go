package entities

import "tallydb/src/helpers"

type Product struct {
	ID            string  `bson:"id"`
	Code          string  `bson:"code"`
	Name          string  `bson:"name"`
	Description   string  `bson:"description,omitempty"`
	Category      string  `bson:"category"`
	Unit          string  `bson:"unit"` // UN, KG, L, etc
	CostPrice     float64 `bson:"cost_price"`
	SalePrice     float64 `bson:"sale_price"`
	StockQuantity float64 `bson:"stock_quantity"`
	MinStock      float64 `bson:"min_stock"`
	Barcode       string  `bson:"barcode,omitempty"`
	Active        bool    `bson:"active"`
	CreatedAt     string  `bson:"created_at"`
	UpdatedAt     string  `bson:"updated_at"`
}

func NewProduct(code, name, category, unit string) *Product {
	now := NowISO()
	return &Product{
		ID:        helpers.GenerateUUID(),
		Code:      code,
		Name:      name,
		Category:  category,
		Unit:      unit,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StockMovement records one inventory change; quantity is signed only
// through Type (in/out/adjustment), the amount itself is free.
type StockMovement struct {
	ID          string  `bson:"id"`
	ProductID   string  `bson:"product_id"`
	Type        string  `bson:"type"`
	Quantity    float64 `bson:"quantity"`
	UnitCost    float64 `bson:"unit_cost,omitempty"`
	Reason      string  `bson:"reason"`
	ReferenceID string  `bson:"reference_id,omitempty"`
	UserID      string  `bson:"user_id"`
	CreatedAt   string  `bson:"created_at"`
}

func NewStockMovement(productID, movementType string, quantity float64, reason, userID string) *StockMovement {
	return &StockMovement{
		ID:        helpers.GenerateUUID(),
		ProductID: productID,
		Type:      movementType,
		Quantity:  quantity,
		Reason:    reason,
		UserID:    userID,
		CreatedAt: NowISO(),
	}
}

// ProductionMaterial is one bill-of-materials line of a production order.
type ProductionMaterial struct {
	ProductID      string  `bson:"product_id"`
	ProductName    string  `bson:"product_name"`
	QuantityNeeded float64 `bson:"quantity_needed"`
	QuantityUsed   float64 `bson:"quantity_used"`
}

type ProductionOrder struct {
	ID                 string               `bson:"id"`
	OrderNumber        int64                `bson:"order_number"`
	ProductID          string               `bson:"product_id"`
	ProductName        string               `bson:"product_name"`
	Quantity           float64              `bson:"quantity"`
	StartDate          string               `bson:"start_date"`
	ExpectedCompletion string               `bson:"expected_completion"`
	CompletionDate     string               `bson:"completion_date,omitempty"`
	Status             string               `bson:"status"`
	Materials          []ProductionMaterial `bson:"materials"`
	LaborHours         float64              `bson:"labor_hours"`
	ProductionCost     float64              `bson:"production_cost"`
	Notes              string               `bson:"notes,omitempty"`
	ResponsibleID      string               `bson:"responsible_id,omitempty"`
	CreatedAt          string               `bson:"created_at"`
	UpdatedAt          string               `bson:"updated_at"`
}

func NewProductionOrder(productID, productName string, quantity float64) *ProductionOrder {
	now := NowISO()
	return &ProductionOrder{
		ID:                 helpers.GenerateUUID(),
		ProductID:          productID,
		ProductName:        productName,
		Quantity:           quantity,
		StartDate:          now,
		ExpectedCompletion: now,
		Status:             ProductionPlanned,
		Materials:          []ProductionMaterial{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
