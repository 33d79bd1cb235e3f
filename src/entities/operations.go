package entities

import "tallydb/src/helpers"

type ServiceOrder struct {
	ID                  string     `bson:"id"`
	OrderNumber         int64      `bson:"order_number"`
	ClientID            string     `bson:"client_id"`
	Equipment           string     `bson:"equipment"`
	SerialNumber        string     `bson:"serial_number,omitempty"`
	ReportedProblem     string     `bson:"reported_problem"`
	Diagnosis           string     `bson:"diagnosis,omitempty"`
	Solution            string     `bson:"solution,omitempty"`
	Status              string     `bson:"status"`
	Priority            string     `bson:"priority"`
	AssignedTo          string     `bson:"assigned_to,omitempty"`
	StartDate           string     `bson:"start_date"`
	EstimatedCompletion string     `bson:"estimated_completion,omitempty"`
	CompletionDate      string     `bson:"completion_date,omitempty"`
	LaborCost           float64    `bson:"labor_cost"`
	PartsCost           float64    `bson:"parts_cost"`
	TotalCost           float64    `bson:"total_cost"`
	PartsUsed           []LineItem `bson:"parts_used,omitempty"`
	Notes               string     `bson:"notes,omitempty"`
	CreatedAt           string     `bson:"created_at"`
	UpdatedAt           string     `bson:"updated_at"`
}

func NewServiceOrder(clientID, equipment, reportedProblem string) *ServiceOrder {
	now := NowISO()
	return &ServiceOrder{
		ID:              helpers.GenerateUUID(),
		ClientID:        clientID,
		Equipment:       equipment,
		ReportedProblem: reportedProblem,
		Status:          OrderOpen,
		Priority:        PriorityNormal,
		StartDate:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Contract numbers are caller-supplied strings, not sequence numbers; the
// unique index on contract_number still rejects duplicates.
type Contract struct {
	ID                string  `bson:"id"`
	ContractNumber    string  `bson:"contract_number"`
	Title             string  `bson:"title"`
	Type              string  `bson:"type"`
	ClientID          string  `bson:"client_id,omitempty"`
	SupplierID        string  `bson:"supplier_id,omitempty"`
	StartDate         string  `bson:"start_date"`
	EndDate           string  `bson:"end_date"`
	Value             float64 `bson:"value"`
	PaymentTerms      string  `bson:"payment_terms"`
	Status            string  `bson:"status"`
	AutoRenew         bool    `bson:"auto_renew"`
	RenewalNoticeDays float64 `bson:"renewal_notice_days"`
	Description       string  `bson:"description,omitempty"`
	Terms             string  `bson:"terms,omitempty"`
	ResponsibleUserID string  `bson:"responsible_user_id"`
	CreatedAt         string  `bson:"created_at"`
	UpdatedAt         string  `bson:"updated_at"`
}

func NewContract(contractNumber, title, contractType, responsibleUserID string) *Contract {
	now := NowISO()
	return &Contract{
		ID:                helpers.GenerateUUID(),
		ContractNumber:    contractNumber,
		Title:             title,
		Type:              contractType,
		StartDate:         now,
		EndDate:           now,
		PaymentTerms:      "",
		Status:            ContractDraft,
		RenewalNoticeDays: 30,
		ResponsibleUserID: responsibleUserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

type FixedAsset struct {
	ID                      string  `bson:"id"`
	Code                    string  `bson:"code"`
	Name                    string  `bson:"name"`
	Description             string  `bson:"description,omitempty"`
	Category                string  `bson:"category"`
	AcquisitionDate         string  `bson:"acquisition_date"`
	AcquisitionValue        float64 `bson:"acquisition_value"`
	UsefulLifeMonths        float64 `bson:"useful_life_months"`
	MonthlyDepreciation     float64 `bson:"monthly_depreciation"`
	AccumulatedDepreciation float64 `bson:"accumulated_depreciation"`
	ResidualValue           float64 `bson:"residual_value"`
	Location                string  `bson:"location,omitempty"`
	ResponsibleID           string  `bson:"responsible_id,omitempty"`
	Status                  string  `bson:"status"`
	DisposalDate            string  `bson:"disposal_date,omitempty"`
	DisposalValue           float64 `bson:"disposal_value,omitempty"`
	Notes                   string  `bson:"notes,omitempty"`
	CreatedAt               string  `bson:"created_at"`
	UpdatedAt               string  `bson:"updated_at"`
}

func NewFixedAsset(code, name, category string, acquisitionValue, usefulLifeMonths float64) *FixedAsset {
	now := NowISO()
	asset := &FixedAsset{
		ID:               helpers.GenerateUUID(),
		Code:             code,
		Name:             name,
		Category:         category,
		AcquisitionDate:  now,
		AcquisitionValue: acquisitionValue,
		UsefulLifeMonths: usefulLifeMonths,
		Status:           AssetActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if usefulLifeMonths > 0 {
		asset.MonthlyDepreciation = acquisitionValue / usefulLifeMonths
	}
	return asset
}

// TimeClock is one day of punches for one employee. Punch fields are HH:MM
// wall-clock values; Date is ISO-8601 interpreted at day granularity.
type TimeClock struct {
	ID            string  `bson:"id"`
	EmployeeID    string  `bson:"employee_id"`
	Date          string  `bson:"date"`
	ClockIn       string  `bson:"clock_in,omitempty"`
	ClockOut      string  `bson:"clock_out,omitempty"`
	LunchStart    string  `bson:"lunch_start,omitempty"`
	LunchEnd      string  `bson:"lunch_end,omitempty"`
	TotalHours    float64 `bson:"total_hours"`
	OvertimeHours float64 `bson:"overtime_hours"`
	Notes         string  `bson:"notes,omitempty"`
	ApprovedBy    string  `bson:"approved_by,omitempty"`
	CreatedAt     string  `bson:"created_at"`
	UpdatedAt     string  `bson:"updated_at"`
}

func NewTimeClock(employeeID, date string) *TimeClock {
	now := NowISO()
	return &TimeClock{
		ID:         helpers.GenerateUUID(),
		EmployeeID: employeeID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
