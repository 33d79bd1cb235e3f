package entities

import "tallydb/src/helpers"

// User is an application account. The stored credential is an encoded
// argon2id hash, never the password itself.
type User struct {
	ID           string `bson:"id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	Active       bool   `bson:"active"`
	CreatedAt    string `bson:"created_at"`
	UpdatedAt    string `bson:"updated_at"`
}

func NewUser(name, email, role string) *User {
	now := NowISO()
	return &User{
		ID:        helpers.GenerateUUID(),
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Client is a customer; Document holds the tax document (CPF/CNPJ) and is
// unique across the collection.
type Client struct {
	ID          string  `bson:"id"`
	Name        string  `bson:"name"`
	Document    string  `bson:"document"`
	Email       string  `bson:"email,omitempty"`
	Phone       string  `bson:"phone,omitempty"`
	Address     string  `bson:"address,omitempty"`
	City        string  `bson:"city,omitempty"`
	State       string  `bson:"state,omitempty"`
	ZipCode     string  `bson:"zip_code,omitempty"`
	CreditLimit float64 `bson:"credit_limit"`
	CurrentDebt float64 `bson:"current_debt"`
	Active      bool    `bson:"active"`
	CreatedAt   string  `bson:"created_at"`
	UpdatedAt   string  `bson:"updated_at"`
}

func NewClient(name, document string) *Client {
	now := NowISO()
	return &Client{
		ID:        helpers.GenerateUUID(),
		Name:      name,
		Document:  document,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type Supplier struct {
	ID            string `bson:"id"`
	Name          string `bson:"name"`
	Document      string `bson:"document"`
	Email         string `bson:"email,omitempty"`
	Phone         string `bson:"phone,omitempty"`
	Address       string `bson:"address,omitempty"`
	City          string `bson:"city,omitempty"`
	State         string `bson:"state,omitempty"`
	ZipCode       string `bson:"zip_code,omitempty"`
	ContactPerson string `bson:"contact_person,omitempty"`
	Active        bool   `bson:"active"`
	CreatedAt     string `bson:"created_at"`
	UpdatedAt     string `bson:"updated_at"`
}

func NewSupplier(name, document string) *Supplier {
	now := NowISO()
	return &Supplier{
		ID:        helpers.GenerateUUID(),
		Name:      name,
		Document:  document,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type Employee struct {
	ID              string  `bson:"id"`
	Name            string  `bson:"name"`
	Document        string  `bson:"document"`
	Email           string  `bson:"email,omitempty"`
	Phone           string  `bson:"phone,omitempty"`
	Position        string  `bson:"position"`
	Department      string  `bson:"department"`
	Salary          float64 `bson:"salary"`
	HireDate        string  `bson:"hire_date"`
	TerminationDate string  `bson:"termination_date,omitempty"`
	Address         string  `bson:"address,omitempty"`
	City            string  `bson:"city,omitempty"`
	State           string  `bson:"state,omitempty"`
	ZipCode         string  `bson:"zip_code,omitempty"`
	Active          bool    `bson:"active"`
	CreatedAt       string  `bson:"created_at"`
	UpdatedAt       string  `bson:"updated_at"`
}

func NewEmployee(name, document, position, department string, salary float64) *Employee {
	now := NowISO()
	return &Employee{
		ID:         helpers.GenerateUUID(),
		Name:       name,
		Document:   document,
		Position:   position,
		Department: department,
		Salary:     salary,
		HireDate:   now,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
