package models

import "github.com/shopspring/decimal"

// City is a branch/residence location. Customers and accounts share the same
// closed set; an account's city is the branch it was opened at and does not
// have to match its customer's city.
type City string

const (
	CityAnkara   City = "ANKARA"
	CityIstanbul City = "ISTANBUL"
	CityIzmir    City = "IZMIR"
	CityAntalya  City = "ANTALYA"
	CityBursa    City = "BURSA"
)

// Valid reports whether c is one of the known cities.
func (c City) Valid() bool {
	switch c {
	case CityAnkara, CityIstanbul, CityIzmir, CityAntalya, CityBursa:
		return true
	}
	return false
}

// Currency is the denomination of an account. Deposits and withdrawals never
// check or convert it.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyTRY Currency = "TRY"
	CurrencyGBP Currency = "GBP"
)

// Valid reports whether c is one of the known currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyTRY, CurrencyGBP:
		return true
	}
	return false
}

// Customer is a bank customer. The id is caller-supplied and immutable; it is
// also the store key.
type Customer struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name        string `json:"name" gorm:"type:varchar(200)"`
	DateOfBirth int    `json:"dateOfBirth"` // year only
	Address     string `json:"address" gorm:"type:text"`
	City        City   `json:"city" gorm:"type:varchar(20)"`
}

// IsEmpty reports whether c is the empty record returned when a customer is
// not found or an operation is rejected.
func (c Customer) IsEmpty() bool {
	return c.ID == ""
}

// Account is a bank account tied to a customer by CustomerID. The reference
// is checked when the account is created or updated, never afterwards.
type Account struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CustomerID string          `json:"customerId" gorm:"type:varchar(64);index"`
	Balance    decimal.Decimal `json:"balance" gorm:"type:decimal(18,4)"`
	City       City            `json:"city" gorm:"type:varchar(20)"`
	Currency   Currency        `json:"currency" gorm:"type:varchar(3)"`
}

// IsEmpty reports whether a is the empty record used as the not-found /
// rejected-operation result.
func (a Account) IsEmpty() bool {
	return a.ID == ""
}
