package models

import "fmt"

// Address is a structured postal address collected by the storefront checkout.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Canonical joins the fields into the single line handed to geocoding providers:
// "{street}, {city}, {state} {zip}".
func (a Address) Canonical() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}

// IsEmpty reports whether no field carries any text.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Zip == ""
}
