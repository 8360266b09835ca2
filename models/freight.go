package models

// FreightItem pairs a resolved product with its quantity for the freight
// provider contract.
type FreightItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
