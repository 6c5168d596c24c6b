package models

// Payment methods accepted by the order form.
var PaymentMethods = []string{"Cash", "UPI", "Card"}

// Bill is the server-persisted record created from a submitted order.
// ProductDetails carries the line items as an embedded JSON string.
type Bill struct {
	BillID         int    `json:"billId"`
	BillUUID       string `json:"billUUID"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	ContactNumber  string `json:"contactNumber"`
	PaymentMethod  string `json:"paymentMethod"`
	TotalAmount    string `json:"totalAmount"`
	ProductDetails string `json:"productDetails"`
	IsGenerated    string `json:"isGenerated"`
}

// GenerateBillRequest is the payload for POST /bill/generateReport, used
// both for submitting a new order and for re-generating an existing bill.
type GenerateBillRequest struct {
	FileName       string `json:"fileName"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	ContactNumber  string `json:"contactNumber"`
	PaymentMethod  string `json:"paymentMethod"`
	TotalAmount    string `json:"totalAmount"`
	ProductDetails string `json:"productDetails"`
	IsGenerated    string `json:"isGenerated"`
}
