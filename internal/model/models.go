package model

import "time"

const (
	// ContactUnavailable fills buyer fields the provider did not capture.
	ContactUnavailable = "N/A"
	// DescriptionUnavailable fills in for products created without a description.
	DescriptionUnavailable = "No description available"
)

type LineItem struct {
	ProductName        string `json:"productName"`
	Quantity           int64  `json:"quantity"`
	ProductDescription string `json:"productDescription"`
}

type PaymentRecord struct {
	ID          string     `json:"id"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	Created     string     `json:"created"`
	BuyerEmail  string     `json:"buyerEmail"`
	BuyerName   string     `json:"buyerName"`
	BuyerPhone  string     `json:"buyerPhone"`
	ItemsBought []LineItem `json:"itemsBought"`
}

// EpochToInstant renders provider epoch seconds as a UTC ISO-8601 instant
// with millisecond precision.
func EpochToInstant(sec int64) string {
	return time.UnixMilli(sec * 1000).UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
