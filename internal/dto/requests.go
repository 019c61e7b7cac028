package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. Decoding never fails;
// unparsable values are flagged so validation can report them per field.
type FlexInt struct {
	Value int64
	Set   bool
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	f.Set = true

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		f.Value = n
		f.Valid = true
		return nil
	}
	// tolerate integral floats such as 1500.0
	if fl, err := strconv.ParseFloat(raw, 64); err == nil && fl == float64(int64(fl)) {
		f.Value = int64(fl)
		f.Valid = true
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

type CreatePaymentLinkRequest struct {
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription"`
	UnitAmount         FlexInt `json:"unitAmount"`
	Currency           string  `json:"currency"`
	Quantity           FlexInt `json:"quantity"`
}

// LinkParams is the normalized form handed to the service once validation passed.
type LinkParams struct {
	ProductName        string
	ProductDescription string
	UnitAmount         int64
	Currency           string
	Quantity           int64
}

// Validate checks every field and returns one error per violation. Nothing is
// sent to the payment provider unless this returns an empty slice.
func (r *CreatePaymentLinkRequest) Validate() (LinkParams, []FieldError) {
	var errs []FieldError

	if strings.TrimSpace(r.ProductName) == "" {
		errs = append(errs, FieldError{Field: "productName", Message: "productName is required"})
	}

	switch {
	case !r.UnitAmount.Set:
		errs = append(errs, FieldError{Field: "unitAmount", Message: "unitAmount is required"})
	case !r.UnitAmount.Valid:
		errs = append(errs, FieldError{Field: "unitAmount", Message: "unitAmount must be an integer amount in minor currency units"})
	case r.UnitAmount.Value <= 0:
		errs = append(errs, FieldError{Field: "unitAmount", Message: "unitAmount must be a positive integer"})
	}

	if strings.TrimSpace(r.Currency) == "" {
		errs = append(errs, FieldError{Field: "currency", Message: "currency is required"})
	}

	quantity := int64(1)
	if r.Quantity.Set {
		switch {
		case !r.Quantity.Valid:
			errs = append(errs, FieldError{Field: "quantity", Message: "quantity must be an integer"})
		case r.Quantity.Value < 1:
			errs = append(errs, FieldError{Field: "quantity", Message: "quantity must be at least 1"})
		default:
			quantity = r.Quantity.Value
		}
	}

	if len(errs) > 0 {
		return LinkParams{}, errs
	}

	return LinkParams{
		ProductName:        strings.TrimSpace(r.ProductName),
		ProductDescription: strings.TrimSpace(r.ProductDescription),
		UnitAmount:         r.UnitAmount.Value,
		Currency:           strings.ToLower(strings.TrimSpace(r.Currency)),
		Quantity:           quantity,
	}, nil
}
