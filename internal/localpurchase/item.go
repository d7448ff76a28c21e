package localpurchase

import (
	"strings"

	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/shopspring/decimal"
)

// Item is one off-inventory purchase line awaiting approval. Quantity and
// unit price are the only editable factors; the total is recomputed on every
// edit and deliberately has no setter, so the three can never disagree.
type Item struct {
	PartNo   string
	PartName string

	quantity     decimal.Decimal
	pricePerUnit decimal.Decimal
	totalPrice   decimal.Decimal
}

// NewItem starts an empty line for the given part.
func NewItem(partNo, partName string) *Item {
	return &Item{PartNo: strings.TrimSpace(partNo), PartName: strings.TrimSpace(partName)}
}

// SetQuantity parses and stores the typed quantity, recomputing the total.
func (i *Item) SetQuantity(raw string) error {
	qty, err := parseAmount(raw, "quantity")
	if err != nil {
		return err
	}
	i.quantity = qty
	i.recompute()
	return nil
}

// SetPricePerUnit parses and stores the typed unit price, recomputing the
// total.
func (i *Item) SetPricePerUnit(raw string) error {
	price, err := parseAmount(raw, "price per unit")
	if err != nil {
		return err
	}
	i.pricePerUnit = price
	i.recompute()
	return nil
}

// Quantity returns the current quantity.
func (i *Item) Quantity() decimal.Decimal {
	return i.quantity
}

// PricePerUnit returns the current unit price.
func (i *Item) PricePerUnit() decimal.Decimal {
	return i.pricePerUnit
}

// TotalPrice is always quantity times unit price rounded to two places.
func (i *Item) TotalPrice() decimal.Decimal {
	return i.totalPrice
}

func (i *Item) recompute() {
	i.totalPrice = i.quantity.Mul(i.pricePerUnit).Round(2)
}

// validate reports why the line cannot be submitted yet, if anything.
func (i *Item) validate() error {
	if strings.TrimSpace(i.PartNo) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "part number is required")
	}
	if !i.quantity.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if !i.pricePerUnit.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price per unit must be positive")
	}
	return nil
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, field+" is required")
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, field+" must be numeric")
	}
	if value.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, field+" must not be negative")
	}
	return value, nil
}
