package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const MaxVariants = 99

type ProductSize string

const (
	SizeSmall  ProductSize = "small"
	SizeMedium ProductSize = "medium"
	SizeLarge  ProductSize = "large"
)

func (s ProductSize) Valid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

type Product struct {
	BaseSku  string
	Name     string
	Variants []ProductVariant
}

type ProductVariant struct {
	BaseSku    string
	VariantSku string
	Price      decimal.Decimal
	Size       ProductSize
	Type       string
}

func (v *ProductVariant) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *ProductVariant) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(v)
}

type CreateVariant struct {
	Price decimal.Decimal
	Size  ProductSize
	Type  string
}

type CreateProduct struct {
	Name     string
	Sku      string
	Variants []CreateVariant
}

// NormalizeSku trims and upper-cases a base sku.
func NormalizeSku(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// VariantSku derives a variant sku from its base sku and size.
func VariantSku(baseSku string, size ProductSize) string {
	return fmt.Sprintf("%s_%s", strings.ToUpper(baseSku), strings.ToUpper(string(size)))
}

type ProductUpdate struct {
	Name *string
}

type VariantUpdate struct {
	Price *decimal.Decimal
	Type  *string
	Size  *ProductSize
}

type ProductsPage struct {
	Products []Product
	Next     Cursor
}
