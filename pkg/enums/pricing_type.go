package enums

import "fmt"

// PricingType describes the allowed values for the `pricing_type` column on menu items.
type PricingType string

const (
	PricingTypeStatic        PricingType = "static"
	PricingTypeTiered        PricingType = "tiered"
	PricingTypeComplimentary PricingType = "complimentary"
	PricingTypeDiscounted    PricingType = "discounted"
	PricingTypeDynamic       PricingType = "dynamic"
)

var validPricingTypes = []PricingType{
	PricingTypeStatic,
	PricingTypeTiered,
	PricingTypeComplimentary,
	PricingTypeDiscounted,
	PricingTypeDynamic,
}

// IsValid reports whether the value matches the canonical pricing type enum.
func (p PricingType) IsValid() bool {
	for _, candidate := range validPricingTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

func (p PricingType) String() string {
	return string(p)
}

// ParsePricingType converts the raw string to PricingType.
func ParsePricingType(value string) (PricingType, error) {
	for _, candidate := range validPricingTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pricing type %q", value)
}
