// Package fields classifies model record field names into value classes.
//
// The classification is the single authority consulted by the vote
// accumulator, the vote resolver, and the production merge engine, so that
// type checking, resolution strategy, and overwrite rules never diverge on
// what kind of value a field holds.
package fields

import "strings"

// Class is the value class of a model record field.
type Class int

const (
	// ClassOther covers unrecognized fields; values are accepted when non-null.
	ClassOther Class = iota

	// ClassPrice covers per-volume dollar pricing fields.
	ClassPrice

	// ClassCount covers integer token limits and the tier requirement.
	ClassCount

	// ClassCapabilityBool covers boolean capability and status flags.
	ClassCapabilityBool

	// ClassList covers alias, use-case, and constraint list fields.
	ClassList

	// ClassScalarString covers the fixed set of identity and description fields.
	ClassScalarString
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassPrice:
		return "price"
	case ClassCount:
		return "count"
	case ClassCapabilityBool:
		return "capability"
	case ClassList:
		return "list"
	case ClassScalarString:
		return "string"
	default:
		return "other"
	}
}

// TierRequirementField is the one count field where zero is a legitimate
// published value, so resolution uses a plain majority instead of preferring
// positive votes.
const TierRequirementField = "requires_tier"

// pricingToken marks per-volume dollar pricing fields
// (dollars_per_million_tokens_input, _output, _cached_input, cache tiers).
const pricingToken = "dollars_per_million_tokens"

// countSuffix marks integer token-limit fields (max_input_tokens, etc.).
const countSuffix = "_tokens"

var countFields = map[string]struct{}{
	"max_tools":          {},
	TierRequirementField: {},
}

var listFields = map[string]struct{}{
	"model_aliases":         {},
	"recommended_use_cases": {},
	"use_cases":             {},
	"temperature_values":    {},
}

var scalarStringFields = map[string]struct{}{
	"model_name":        {},
	"model_id":          {},
	"display_name":      {},
	"description":       {},
	"model_family":      {},
	"speed_tier":        {},
	"intelligence_tier": {},
	"release_date":      {},
	"deprecated_date":   {},
	"added_date":        {},
	"notes":             {},
	"api_endpoint":      {},
	"tool_call_format":  {},
}

// Classify maps a field name to its value class.
func Classify(name string) Class {
	if strings.Contains(name, pricingToken) {
		return ClassPrice
	}
	if _, ok := countFields[name]; ok {
		return ClassCount
	}
	if strings.HasSuffix(name, countSuffix) {
		return ClassCount
	}
	if _, ok := listFields[name]; ok {
		return ClassList
	}
	if _, ok := scalarStringFields[name]; ok {
		return ClassScalarString
	}
	if strings.HasPrefix(name, "supports_") ||
		strings.HasPrefix(name, "is_") ||
		strings.HasPrefix(name, "requires_") {
		return ClassCapabilityBool
	}
	return ClassOther
}

// IsUpdateField reports whether promotion may overwrite the field on a model
// that already exists in production. Pricing, token limits, and capability
// flags are refreshed from extraction; everything else is curated and only
// changes through review.
func IsUpdateField(name string) bool {
	switch Classify(name) {
	case ClassPrice, ClassCount, ClassCapabilityBool:
		return true
	default:
		return false
	}
}
