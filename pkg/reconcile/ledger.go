package reconcile

import (
	"math"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/fields"
)

// FieldLedger collects validated votes for one model across documents.
// Votes are appended in document-arrival order and never removed; later
// documents can outvote earlier observations but cannot delete them.
type FieldLedger struct {
	votes      map[string][]any
	fieldOrder []string
}

func newFieldLedger() *FieldLedger {
	return &FieldLedger{votes: make(map[string][]any)}
}

// add records a validated vote for a field.
func (l *FieldLedger) add(field string, value any) {
	if _, seen := l.votes[field]; !seen {
		l.fieldOrder = append(l.fieldOrder, field)
	}
	l.votes[field] = append(l.votes[field], value)
}

// Votes returns the recorded votes for a field in arrival order.
func (l *FieldLedger) Votes(field string) []any {
	return l.votes[field]
}

// Fields returns the ledger's field names in first-sighted order.
func (l *FieldLedger) Fields() []string {
	return l.fieldOrder
}

// Ledgers holds one ledger per model key for a single provider's
// accumulation run. It is owned by exactly one pipeline; providers never
// share ledger state.
type Ledgers struct {
	provider string
	byKey    map[catalogs.ModelKey]*FieldLedger
	keys     []catalogs.ModelKey
}

// NewLedgers creates an empty ledger set for a provider.
func NewLedgers(provider string) *Ledgers {
	return &Ledgers{
		provider: provider,
		byKey:    make(map[catalogs.ModelKey]*FieldLedger),
	}
}

// Provider returns the provider this ledger set belongs to.
func (l *Ledgers) Provider() string {
	return l.provider
}

// Len returns the number of distinct models sighted so far.
func (l *Ledgers) Len() int {
	return len(l.byKey)
}

// Keys returns the model keys in first-sighted order.
func (l *Ledgers) Keys() []catalogs.ModelKey {
	return l.keys
}

// Ledger returns the ledger for a key, or nil if the model was never sighted.
func (l *Ledgers) Ledger(key catalogs.ModelKey) *FieldLedger {
	return l.byKey[key]
}

// Accumulate folds one document's candidate list into the ledgers and
// returns how many candidates contributed votes. Candidates without a model
// identifier are discarded. Individual fields vote only when their value
// passes the type check for the field's class; mismatched or null values are
// dropped silently, never recorded as false, zero, or empty.
//
// Accumulate never fails: malformed input is simply not counted.
func (l *Ledgers) Accumulate(candidates []CandidateRecord) int {
	accepted := 0
	for _, candidate := range candidates {
		id := candidate.ModelIdentifier()
		if id == "" {
			continue
		}
		key, err := catalogs.NewModelKey(l.provider, id)
		if err != nil {
			continue
		}
		ledger, ok := l.byKey[key]
		if !ok {
			ledger = newFieldLedger()
			l.byKey[key] = ledger
			l.keys = append(l.keys, key)
		}
		for field, value := range candidate {
			if vote, ok := validVote(fields.Classify(field), value); ok {
				ledger.add(field, vote)
			}
		}
		accepted++
	}
	return accepted
}

// validVote type-checks a raw value against its field class and returns the
// vote in canonical form. Null values never vote.
func validVote(class fields.Class, value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	switch class {
	case fields.ClassPrice:
		f, ok := asFloat(value)
		return f, ok
	case fields.ClassCount:
		n, ok := asInt(value)
		return n, ok
	case fields.ClassCapabilityBool:
		b, ok := value.(bool)
		return b, ok
	case fields.ClassList:
		list, ok := asList(value)
		return list, ok
	case fields.ClassScalarString:
		s, ok := value.(string)
		return s, ok
	default:
		return value, true
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		// JSON numbers arrive as float64; accept integral values only.
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v), true
		}
		return 0, false
	case float32:
		return asInt(float64(v))
	default:
		return 0, false
	}
}

// asList accepts slice-shaped values and canonicalizes them to []any so
// deep-equality grouping during resolution treats []string{"a"} and
// []any{"a"} as the same vote.
func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}
