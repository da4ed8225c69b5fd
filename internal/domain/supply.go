package domain

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Supply validation errors.
var (
	ErrEmptySupplyID    = errors.New("supply ID cannot be empty")
	ErrEmptySupplyName  = errors.New("supply name cannot be empty")
	ErrEmptySupplyImage = errors.New("supply image cannot be empty")
	ErrInvalidQuantity  = errors.New("supply quantity must be a whole number")
)

// defaultQuantity is applied when a creation payload omits quantity.
const defaultQuantity = 1

// Supply represents a donation supply item. The named fields are typed
// and validated; anything else the caller sends is preserved verbatim in
// Extra and round-trips through the store's JSONB column.
type Supply struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Quantity    int            `json:"quantity"`
	Category    string         `json:"category,omitempty"`
	Image       string         `json:"image"`
	Extra       map[string]any `json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SupplyPatch describes a partial update. Nil pointer fields are left
// untouched; Extra entries are merged over the stored extras.
type SupplyPatch struct {
	Name        *string
	Description *string
	Quantity    *int
	Category    *string
	Image       *string
	Extra       map[string]any
}

// IsZero reports whether the patch changes nothing.
func (p *SupplyPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Quantity == nil &&
		p.Category == nil && p.Image == nil && len(p.Extra) == 0
}

// NewSupplyFromFields creates a Supply from a decoded JSON object.
// Known fields are lifted into their typed slots, quantity defaults to 1
// when absent, and unrecognized fields are retained in Extra.
// Returns an error if validation fails.
func NewSupplyFromFields(fields map[string]any) (*Supply, error) {
	supply := &Supply{
		ID:        uuid.New(),
		Quantity:  defaultQuantity,
		Extra:     make(map[string]any),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	for key, value := range fields {
		switch key {
		case "name":
			supply.Name = stringValue(value)
		case "description":
			supply.Description = stringValue(value)
		case "quantity":
			n, ok := intValue(value)
			if !ok {
				return nil, ErrInvalidQuantity
			}
			supply.Quantity = n
		case "category":
			supply.Category = stringValue(value)
		case "image":
			supply.Image = stringValue(value)
		default:
			supply.Extra[key] = value
		}
	}

	if err := supply.Validate(); err != nil {
		return nil, err
	}

	return supply, nil
}

// Validate checks if the Supply has valid data.
// Name and image are the only required fields, matching what the
// storage schema itself demands.
func (s *Supply) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySupplyID
	}

	if s.Name == "" {
		return ErrEmptySupplyName
	}

	if s.Image == "" {
		return ErrEmptySupplyImage
	}

	return nil
}

// MarshalJSON flattens Extra into the top-level object so stored
// pass-through fields come back exactly where the caller put them.
// Canonical fields win on key collisions.
func (s *Supply) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.Extra)+8)
	for key, value := range s.Extra {
		doc[key] = value
	}

	doc["id"] = s.ID
	doc["name"] = s.Name
	doc["quantity"] = s.Quantity
	doc["image"] = s.Image
	doc["created_at"] = s.CreatedAt
	doc["updated_at"] = s.UpdatedAt
	if s.Description != "" {
		doc["description"] = s.Description
	}
	if s.Category != "" {
		doc["category"] = s.Category
	}

	return json.Marshal(doc)
}

// ParseSupplyPatch builds a SupplyPatch from a decoded JSON object.
// Only keys present in the payload become part of the patch.
func ParseSupplyPatch(fields map[string]any) (*SupplyPatch, error) {
	patch := &SupplyPatch{Extra: make(map[string]any)}

	for key, value := range fields {
		switch key {
		case "name":
			v := stringValue(value)
			patch.Name = &v
		case "description":
			v := stringValue(value)
			patch.Description = &v
		case "quantity":
			n, ok := intValue(value)
			if !ok {
				return nil, ErrInvalidQuantity
			}
			patch.Quantity = &n
		case "category":
			v := stringValue(value)
			patch.Category = &v
		case "image":
			v := stringValue(value)
			patch.Image = &v
		default:
			patch.Extra[key] = value
		}
	}

	return patch, nil
}

// stringValue coerces a decoded JSON value to a string, yielding ""
// for non-strings so required-field validation catches them.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// intValue coerces a decoded JSON number to an int. JSON numbers decode
// as float64, so fractional values are rejected rather than truncated.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
