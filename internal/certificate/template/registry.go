package template

import (
	"encoding/base64"

	"github.com/pkg/errors"

	"github.com/p2ppsr/myac/config"
	appErrors "github.com/p2ppsr/myac/pkg/errors"
)

const (
	// Type identifiers are random 32-byte values, base64 encoded. They must
	// never be reused for a differently-shaped template.
	typeIDBytes = 32

	maxFieldNameLen = 50
)

// Type is one issuable certificate template: its identifier and the ordered
// set of required field names.
type Type struct {
	TypeID string
	Fields []string
}

// Registry is the process-wide set of certificate types this certifier
// issues. Read-only after construction.
type Registry struct {
	order []string
	types map[string]Type
}

func New(cfgs []config.CertificateTypeConfig) (*Registry, error) {
	if len(cfgs) == 0 {
		return nil, errors.New("at least one certificate type must be configured")
	}

	r := &Registry{types: make(map[string]Type, len(cfgs))}

	for _, cfg := range cfgs {
		decoded, err := base64.StdEncoding.DecodeString(cfg.TypeID)
		if err != nil {
			return nil, errors.Wrapf(err, "certificate type id %q is not valid base64", cfg.TypeID)
		}
		if len(decoded) != typeIDBytes {
			return nil, errors.Errorf("certificate type id %q must decode to %d bytes, got %d", cfg.TypeID, typeIDBytes, len(decoded))
		}
		if _, ok := r.types[cfg.TypeID]; ok {
			return nil, errors.Errorf("certificate type id %q is declared twice", cfg.TypeID)
		}
		if len(cfg.Fields) == 0 {
			return nil, errors.Errorf("certificate type %q declares no fields", cfg.TypeID)
		}

		seen := make(map[string]bool, len(cfg.Fields))
		fields := make([]string, 0, len(cfg.Fields))
		for _, name := range cfg.Fields {
			if name == "" || len(name) > maxFieldNameLen {
				return nil, errors.Errorf("certificate type %q has an invalid field name %q", cfg.TypeID, name)
			}
			if seen[name] {
				return nil, errors.Errorf("certificate type %q declares field %q twice", cfg.TypeID, name)
			}
			seen[name] = true
			fields = append(fields, name)
		}

		r.order = append(r.order, cfg.TypeID)
		r.types[cfg.TypeID] = Type{TypeID: cfg.TypeID, Fields: fields}
	}

	return r, nil
}

// ExpectedFields returns the ordered required field names for typeID.
func (r *Registry) ExpectedFields(typeID string) ([]string, error) {
	t, ok := r.types[typeID]
	if !ok {
		return nil, appErrors.ErrUnknownType
	}
	return t.Fields, nil
}

// All returns every registered type in configuration order.
func (r *Registry) All() []Type {
	out := make([]Type, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.types[id])
	}
	return out
}
