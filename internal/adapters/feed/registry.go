package feed

import (
	"os"

	"gopkg.in/yaml.v3"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/services/causelist/domain"
)

// Court is one portal entry in the courts registry file
type Court struct {
	CourtType string `yaml:"court_type"`
	Name      string `yaml:"name"`
	BaseURL   string `yaml:"base_url"`
	ListPath  string `yaml:"list_path"`
	CasePath  string `yaml:"case_path"`
}

// Registry maps court types to their portal gateways
type Registry struct {
	courts map[domain.CourtType]Court
}

type registryFile struct {
	Courts []Court `yaml:"courts"`
}

// LoadRegistry parses a courts YAML file
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.AdapterWrap(err, "read courts registry %s", path)
	}
	return ParseRegistry(data)
}

// ParseRegistry parses courts registry bytes
func ParseRegistry(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, perr.AdapterWrap(err, "parse courts registry")
	}
	if len(f.Courts) == 0 {
		return nil, perr.Adapterf("courts registry is empty")
	}
	r := &Registry{courts: make(map[domain.CourtType]Court, len(f.Courts))}
	for _, c := range f.Courts {
		ct := domain.CourtType(c.CourtType)
		if !ct.Valid() {
			return nil, perr.Adapterf("courts registry: unknown court type %q", c.CourtType)
		}
		if c.BaseURL == "" {
			return nil, perr.Adapterf("courts registry: %s has no base_url", c.CourtType)
		}
		if c.ListPath == "" {
			c.ListPath = "/cause-list"
		}
		if c.CasePath == "" {
			c.CasePath = "/case"
		}
		r.courts[ct] = c
	}
	return r, nil
}

// Lookup returns the registry entry for a court type
func (r *Registry) Lookup(ct domain.CourtType) (Court, bool) {
	c, ok := r.courts[ct]
	return c, ok
}

// CourtTypes lists the registered court types
func (r *Registry) CourtTypes() []domain.CourtType {
	out := make([]domain.CourtType, 0, len(r.courts))
	for ct := range r.courts {
		out = append(out, ct)
	}
	return out
}
