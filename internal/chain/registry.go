package chain

import (
	"fmt"
	"sort"
)

// DefaultEndpoints maps the supported chain identifiers to their public
// RPC endpoints. Used as config defaults; the registry itself is built
// from config and never mutated after startup.
var DefaultEndpoints = map[string]string{
	"polygon-zkevm": "https://zkevm-rpc.com",
	"scroll":        "https://rpc.scroll.io",
	"zksync":        "https://mainnet.era.zksync.io",
}

// Names returns the supported chain identifiers in stable order.
func Names() []string {
	names := make([]string, 0, len(DefaultEndpoints))
	for name := range DefaultEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry holds the chain identifier to RPC URL mapping.
type Registry struct {
	endpoints map[string]string
}

// NewRegistry builds a registry from the given endpoint map.
func NewRegistry(endpoints map[string]string) (*Registry, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no chain endpoints configured")
	}
	copied := make(map[string]string, len(endpoints))
	for name, url := range endpoints {
		if url == "" {
			return nil, fmt.Errorf("empty endpoint for chain %s", name)
		}
		copied[name] = url
	}
	return &Registry{endpoints: copied}, nil
}

// Endpoint returns the RPC URL for a chain identifier.
func (r *Registry) Endpoint(name string) (string, bool) {
	url, ok := r.endpoints[name]
	return url, ok
}

// Each calls fn for every registered chain.
func (r *Registry) Each(fn func(name, url string) error) error {
	for name, url := range r.endpoints {
		if err := fn(name, url); err != nil {
			return err
		}
	}
	return nil
}
