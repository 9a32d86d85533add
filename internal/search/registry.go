package search

import (
	"sort"
	"sync"
)

// providers maps endpoint-family names to their implementations. Families
// register themselves from init(), so after package load the map is
// effectively read-only.
var (
	providersMu sync.RWMutex
	providers   = make(map[string]Provider)
)

// Register installs a provider under its family name, replacing any previous
// registration.
func Register(name string, p Provider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[name] = p
}

// Get looks up the provider for a family name. Unknown names return an
// UnknownProviderError so callers can distinguish a bad family from a bad
// request.
func Get(name string) (Provider, error) {
	providersMu.RLock()
	defer providersMu.RUnlock()
	p, ok := providers[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name}
	}
	return p, nil
}

// List returns every registered family name in sorted order.
func List() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
