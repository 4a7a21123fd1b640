package iso20022

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NamespacePrefix is shared by every ISO 20022 Document namespace.
const NamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Message{}
)

// Register makes a message factory available under its Document namespace.
// It is meant to be called from the init function of a message package and
// panics if the namespace is registered twice or factory is nil.
func Register(namespace string, factory func() Message) {
	if factory == nil {
		panic("iso20022: Register factory is nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[namespace]; dup {
		panic("iso20022: Register called twice for " + namespace)
	}
	registry[namespace] = factory
}

// Lookup returns the factory registered for namespace.
func Lookup(namespace string) (func() Message, bool) {
	registryMu.RLock()
	f, ok := registry[namespace]
	registryMu.RUnlock()
	return f, ok
}

// New returns an empty Document for namespace, or ErrUnknownMessage.
func New(namespace string) (Message, error) {
	f, ok := Lookup(namespace)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, namespace)
	}
	return f(), nil
}

// Namespaces lists the registered namespaces in sorted order.
func Namespaces() []string {
	registryMu.RLock()
	out := make([]string, 0, len(registry))
	for ns := range registry {
		out = append(out, ns)
	}
	registryMu.RUnlock()
	sort.Strings(out)
	return out
}

// MessageDefinition returns the message definition identifier of a namespace,
// for example camt.054.001.08.
func MessageDefinition(namespace string) string {
	return strings.TrimPrefix(namespace, NamespacePrefix)
}

// NamespaceFor accepts either a message definition identifier or a full
// namespace and returns the namespace.
func NamespaceFor(id string) string {
	if strings.HasPrefix(id, NamespacePrefix) {
		return id
	}
	return NamespacePrefix + id
}
