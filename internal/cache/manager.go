package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Lifecycle states, in install order.
type State int

const (
	StateUninstalled State = iota
	StateInstalling
	StateInstalled
	StateActivating
	StateActivated
)

func (s State) String() string {
	switch s {
	case StateInstalling:
		return "installing"
	case StateInstalled:
		return "installed"
	case StateActivating:
		return "activating"
	case StateActivated:
		return "activated"
	default:
		return "uninstalled"
	}
}

// ShellManifest is the fixed asset set guaranteed to be available offline.
var ShellManifest = []string{"/", "/index.html", "/manifest.json"}

// The cached document root doubles as the offline page.
const offlineFallback = "/index.html"

// ErrNotInstalled is returned by Activate when install has not completed;
// a failed install never goes live.
var ErrNotInstalled = errors.New("cache: shell version is not installed")

// Manager owns the shell cache lifecycle for one version tag:
// install populates the versioned namespace all-or-nothing, activate tears
// down every other namespace, Resolve answers lookups cache-first with an
// offline fallback.
type Manager struct {
	store   Store
	origin  Origin
	version string

	mu    sync.Mutex
	state State
}

func NewManager(store Store, origin Origin, version string) *Manager {
	return &Manager{store: store, origin: origin, version: version}
}

func (m *Manager) Version() string { return m.version }

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Install fetches every manifest asset from the origin and commits them to
// the versioned namespace in one shot. Any single fetch failure fails the
// whole install and the namespace stays untouched.
func (m *Manager) Install(ctx context.Context) error {
	m.setState(StateInstalling)

	entries := make(map[string][]byte, len(ShellManifest))
	for _, path := range ShellManifest {
		body, err := m.origin.Fetch(ctx, path)
		if err != nil {
			m.setState(StateUninstalled)
			return fmt.Errorf("cache: install %s: %w", path, err)
		}
		entries[path] = body
	}

	if err := m.store.PutAll(ctx, m.version, entries); err != nil {
		m.setState(StateUninstalled)
		return fmt.Errorf("cache: install commit: %w", err)
	}

	// Immediately eligible for activation; no waiting on other instances.
	m.setState(StateInstalled)
	return nil
}

// Activate drops every namespace that does not match the current version,
// then takes over serving. Install failure blocks activation.
func (m *Manager) Activate(ctx context.Context) error {
	if m.State() != StateInstalled {
		return ErrNotInstalled
	}
	m.setState(StateActivating)

	all, err := m.store.Namespaces(ctx)
	if err != nil {
		m.setState(StateInstalled)
		return fmt.Errorf("cache: activate: %w", err)
	}

	for _, ns := range StaleNamespaces(m.version, all) {
		if err := m.store.Drop(ctx, ns); err != nil {
			m.setState(StateInstalled)
			return fmt.Errorf("cache: drop namespace %s: %w", ns, err)
		}
	}

	m.setState(StateActivated)
	return nil
}

// Resolve answers a shell request: cache first, then origin, and when both
// fail, the cached document root as the offline page. Lookup errors never
// escape to the caller unless even the fallback is gone.
func (m *Manager) Resolve(ctx context.Context, path string) ([]byte, error) {
	if body, err := m.store.Get(ctx, m.version, path); err == nil {
		return body, nil
	}

	if body, err := m.origin.Fetch(ctx, path); err == nil {
		return body, nil
	}

	body, err := m.store.Get(ctx, m.version, offlineFallback)
	if err != nil {
		return nil, fmt.Errorf("cache: no cached fallback for %s: %w", path, err)
	}
	return body, nil
}
