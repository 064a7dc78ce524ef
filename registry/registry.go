/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package registry maps view-type names to view factories.
package registry

import (
	"errors"
	"sync"

	"dirpx.dev/vrx/apis"
)

var (
	// ErrEmptyTypeName is returned when an empty view-type name is provided.
	ErrEmptyTypeName = errors.New("vrx(registry): empty view type name provided")
	// ErrNilFactory is returned when a nil factory is provided.
	ErrNilFactory = errors.New("vrx(registry): nil view factory provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// an already registered view-type name.
	ErrConflictingRegistration = errors.New("vrx(registry): conflicting view type registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps view-type name to apis.ViewFactory.
	m sync.Map // map[string]apis.ViewFactory
	// count tracks the number of registered entries.
	count int
}

// Register associates typeName with factory. Factories are functions and
// cannot be compared, so any re-registration of an existing name conflicts.
func (r *registry) Register(typeName string, factory apis.ViewFactory) error {
	// Validate inputs early.
	if typeName == "" {
		return ErrEmptyTypeName
	}
	if factory == nil {
		return ErrNilFactory
	}

	// Fast read path: conflict check without locking.
	if _, ok := r.m.Load(typeName); ok {
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(typeName); ok {
		return ErrConflictingRegistration
	}

	r.m.Store(typeName, factory)
	r.count++
	return nil
}

// Lookup returns the factory for a view-type name if present.
func (r *registry) Lookup(typeName string) (apis.ViewFactory, bool) {
	if typeName == "" {
		return nil, false
	}
	if v, ok := r.m.Load(typeName); ok {
		return v.(apis.ViewFactory), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			TypeName: key.(string),
			Factory:  value.(apis.ViewFactory),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
