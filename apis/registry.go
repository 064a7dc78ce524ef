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

package apis

// ViewFactory constructs a fresh, unconfigured view instance.
// It is the no-argument construction path for a registered view type;
// resolvers configure the result (URL, media types, charset) afterwards.
type ViewFactory func() (View, error)

// Registry provides a lookup from view-type names to factories.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates a view-type name with a factory.
	// Factories are not comparable, so re-registering an existing name
	// is always a conflict; implementations must reject it.
	Register(typeName string, factory ViewFactory) error
	// Lookup returns the factory for a view-type name if present.
	Lookup(typeName string) (factory ViewFactory, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type name, factory) association in a Registry snapshot.
type Entry struct {
	// TypeName is the registered view-type name.
	TypeName string
	// Factory is the associated factory.
	Factory ViewFactory
}
