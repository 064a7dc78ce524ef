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

package registry_test

import (
	"errors"
	"testing"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/registry"
)

// factoryFor returns a distinct factory per marker. Tests here only care
// about registration semantics, never about the produced views.
func factoryFor(marker string) apis.ViewFactory {
	return func() (apis.View, error) { _ = marker; return nil, nil }
}

func TestRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("template", factoryFor("a")); err != nil {
		t.Fatalf("register: %v", err)
	}

	f, ok := reg.Lookup("template")
	if !ok || f == nil {
		t.Fatalf("lookup failed: ok=%v f=%v", ok, f)
	}
	if reg.Count() != 1 {
		t.Fatalf("count = %d, want 1", reg.Count())
	}
}

func TestRegister_EmptyName(t *testing.T) {
	reg := registry.New()
	if err := reg.Register("", factoryFor("a")); !errors.Is(err, registry.ErrEmptyTypeName) {
		t.Fatalf("err = %v, want ErrEmptyTypeName", err)
	}
}

func TestRegister_NilFactory(t *testing.T) {
	reg := registry.New()
	if err := reg.Register("template", nil); !errors.Is(err, registry.ErrNilFactory) {
		t.Fatalf("err = %v, want ErrNilFactory", err)
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()
	if err := reg.Register("template", factoryFor("a")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("template", factoryFor("b")); !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("err = %v, want ErrConflictingRegistration", err)
	}
	if reg.Count() != 1 {
		t.Fatalf("count = %d, want 1 after conflicting register", reg.Count())
	}
}

func TestLookup_Missing(t *testing.T) {
	reg := registry.New()
	if f, ok := reg.Lookup("nope"); ok || f != nil {
		t.Fatalf("lookup of missing name: ok=%v f=%v", ok, f)
	}
	if f, ok := reg.Lookup(""); ok || f != nil {
		t.Fatalf("lookup of empty name: ok=%v f=%v", ok, f)
	}
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New()
	names := []string{"template", "markdown", "redirect-page"}
	for _, n := range names {
		if err := reg.Register(n, factoryFor(n)); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}

	entries := reg.Entries()
	if len(entries) != len(names) {
		t.Fatalf("entries = %d, want %d", len(entries), len(names))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if e.Factory == nil {
			t.Fatalf("entry %q has nil factory", e.TypeName)
		}
		seen[e.TypeName] = true
	}
	for _, n := range names {
		if !seen[n] {
			t.Fatalf("entry %q missing from snapshot", n)
		}
	}

	reg.Reset()
	if reg.Count() != 0 {
		t.Fatalf("count after reset = %d, want 0", reg.Count())
	}
	if len(reg.Entries()) != 0 {
		t.Fatalf("entries after reset = %d, want 0", len(reg.Entries()))
	}
	if _, ok := reg.Lookup("template"); ok {
		t.Fatal("lookup succeeded after reset")
	}
}
