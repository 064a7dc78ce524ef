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

package vrx

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"golang.org/x/text/language"

	apis "dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/view/template"
)

// ---------------------- Helpers ----------------------

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	buf := [20]byte{}
	pos := len(buf)
	n := i
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// Reset to a clean snapshot using our test builder.
// This fully replaces builder, config, ext and rebuilds registry/resolver.
// Pins are reset (preg=false, pres=false) because we pass nil reg/res.
func resetWithBuilder(tb testing.TB, b apis.Builder, cfg apis.Config, ext any) {
	tb.Helper()
	if err := SetAll(&cfg, ext, nil, nil, b); err != nil {
		tb.Fatalf("SetAll: %v", err)
	}
}

// ---------------------- Test doubles (mocks) ----------------------

type mockView struct{ id string }

func (mockView) SupportedMediaTypes() []string { return nil }
func (mockView) Render(_ context.Context, _ map[string]any, _ io.Writer) error {
	return nil
}

type mockRegistry struct {
	id   string
	mu   sync.Mutex
	data map[string]apis.ViewFactory
}

func newMockRegistry(id string) *mockRegistry {
	return &mockRegistry{id: id, data: make(map[string]apis.ViewFactory)}
}

func (m *mockRegistry) Register(typeName string, factory apis.ViewFactory) error {
	m.mu.Lock()
	m.data[typeName] = factory
	m.mu.Unlock()
	return nil
}
func (m *mockRegistry) Lookup(typeName string) (apis.ViewFactory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.data[typeName]
	return f, ok
}
func (m *mockRegistry) Entries() []apis.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []apis.Entry
	for n, f := range m.data {
		out = append(out, apis.Entry{TypeName: n, Factory: f})
	}
	return out
}
func (m *mockRegistry) Count() int { m.mu.Lock(); defer m.mu.Unlock(); return len(m.data) }
func (m *mockRegistry) Reset() {
	m.mu.Lock()
	m.data = make(map[string]apis.ViewFactory)
	m.mu.Unlock()
}

type mockResolver struct {
	id       string
	resolveC int
	mu       sync.Mutex
}

func (r *mockResolver) ResolveView(_ context.Context, name string, _ language.Tag) (apis.View, error) {
	r.mu.Lock()
	r.resolveC++
	r.mu.Unlock()
	return mockView{id: r.id + ":" + name}, nil
}

type mockBuilder struct {
	mu             sync.Mutex
	lastCfg        apis.Config
	lastExt        any
	lastPrevRegID  string
	regCounter     int
	resCounter     int
	failWith       error         // optional BuildResolver failure
	returnFixedReg apis.Registry // optional override
	returnFixedRes apis.ViewResolver
}

func (b *mockBuilder) BuildRegistry(cfg apis.Config, prev apis.Registry, ext any) apis.Registry {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if prev != nil {
		if mr, ok := prev.(*mockRegistry); ok {
			b.lastPrevRegID = mr.id
		}
	}
	if b.returnFixedReg != nil {
		return b.returnFixedReg
	}
	b.regCounter++
	return newMockRegistry("reg#" + itoa(b.regCounter))
}

func (b *mockBuilder) BuildResolver(cfg apis.Config, reg apis.Registry, prev apis.ViewResolver, ext any) (apis.ViewResolver, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if b.failWith != nil {
		return nil, b.failWith
	}
	if b.returnFixedRes != nil {
		return b.returnFixedRes, nil
	}
	b.resCounter++
	return &mockResolver{id: "res#" + itoa(b.resCounter)}, nil
}

// ---------------------- Tests ----------------------

// TestDefaultSnapshot reads the package-init state before any test mutates
// it: the template view type is pre-registered and the unconfigured
// resolver answers "not applicable" for every name.
func TestDefaultSnapshot(t *testing.T) {
	if _, ok := Registry().Lookup(template.TypeName); !ok {
		t.Fatal("template view type not pre-registered")
	}
	v, err := ResolveView(context.Background(), "home", language.English)
	if err != nil || v != nil {
		t.Fatalf("unconfigured ResolveView = (%v, %v), want (nil, nil)", v, err)
	}
}

func TestSetConfig_Rebuilds_Unpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	regBefore := Registry()
	resBefore := Resolver()

	if err := SetConfig(apis.Config{ViewType: "b", Prefix: "p/"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	if Registry() == regBefore {
		t.Fatal("registry not rebuilt on SetConfig")
	}
	if Resolver() == resBefore {
		t.Fatal("resolver not rebuilt on SetConfig")
	}
	if got := Config(); got.ViewType != "b" || got.Prefix != "p/" {
		t.Fatalf("Config() = %+v", got)
	}
	if b.lastCfg.ViewType != "b" {
		t.Fatalf("builder saw cfg %+v", b.lastCfg)
	}
}

func TestSetConfig_InvalidKeepsOldState(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	resBefore := Resolver()
	cfgBefore := Config()

	boom := errors.New("bad view type")
	b.mu.Lock()
	b.failWith = boom
	b.mu.Unlock()

	if err := SetConfig(apis.Config{ViewType: "broken"}); !errors.Is(err, boom) {
		t.Fatalf("SetConfig err = %v, want %v", err, boom)
	}
	if Resolver() != resBefore {
		t.Fatal("failed SetConfig must not publish a new resolver")
	}
	if Config().ViewType != cfgBefore.ViewType {
		t.Fatal("failed SetConfig must not publish a new config")
	}
}

func TestSetRegistry_PinsRegistry(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	pinned := newMockRegistry("pinned")
	if err := SetRegistry(pinned); err != nil {
		t.Fatalf("SetRegistry: %v", err)
	}
	if !IsRegistryPinned() {
		t.Fatal("registry not pinned after SetRegistry")
	}
	if Registry() != apis.Registry(pinned) {
		t.Fatal("pinned registry not published")
	}

	// SetConfig must keep the pinned registry but rebuild the resolver.
	resBefore := Resolver()
	if err := SetConfig(apis.Config{ViewType: "c"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Registry() != apis.Registry(pinned) {
		t.Fatal("pinned registry was rebuilt")
	}
	if Resolver() == resBefore {
		t.Fatal("resolver should have been rebuilt")
	}

	// After unpinning, SetConfig rebuilds the registry again.
	UnpinRegistry()
	if IsRegistryPinned() {
		t.Fatal("registry still pinned after UnpinRegistry")
	}
	if err := SetConfig(apis.Config{ViewType: "d"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Registry() == apis.Registry(pinned) {
		t.Fatal("registry not rebuilt after unpin")
	}
}

func TestSetResolver_PinsResolver(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	pinned := &mockResolver{id: "pinned"}
	SetResolver(pinned)
	if !IsResolverPinned() {
		t.Fatal("resolver not pinned after SetResolver")
	}
	if Resolver() != apis.ViewResolver(pinned) {
		t.Fatal("pinned resolver not published")
	}

	// SetConfig must keep the pinned resolver.
	if err := SetConfig(apis.Config{ViewType: "c"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Resolver() != apis.ViewResolver(pinned) {
		t.Fatal("pinned resolver was rebuilt")
	}

	UnpinResolver()
	if err := SetConfig(apis.Config{ViewType: "d"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Resolver() == apis.ViewResolver(pinned) {
		t.Fatal("resolver not rebuilt after unpin")
	}
}

func TestResolveView_UsesPublishedResolver(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	fixed := &mockResolver{id: "fixed"}
	SetResolver(fixed)

	v, err := ResolveView(context.Background(), "home", language.English)
	if err != nil {
		t.Fatalf("ResolveView: %v", err)
	}
	mv, ok := v.(mockView)
	if !ok || mv.id != "fixed:home" {
		t.Fatalf("view = %v, want fixed:home", v)
	}
	if fixed.resolveC != 1 {
		t.Fatalf("resolveC = %d, want 1", fixed.resolveC)
	}
}

func TestRegisterView_WritesCurrentRegistry(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	if err := RegisterView("custom", func() (apis.View, error) { return mockView{id: "custom"}, nil }); err != nil {
		t.Fatalf("RegisterView: %v", err)
	}
	if _, ok := Registry().Lookup("custom"); !ok {
		t.Fatal("registered view type not visible")
	}
}

func TestSetExt_RoundTrip(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{ViewType: "a"}, nil)

	type policy struct{ Name string }
	if err := SetExt(policy{Name: "cms"}); err != nil {
		t.Fatalf("SetExt: %v", err)
	}

	got, ok := ExtAs[policy]()
	if !ok || got.Name != "cms" {
		t.Fatalf("ExtAs = (%+v, %v)", got, ok)
	}
	if _, ok := ExtAs[string](); ok {
		t.Fatal("ExtAs with wrong type should report false")
	}
	if b.lastExt == nil {
		t.Fatal("builder did not receive ext on rebuild")
	}
}

func TestSetBuilder_RebuildsLayers(t *testing.T) {
	b1 := &mockBuilder{}
	resetWithBuilder(t, b1, apis.Config{ViewType: "a"}, nil)

	b2 := &mockBuilder{}
	if err := SetBuilder(b2); err != nil {
		t.Fatalf("SetBuilder: %v", err)
	}
	if Builder() != apis.Builder(b2) {
		t.Fatal("builder not published")
	}
	if b2.regCounter != 1 || b2.resCounter != 1 {
		t.Fatalf("new builder counters = %d/%d, want 1/1", b2.regCounter, b2.resCounter)
	}
}

func TestSetAll_HardReset(t *testing.T) {
	b := &mockBuilder{}
	reg := newMockRegistry("explicit")
	res := &mockResolver{id: "explicit"}
	cfg := apis.Config{ViewType: "x"}

	if err := SetAll(&cfg, "ext", reg, res, b); err != nil {
		t.Fatalf("SetAll: %v", err)
	}

	if Registry() != apis.Registry(reg) || Resolver() != apis.ViewResolver(res) {
		t.Fatal("explicit reg/res not published")
	}
	if !IsRegistryPinned() || !IsResolverPinned() {
		t.Fatal("explicit reg/res should be pinned")
	}
	if got, ok := ExtAs[string](); !ok || got != "ext" {
		t.Fatalf("ext = (%v, %v)", got, ok)
	}

	// Passing nil reg/res resets pins and rebuilds both.
	resetWithBuilder(t, b, apis.Config{ViewType: "y"}, nil)
	if IsRegistryPinned() || IsResolverPinned() {
		t.Fatal("pins should reset when SetAll rebuilds layers")
	}
	if Config().ViewType != "y" {
		t.Fatalf("Config().ViewType = %q", Config().ViewType)
	}
}
