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
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/builder"
	"dirpx.dev/vrx/config"
	"dirpx.dev/vrx/view/template"
)

// init initializes the global resolution state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	// The template view type ships registered; embedding binaries add theirs
	// via RegisterView.
	_ = s.reg.Register(template.TypeName, template.Factory)
	res, err := b.BuildResolver(s.cfg, s.reg, nil, nil)
	if err != nil {
		// Unreachable: the default config has no view type and builds an
		// empty chain.
		panic(err)
	}
	s.res = res
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("vrx: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("vrx: builder returned nil resolver")
)

// ResolveView resolves the symbolic view name for locale using the global
// resolver. A (nil, nil) result means no configured resolver was applicable.
// This is a convenience wrapper around the global res.
func ResolveView(ctx context.Context, name string, locale language.Tag) (apis.View, error) {
	s := st.Load()
	return s.res.ResolveView(ctx, name, locale)
}

// RegisterView adds a view-type factory to the global reg.
// This is a convenience wrapper around the global reg.
func RegisterView(typeName string, factory apis.ViewFactory) error {
	return st.Load().reg.Register(typeName, factory)
}

// SetAll explicitly sets all global vrx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.ViewResolver, bld apis.Builder) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		var err error
		nres, err = nbld.BuildResolver(ncfg, nreg, old.res, next)
		if err != nil {
			return err
		}
	} else {
		npres = true
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			res:  nres,
			bld:  nbld,
			preg: npreg,
			pres: npres,
		},
	)
	return nil
}

// Config returns the global vrx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global vrx configuration to cfg.
// It rebuilds the global reg and res using the new configuration;
// an invalid configuration is returned as an error and nothing is published.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		var err error
		nres, err = b.BuildResolver(cfg, nreg, old.res, old.ext)
		if err != nil {
			return err
		}
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
	return nil
}

// Registry returns the global vrx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global vrx reg to reg and pins it.
// It uses the global vrx configuration to rebuild the global res.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) error {
	if reg == nil {
		return nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res based on the old cfg and new reg.
	nres := old.res
	if !old.pres {
		var err error
		nres, err = b.BuildResolver(old.cfg, reg, old.res, old.ext)
		if err != nil {
			return err
		}
	}

	// Ensure non-nil res.
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			res:  nres,
			bld:  b,
			preg: true,
			pres: old.pres,
		},
	)
	return nil
}

// Resolver returns the global vrx res.
func Resolver() apis.ViewResolver {
	return st.Load().res
}

// SetResolver sets the global vrx res to res and pins it.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.ViewResolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// Builder returns the global vrx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global vrx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and res based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		var err error
		nres, err = b.BuildResolver(old.cfg, nreg, old.res, old.ext)
		if err != nil {
			return err
		}
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
	return nil
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nres := old.res
	if !old.pres {
		var err error
		nres, err = b.BuildResolver(old.cfg, nreg, old.res, ext)
		if err != nil {
			return err
		}
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
	return nil
}

// ExtAs returns the global vrx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global vrx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global vrx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: true,
			pres: old.pres,
		},
	)
}

// UnpinRegistry makes the global vrx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: false,
			pres: old.pres,
		},
	)
}

// IsResolverPinned returns whether the global vrx res is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global vrx res immutable.
func PinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// UnpinResolver makes the global vrx res mutable again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pres: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global vrx state.
var st atomic.Pointer[state]

// state is the global vrx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global vrx configuration.
	cfg apis.Config
	// ext is the global vrx extension configuration.
	ext any
	// reg is the global vrx reg.
	reg apis.Registry
	// res is the global vrx res.
	res apis.ViewResolver
	// bld is the global vrx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pres indicates whether the res is pinned (immutable).
	pres bool
}
