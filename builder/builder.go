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

package builder

import (
	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/chain"
	"dirpx.dev/vrx/registry"
	"dirpx.dev/vrx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its entries are copied into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.TypeName, e.Factory)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.ViewResolver for the provided
// configuration and registry.
//
// A configuration without a view type yields an empty chain that resolves
// nothing: the process-wide default snapshot must exist before anything is
// configured. Once a view type is set, configuration errors from the
// underlying resolver propagate.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.ViewResolver, _ any) (apis.ViewResolver, error) {
	if cfg.ViewType == "" {
		return chain.New(), nil
	}
	r, err := resolver.New(cfg, reg)
	if err != nil {
		return nil, err
	}
	return chain.New(r), nil
}
