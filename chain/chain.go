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

// Package chain tries multiple view resolvers in a configured order.
package chain

import (
	"context"

	"golang.org/x/text/language"

	"dirpx.dev/vrx/apis"
)

// New constructs an apis.ViewResolver that tries the given resolvers in
// order. Nil resolvers are ignored. The returned resolver is safe for
// concurrent use provided the resolvers themselves are.
func New(resolvers ...apis.ViewResolver) apis.ViewResolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.ViewResolver, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{resolvers: out}
}

// chain is an immutable, order-preserving resolver over a set of resolvers.
type chain struct {
	resolvers []apis.ViewResolver
}

// ResolveView runs resolvers in order until one returns a view or fails.
// Returns (nil, nil) when no resolver was applicable. An error from a
// resolver stops the chain: failures are not absence.
func (c chain) ResolveView(ctx context.Context, name string, locale language.Tag) (apis.View, error) {
	for _, r := range c.resolvers {
		v, err := r.ResolveView(ctx, name, locale)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}
