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

import "context"

// Initializer applies post-construction lifecycle processing to freshly
// built views. It models a broader component registry (dependency wiring,
// instrumentation wrapping) injected explicitly through Config rather than
// reached through ambient global state.
//
// Initialize receives the symbolic view name and the constructed view and
// returns the object to use in its place. The return type is any on
// purpose: a lifecycle processor may hand back an arbitrary wrapper. When
// the returned object still satisfies View, resolvers use it; when it does
// not, resolvers silently fall back to the original view. A non-nil error,
// by contrast, aborts the resolution.
//
// Initialize runs strictly before the existence probe, and the probe always
// targets the original URL-bearing view regardless of decoration.
type Initializer interface {
	// Initialize processes v under the given symbolic name.
	Initialize(ctx context.Context, name string, v View) (any, error)
}
