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

// Package vrx provides a global, process-wide view-name resolution service.
//
// vrx is responsible for turning a symbolic view name — "home",
// "reports/daily", "redirect:login" — into a configured, renderable view
// backed by a concrete resource URL. Request-handling code picks logical
// names; vrx decides which resolver owns a name, what URL it maps to, and
// how the view object is constructed and lifecycle-initialized.
//
// # Design
//
// The core of vrx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: the knobs of URL-based resolution (view type, URL prefix and
//     suffix, accepted name patterns, shared media types and charset, the
//     redirect provider and the optional lifecycle initializer).
//
//   - Registry: a process-wide mapping from view-type names to factories.
//     This is how concrete view kinds ("template", or custom engine
//     bindings) are made available without runtime type introspection.
//     The registry can be written to at runtime (RegisterView).
//
//   - Resolver: a read-only object that answers "what view does this name
//     resolve to?". The standard shape is a chain of URL-based resolvers
//     tried in order; each one gates on its accepted-name patterns, builds
//     the backing URL as prefix + name + suffix, branches "redirect:" names
//     to a redirect view, applies the lifecycle hook and finally probes
//     that the backing resource exists before committing to it. A resolver
//     that is not applicable yields nothing, so the chain can move on.
//     Resolvers are expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry and
//     Resolver instances for a given Config (and optional extension data).
//     The Builder is also allowed to reuse/migrate state from previous
//     Registry/Resolver instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means vrx resolution is lock-free on the hot path:
//
//	v, err := vrx.ResolveView(ctx, "home", language.English)
//
// and concurrent callers always see a consistent snapshot. The only
// blocking point inside a resolution is the asynchronous existence probe,
// which honors ctx cancellation.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     ResolveView(ctx, name string, locale language.Tag) (apis.View, error)
//     Registry() apis.Registry
//     Resolver() apis.ViewResolver
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config) error
//     SetBuilder(b apis.Builder) error
//     SetExt(ext T) error
//     SetRegistry(reg apis.Registry) error
//     SetResolver(res apis.ViewResolver)
//     UnpinRegistry()
//     UnpinResolver()
//     SetAll(...) error
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Registry / Resolver as needed),
//     and then atomically publishes that snapshot. When the new
//     configuration cannot yield a working resolver (unknown view type,
//     kind mismatch), the error is returned and nothing is published.
//
//     Semantics in short:
//
//     - Config is the resolution policy. Calling SetConfig() rebuilds
//     Registry and/or Resolver, unless they are explicitly "pinned".
//
//     - Builder controls how Registry and Resolver are constructed.
//     Swapping the Builder lets you replace resolution logic (different
//     chains, different view wiring) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by vrx
//     itself. It is simply passed down to the Builder so custom builders
//     (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetResolver() directly overwrite the current
//     Registry / Resolver in the snapshot and "pin" them. Once a layer is
//     pinned, vrx will stop rebuilding that layer automatically until you
//     call UnpinRegistry()/UnpinResolver().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Resolver in one shot. This is
//     mainly used by tests to get a clean deterministic state between
//     test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), etc.
//
//     These let callers examine the currently published snapshot for
//     debugging, metrics exposition, or documentation.
//
// # Concurrency model
//
// Reads (ResolveView, Registry, Resolver) are wait-free at the snapshot
// level: they load the current *state atomically and never take locks. The
// Resolver and Registry returned by that state must themselves be
// concurrency-safe for reads.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Pinning
//
// vrx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetResolver(res), that Resolver is pinned and will
//     not be rebuilt automatically until UnpinResolver().
//
// Pinning is there for advanced scenarios where you want full control over
// one layer while still letting other layers evolve. For example, you may
// lock a custom Resolver that consults a CMS for view locations while still
// allowing the rest of the system to change Config values.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let vrx init with the default builder/config. The "template" view
//     type ships pre-registered.
//
//  2. Optionally register custom view types up front:
//
//     vrx.RegisterView("markdown", markdown.Factory)
//
//  3. Configure resolution once at startup:
//
//     err := vrx.SetConfig(config.NewConfig(
//     config.WithViewType(template.TypeName),
//     config.WithPrefix("templates/"),
//     config.WithSuffix(".gohtml"),
//     ))
//
//  4. Resolve everywhere requests are handled:
//
//     v, err := vrx.ResolveView(ctx, viewName, locale)
//
//  5. In tests, call vrx.SetAll(...) to get deterministic snapshots and to
//     inject a mock Builder.
//
// # Scope
//
// vrx is intentionally small. It does not render, it does not speak HTTP,
// and it does not resolve the same name to different resources per locale
// (the locale is only threaded through to the existence probe). It only
// solves one job:
//
//	"Given a symbolic view name, decide whether we own it, which resource
//	 it maps to, and hand back a configured, initialized, verified view."
//
// Everything else (template engines, response writing, content
// negotiation, retry policy around the chain) belongs to other layers.
package vrx
