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

// Package resolver resolves symbolic view names directly to URL-addressed
// views, without per-name mapping definitions: the backing URL is the
// configured prefix, the name and the configured suffix. Names carrying the
// "redirect:" prefix short-cut to a redirect view instead.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/text/language"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/matcher"
	"dirpx.dev/vrx/view"
)

// RedirectPrefix marks view names that specify a redirect target rather
// than a resolvable resource. The remainder of the name is the raw target
// URL; prefix and suffix are not applied to it.
const RedirectPrefix = "redirect:"

var (
	// ErrViewTypeRequired is returned when the configuration names no view type.
	ErrViewTypeRequired = errors.New("vrx(resolver): view type is required")
	// ErrUnknownViewType is returned when the configured view type has no
	// registered factory.
	ErrUnknownViewType = errors.New("vrx(resolver): view type is not registered")
	// ErrViewKind is returned when the configured view type produces views
	// that are not URL-based.
	ErrViewKind = errors.New("vrx(resolver): view type does not produce a URL-based view")
)

// New validates cfg against reg and constructs a Resolver.
//
// Validation instantiates one view through the configured factory to verify
// the no-argument construction path works and that the produced view is
// URL-based. All three failure modes are configuration errors: missing view
// type, unregistered view type, kind mismatch.
func New(cfg apis.Config, reg apis.Registry) (*Resolver, error) {
	if cfg.ViewType == "" {
		return nil, ErrViewTypeRequired
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %q (nil registry)", ErrUnknownViewType, cfg.ViewType)
	}
	factory, ok := reg.Lookup(cfg.ViewType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownViewType, cfg.ViewType)
	}
	probe, err := factory()
	if err != nil {
		return nil, fmt.Errorf("vrx(resolver): construct view type %q: %w", cfg.ViewType, err)
	}
	if _, ok := probe.(apis.UrlView); !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewKind, cfg.ViewType)
	}

	redirect := cfg.RedirectProvider
	if redirect == nil {
		redirect = func(targetURL string) apis.UrlView { return view.NewRedirect(targetURL) }
	}
	return &Resolver{
		cfg:      cfg,
		factory:  factory,
		matcher:  matcher.New(cfg.ViewNames),
		redirect: redirect,
	}, nil
}

// Resolver is a URL-based view resolver. It is immutable after New and safe
// for concurrent ResolveView calls; the only blocking point per call is the
// existence probe.
type Resolver struct {
	cfg      apis.Config
	factory  apis.ViewFactory
	matcher  *matcher.Matcher
	redirect apis.RedirectProvider
}

// Ensure Resolver implements apis.ViewResolver.
var _ apis.ViewResolver = (*Resolver)(nil)

// ResolveView resolves name for locale.
//
// Names outside the acceptance set return (nil, nil) without constructing
// anything. "redirect:" names return a redirect view immediately after the
// lifecycle hook; redirect targets are never probed. Ordinary names are
// constructed, run through the lifecycle hook, then gated on the existence
// probe: absent resources return (nil, nil) so a chain can try the next
// resolver, probe failures propagate as errors.
func (r *Resolver) ResolveView(ctx context.Context, name string, locale language.Tag) (apis.View, error) {
	logger := slogcontext.FromCtx(ctx).With(slog.String("realm", "vrx"))

	if !r.matcher.CanHandle(name) {
		logger.Log(ctx, slog.LevelDebug, "view name outside the accepted set",
			slog.String("view", name),
		)
		return nil, nil
	}

	if target, ok := strings.CutPrefix(name, RedirectPrefix); ok {
		logger.Log(ctx, slog.LevelDebug, "resolved redirect view",
			slog.String("view", name),
			slog.String("target", target),
		)
		return r.applyLifecycle(ctx, name, r.redirect(target))
	}

	urlView, err := r.createView(name)
	if err != nil {
		return nil, err
	}
	final, err := r.applyLifecycle(ctx, name, urlView)
	if err != nil {
		return nil, err
	}

	// Probe the URL-bearing view the factory produced: existence depends on
	// the backing URL, not on whatever the lifecycle hook wrapped around it.
	exists, err := r.exists(ctx, urlView, locale)
	if err != nil {
		return nil, fmt.Errorf("vrx(resolver): probe %q: %w", urlView.URL(), err)
	}
	if !exists {
		logger.Log(ctx, slog.LevelDebug, "backing resource not found",
			slog.String("view", name),
			slog.String("url", urlView.URL()),
		)
		return nil, nil
	}
	return final, nil
}

// applyLifecycle runs the configured post-construction hook, if any.
// A returned object that no longer satisfies apis.View is discarded in
// favor of the original view; hook errors abort the resolution.
func (r *Resolver) applyLifecycle(ctx context.Context, name string, v apis.View) (apis.View, error) {
	init := r.cfg.Initializer
	if init == nil {
		return v, nil
	}
	out, err := init.Initialize(ctx, name, v)
	if err != nil {
		return nil, fmt.Errorf("vrx(resolver): initialize view %q: %w", name, err)
	}
	if initialized, ok := out.(apis.View); ok && initialized != nil {
		return initialized, nil
	}
	return v, nil
}

// exists runs the existence probe without letting an abandoned resolution
// stay parked on it: the probe gets ctx and runs on its own goroutine, and
// a cancelled ctx returns immediately with ctx.Err().
func (r *Resolver) exists(ctx context.Context, v apis.UrlView, locale language.Tag) (bool, error) {
	type result struct {
		ok  bool
		err error
	}
	done := make(chan result, 1)
	go func() {
		ok, err := v.Exists(ctx, locale)
		done <- result{ok: ok, err: err}
	}()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-done:
		return res.ok, res.err
	}
}
