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

package config

import (
	"dirpx.dev/vrx/apis"
)

const (
	// DefaultMediaType is the media type constructed views report when
	// none is configured.
	DefaultMediaType = "text/html"
	// DefaultCharset is the charset constructed views use when none is
	// configured.
	DefaultCharset = "utf-8"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure render defaults survive option misuse.
	if len(cfg.MediaTypes) == 0 {
		cfg.MediaTypes = []string{DefaultMediaType}
	}
	if cfg.Charset == "" {
		cfg.Charset = DefaultCharset
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
// ViewType is deliberately left empty: it has no sensible default and
// resolvers reject configurations without one.
func DefaultConfig() apis.Config {
	return apis.Config{
		MediaTypes: []string{DefaultMediaType},
		Charset:    DefaultCharset,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithViewType sets the registered view-type name used to instantiate views.
func WithViewType(typeName string) Option {
	return func(c *apis.Config) {
		c.ViewType = typeName
	}
}

// WithPrefix sets the prefix prepended to view names when building URLs.
func WithPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.Prefix = prefix
	}
}

// WithSuffix sets the suffix appended to view names when building URLs.
func WithSuffix(suffix string) Option {
	return func(c *apis.Config) {
		c.Suffix = suffix
	}
}

// WithViewNames restricts the names the resolver handles.
// Passing no names leaves the resolver accepting every name.
func WithViewNames(names ...string) Option {
	return func(c *apis.Config) {
		if len(names) == 0 {
			c.ViewNames = nil
			return
		}
		c.ViewNames = names
	}
}

// WithMediaTypes sets the media types copied onto every constructed view.
// An empty call resets to the default.
func WithMediaTypes(types ...string) Option {
	return func(c *apis.Config) {
		if len(types) == 0 {
			c.MediaTypes = []string{DefaultMediaType}
			return
		}
		c.MediaTypes = types
	}
}

// WithCharset sets the charset copied onto every constructed view.
// An empty value resets to the default.
func WithCharset(charset string) Option {
	return func(c *apis.Config) {
		if charset == "" {
			c.Charset = DefaultCharset
			return
		}
		c.Charset = charset
	}
}

// WithRequestContextAttribute sets the model attribute name under which
// render-time context is exposed to views.
func WithRequestContextAttribute(name string) Option {
	return func(c *apis.Config) {
		c.RequestContextAttribute = name
	}
}

// WithRedirectProvider sets the provider used for "redirect:" names.
func WithRedirectProvider(provider apis.RedirectProvider) Option {
	return func(c *apis.Config) {
		c.RedirectProvider = provider
	}
}

// WithInitializer sets the post-construction lifecycle hook.
func WithInitializer(init apis.Initializer) Option {
	return func(c *apis.Config) {
		c.Initializer = init
	}
}
