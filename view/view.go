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

// Package view holds the shared state of URL-addressed render targets and
// the standard redirect view.
package view

import "dirpx.dev/vrx/config"

// Base carries the render-target state shared by URL-addressed views:
// the backing URL, supported media types, default charset and the optional
// request-context attribute name. Concrete views embed Base and add
// rendering and existence probing on top.
//
// Base is configured once by a resolver and read afterwards; it needs no
// synchronization under that regime.
type Base struct {
	url                     string
	mediaTypes              []string
	charset                 string
	requestContextAttribute string
}

// SetURL sets the backing resource URL.
func (b *Base) SetURL(url string) { b.url = url }

// URL returns the backing resource URL.
func (b *Base) URL() string { return b.url }

// SetSupportedMediaTypes replaces the media types this view reports.
// A nil or empty slice resets to the default.
func (b *Base) SetSupportedMediaTypes(types []string) {
	if len(types) == 0 {
		b.mediaTypes = nil
		return
	}
	b.mediaTypes = types
}

// SupportedMediaTypes returns the media types this view can produce.
func (b *Base) SupportedMediaTypes() []string {
	if len(b.mediaTypes) == 0 {
		return []string{config.DefaultMediaType}
	}
	return b.mediaTypes
}

// SetDefaultCharset sets the charset used when rendering.
// An empty value resets to the default.
func (b *Base) SetDefaultCharset(charset string) { b.charset = charset }

// DefaultCharset returns the charset used when rendering.
func (b *Base) DefaultCharset() string {
	if b.charset == "" {
		return config.DefaultCharset
	}
	return b.charset
}

// SetRequestContextAttribute sets the model attribute name under which
// render-time context is exposed. Empty means none.
func (b *Base) SetRequestContextAttribute(name string) { b.requestContextAttribute = name }

// RequestContextAttribute returns the configured attribute name, if any.
func (b *Base) RequestContextAttribute() string { return b.requestContextAttribute }

// RequestContext is the render-time metadata exposed to views under the
// configured request-context attribute name.
type RequestContext struct {
	// URL is the backing resource URL of the rendering view.
	URL string
	// Charset is the charset the view renders with.
	Charset string
	// MediaTypes are the media types the view reports.
	MediaTypes []string
}
