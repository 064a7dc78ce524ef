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

import (
	"context"
	"io"

	"golang.org/x/text/language"
)

// View is the renderable capability shared by every resolved target.
// A View is ready to be handed to a rendering stage once a resolver
// returns it; vrx itself never renders.
type View interface {
	// SupportedMediaTypes returns the media types this view can produce.
	SupportedMediaTypes() []string

	// Render writes the view output for model to w.
	// Implementations must honor ctx cancellation for any I/O they perform.
	Render(ctx context.Context, model map[string]any, w io.Writer) error
}

// UrlView is a View backed by a single URL-addressable resource.
// It is the required capability for views produced by vrx view factories:
// resolvers synthesize the backing URL, copy shared render configuration
// onto the view, and probe Exists before committing to it.
type UrlView interface {
	View

	// SetURL sets the backing resource URL.
	SetURL(url string)
	// URL returns the backing resource URL.
	URL() string

	// SetSupportedMediaTypes replaces the media types this view reports.
	SetSupportedMediaTypes(types []string)
	// SetDefaultCharset sets the charset used when rendering.
	SetDefaultCharset(charset string)
	// DefaultCharset returns the charset used when rendering.
	DefaultCharset() string
	// SetRequestContextAttribute sets the model attribute name under which
	// render-time context is exposed to the view. Empty means none.
	SetRequestContextAttribute(name string)
	// RequestContextAttribute returns the configured attribute name, if any.
	RequestContextAttribute() string

	// Exists reports whether the backing resource is reachable.
	// The locale is advisory only: vrx resolves names locale-independently
	// and merely threads the caller's locale through to the probe.
	// Implementations must not block past ctx cancellation.
	Exists(ctx context.Context, locale language.Tag) (bool, error)
}

// RedirectProvider builds a redirect view for a raw target URL.
// The target is used verbatim; no prefix or suffix is applied.
type RedirectProvider func(targetURL string) UrlView
