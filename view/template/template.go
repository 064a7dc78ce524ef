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

// Package template provides a URL-addressed view rendered with Go HTML
// templates. Templates are stored behind github.com/viant/afs, so any afs
// scheme works as a template root: file paths, mem:// in tests, embedded
// or remote storage via afs extensions.
package template

import (
	"context"
	"fmt"
	htmpl "html/template"
	"io"
	"path"

	"github.com/viant/afs"
	"golang.org/x/text/language"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/view"
)

// TypeName is the view-type name this view registers under.
const TypeName = "template"

// New constructs an unconfigured template view.
func New() *View {
	return &View{fs: afs.New()}
}

// Factory is the apis.ViewFactory for template views.
func Factory() (apis.View, error) {
	return New(), nil
}

// View renders an HTML template addressed by its backing URL.
// The URL, media types and charset are set by the owning resolver after
// construction.
type View struct {
	view.Base
	fs afs.Service
}

// Ensure View implements apis.UrlView.
var _ apis.UrlView = (*View)(nil)

// Exists reports whether the template resource is reachable.
// Resolution is locale-independent; the locale is accepted and ignored.
func (v *View) Exists(ctx context.Context, _ language.Tag) (bool, error) {
	return v.fs.Exists(ctx, v.URL())
}

// Render loads, parses and executes the backing template with model.
// When a request-context attribute is configured, the model handed to the
// template additionally carries a view.RequestContext under that key.
func (v *View) Render(ctx context.Context, model map[string]any, w io.Writer) error {
	data, err := v.fs.DownloadWithURL(ctx, v.URL())
	if err != nil {
		return fmt.Errorf("vrx(template): load %q: %w", v.URL(), err)
	}
	t, err := htmpl.New(path.Base(v.URL())).Parse(string(data))
	if err != nil {
		return fmt.Errorf("vrx(template): parse %q: %w", v.URL(), err)
	}
	if attr := v.RequestContextAttribute(); attr != "" {
		enriched := make(map[string]any, len(model)+1)
		for k, val := range model {
			enriched[k] = val
		}
		enriched[attr] = view.RequestContext{
			URL:        v.URL(),
			Charset:    v.DefaultCharset(),
			MediaTypes: v.SupportedMediaTypes(),
		}
		model = enriched
	}
	if err := t.Execute(w, model); err != nil {
		return fmt.Errorf("vrx(template): execute %q: %w", v.URL(), err)
	}
	return nil
}
