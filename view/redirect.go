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

package view

import (
	"context"
	"io"
	"net/http"

	"golang.org/x/text/language"

	"dirpx.dev/vrx/apis"
)

// DefaultRedirectStatus is the status code new redirect views carry.
const DefaultRedirectStatus = http.StatusSeeOther

// NewRedirect builds a redirect view for the given target URL.
// The target is stored verbatim as the view URL.
func NewRedirect(targetURL string) *Redirect {
	r := &Redirect{status: DefaultRedirectStatus}
	r.SetURL(targetURL)
	return r
}

// Redirect is the standard redirect view: it names a target URL and a
// redirect status code and leaves issuing the actual redirect to the HTTP
// layer. Redirects are generated, not looked up, so Exists always reports
// true and Render produces no body.
type Redirect struct {
	Base
	status int
}

// Ensure Redirect implements apis.UrlView.
var _ apis.UrlView = (*Redirect)(nil)

// Status returns the redirect status code.
func (r *Redirect) Status() int { return r.status }

// SetStatus overrides the redirect status code.
// Non-redirect codes are ignored.
func (r *Redirect) SetStatus(code int) {
	if code < 300 || code > 399 {
		return
	}
	r.status = code
}

// Render writes nothing: a redirect has no body of its own.
func (r *Redirect) Render(_ context.Context, _ map[string]any, _ io.Writer) error {
	return nil
}

// Exists always reports true: redirect targets are not probed.
func (r *Redirect) Exists(_ context.Context, _ language.Tag) (bool, error) {
	return true, nil
}
