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

package resolver

import (
	"fmt"

	"dirpx.dev/vrx/apis"
)

// createView instantiates and configures a fresh view for name.
//
// The backing URL is Prefix + name + Suffix, verbatim. No normalization or
// path sanitization happens here: callers must not feed attacker-controlled
// names into a resolver without upstream validation. No existence check is
// performed either; that is the caller's next step.
//
// New already validated the factory, so failures here indicate the factory
// stopped honoring its contract between calls. They surface as errors, not
// as "not applicable".
func (r *Resolver) createView(name string) (apis.UrlView, error) {
	v, err := r.factory()
	if err != nil {
		return nil, fmt.Errorf("vrx(resolver): construct view type %q: %w", r.cfg.ViewType, err)
	}
	urlView, ok := v.(apis.UrlView)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewKind, r.cfg.ViewType)
	}

	urlView.SetURL(r.cfg.Prefix + name + r.cfg.Suffix)
	urlView.SetSupportedMediaTypes(r.cfg.MediaTypes)
	urlView.SetDefaultCharset(r.cfg.Charset)
	if r.cfg.RequestContextAttribute != "" {
		urlView.SetRequestContextAttribute(r.cfg.RequestContextAttribute)
	}
	return urlView, nil
}
