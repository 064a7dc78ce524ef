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

// Config carries the read-only knobs of a URL-based view resolver.
// It is passed by value and should be treated as immutable by
// implementations: set it once at startup, before the first resolution.
type Config struct {
	// ViewType names the registered factory used to instantiate views.
	// Required; the factory must produce views implementing UrlView.
	ViewType string

	// Prefix is prepended to view names when building the backing URL.
	Prefix string

	// Suffix is appended to view names when building the backing URL.
	Suffix string

	// ViewNames optionally restricts which names this resolver handles.
	// Entries are exact names or simple wildcard patterns ("my*", "*Report",
	// "*Repo*"). A nil slice accepts every name.
	ViewNames []string

	// MediaTypes are copied onto every constructed view.
	MediaTypes []string

	// Charset is copied onto every constructed view.
	Charset string

	// RequestContextAttribute, when non-empty, is copied onto every
	// constructed view as the model attribute for render-time context.
	RequestContextAttribute string

	// RedirectProvider builds views for "redirect:" names.
	// Nil selects the standard redirect view.
	RedirectProvider RedirectProvider

	// Initializer is an optional post-construction lifecycle hook.
	// Nil means views are used exactly as constructed.
	Initializer Initializer
}
