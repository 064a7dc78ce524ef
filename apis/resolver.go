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

	"golang.org/x/text/language"
)

// ViewResolver resolves symbolic view names to renderable views.
// Resolvers are typically tried in order by a chain until one answers.
type ViewResolver interface {
	// ResolveView resolves name for the given locale.
	//
	// A (nil, nil) result means "not applicable": the name is outside this
	// resolver's acceptance set or its backing resource does not exist, and
	// the caller should try the next resolver. A non-nil error is a genuine
	// failure (probe I/O error, lifecycle failure) and must not be treated
	// as simple absence.
	//
	// Implementations must be safe for concurrent use.
	ResolveView(ctx context.Context, name string, locale language.Tag) (View, error)
}
