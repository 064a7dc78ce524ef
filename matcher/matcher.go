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

// Package matcher decides whether a resolver owns a symbolic view name.
package matcher

import (
	"strings"

	"github.com/gobwas/glob"
)

// New builds a Matcher for the given acceptance set.
//
// A nil patterns slice accepts every name. Otherwise a name is accepted iff
// it equals, or matches, at least one pattern: patterns containing '*' are
// compiled as globs ("my*", "*Report", "*Repo*", bare "*"); patterns without
// '*' require exact, case-sensitive equality. A pattern that fails to
// compile never matches and never panics.
//
// Patterns are compiled once here; CanHandle is allocation-free.
func New(patterns []string) *Matcher {
	if patterns == nil {
		return &Matcher{all: true}
	}
	m := &Matcher{entries: make([]entry, 0, len(patterns))}
	for _, p := range patterns {
		e := entry{literal: p}
		if strings.Contains(p, "*") {
			g, err := glob.Compile(p)
			if err != nil {
				// Malformed pattern: keep the documented "never matches"
				// behavior by dropping it.
				continue
			}
			e.glob = g
		}
		m.entries = append(m.entries, e)
	}
	return m
}

// Matcher is an immutable acceptance set over symbolic view names.
// It is safe for concurrent use.
type Matcher struct {
	all     bool
	entries []entry
}

// entry is a single compiled pattern: glob when the source pattern carried
// a wildcard, literal equality otherwise.
type entry struct {
	literal string
	glob    glob.Glob
}

// CanHandle reports whether name is in the acceptance set.
func (m *Matcher) CanHandle(name string) bool {
	if m.all {
		return true
	}
	for _, e := range m.entries {
		if e.glob != nil {
			if e.glob.Match(name) {
				return true
			}
			continue
		}
		if e.literal == name {
			return true
		}
	}
	return false
}
