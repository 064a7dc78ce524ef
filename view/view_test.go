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

package view_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"golang.org/x/text/language"

	"dirpx.dev/vrx/config"
	"dirpx.dev/vrx/view"
)

func TestBase_Defaults(t *testing.T) {
	b := &view.Base{}

	types := b.SupportedMediaTypes()
	if len(types) != 1 || types[0] != config.DefaultMediaType {
		t.Fatalf("SupportedMediaTypes = %v, want [%q]", types, config.DefaultMediaType)
	}
	if b.DefaultCharset() != config.DefaultCharset {
		t.Fatalf("DefaultCharset = %q, want %q", b.DefaultCharset(), config.DefaultCharset)
	}
	if b.URL() != "" || b.RequestContextAttribute() != "" {
		t.Fatal("URL/RequestContextAttribute should default to empty")
	}
}

func TestBase_Setters(t *testing.T) {
	b := &view.Base{}

	b.SetURL("templates/home.gohtml")
	if b.URL() != "templates/home.gohtml" {
		t.Fatalf("URL = %q", b.URL())
	}

	b.SetSupportedMediaTypes([]string{"application/xhtml+xml"})
	types := b.SupportedMediaTypes()
	if len(types) != 1 || types[0] != "application/xhtml+xml" {
		t.Fatalf("SupportedMediaTypes = %v", types)
	}

	// Empty set restores the default.
	b.SetSupportedMediaTypes(nil)
	if got := b.SupportedMediaTypes(); got[0] != config.DefaultMediaType {
		t.Fatalf("SupportedMediaTypes = %v, want default", got)
	}

	b.SetDefaultCharset("iso-8859-1")
	if b.DefaultCharset() != "iso-8859-1" {
		t.Fatalf("DefaultCharset = %q", b.DefaultCharset())
	}

	b.SetRequestContextAttribute("rc")
	if b.RequestContextAttribute() != "rc" {
		t.Fatalf("RequestContextAttribute = %q", b.RequestContextAttribute())
	}
}

func TestRedirect_Defaults(t *testing.T) {
	r := view.NewRedirect("login")

	if r.URL() != "login" {
		t.Fatalf("URL = %q, want %q", r.URL(), "login")
	}
	if r.Status() != view.DefaultRedirectStatus {
		t.Fatalf("Status = %d, want %d", r.Status(), view.DefaultRedirectStatus)
	}

	exists, err := r.Exists(context.Background(), language.English)
	if err != nil || !exists {
		t.Fatalf("Exists = (%v, %v), want (true, nil)", exists, err)
	}

	var buf bytes.Buffer
	if err := r.Render(context.Background(), nil, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("redirect rendered %d bytes, want none", buf.Len())
	}
}

func TestRedirect_SetStatus(t *testing.T) {
	r := view.NewRedirect("login")

	r.SetStatus(http.StatusMovedPermanently)
	if r.Status() != http.StatusMovedPermanently {
		t.Fatalf("Status = %d", r.Status())
	}

	// Non-redirect codes are ignored.
	r.SetStatus(http.StatusOK)
	if r.Status() != http.StatusMovedPermanently {
		t.Fatalf("Status = %d after invalid SetStatus", r.Status())
	}
}
