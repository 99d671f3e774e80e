// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/nglint/internal/cli/output"
)

// cleanProject is an Angular tree that passes every default rule.
var cleanProject = map[string]string{
	"src/app/app.component.ts": `import { Component } from '@angular/core';
import { RouterOutlet } from '@angular/router';

@Component({ selector: 'app-root', templateUrl: './app.component.html' })
export class AppComponent {}
`,
	"src/app/app.component.html": `<main data-test="root">
  <button data-test="start-btn">Start</button>
</main>
`,
	"src/app/app.routes.ts": `import { Routes } from '@angular/router';
import { authGuard } from './core/guards/auth.guard';

export const routes: Routes = [
  {
    path: 'home',
    canActivate: [authGuard],
    loadComponent: () => import('./pages/home/home-page.component').then(m => m.HomePageComponent),
  },
];
`,
	"src/app/core/guards/auth.guard.ts": `import { CanActivateFn } from '@angular/router';

export const authGuard: CanActivateFn = () => true;
`,
	"src/app/core/services/auth.service.ts": `import { Injectable } from '@angular/core';
import { HttpClient } from '@angular/common/http';

@Injectable({ providedIn: 'root' })
export class AuthService {}
`,
	"src/app/pages/home/home-page.component.ts": `import { Component } from '@angular/core';

@Component({ selector: 'app-home-page', templateUrl: './home-page.component.html' })
export class HomePageComponent {}
`,
	"src/app/pages/home/home-page.component.html": `<input data-test="search" type="text">
<input type="hidden" name="token">
`,
	"src/app/shared/components/pay-button/pay-button.component.ts": `import { Component } from '@angular/core';

@Component({ selector: 'app-pay-button', template: '<span></span>', styles: [':host { display: block; }'] })
export class PayButtonComponent {}
`,
}

// SetupTestProject creates a temporary Angular project with no violations
// under the default configuration.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	for rel, content := range cleanProject {
		WriteFile(t, tmpDir, rel, content)
	}
	return tmpDir
}

// AddViolations adds files that break naming-suffix, file-kebab-case and
// data-test-attribute, all at warning severity by default.
func AddViolations(t *testing.T, root string) {
	t.Helper()

	WriteFile(t, root, "src/app/shared/components/pay-button/PayButton.ts", "export const x = 1;\n")
	WriteFile(t, root, "src/app/shared/components/pay-button/pay-button.component.html", "<button>Pay</button>\n")
}

// WriteFile writes a file under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return p
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode.
// Buffers are never terminals, so output carries no styling.
func NewTestRenderer(mode output.Mode) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, errOut, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
