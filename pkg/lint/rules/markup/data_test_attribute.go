// Package markup provides template rules.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/leapstack-labs/nglint/pkg/lint"
)

// DataTest requires interactive elements to carry a data-test attribute.
var DataTest = lint.RuleDef{
	ID:          "data-test-attribute",
	Name:        "data-test on interactive elements",
	Group:       "markup",
	Description: "Every <button>, <input> and <select> in a template must carry a data-test attribute.",
	Severity:    lint.SeverityWarning,
	AppliesTo:   lint.HasExt(".html"),
	Check:       checkDataTest,
	Rationale: `End-to-end tests select elements by data-test so that markup and styling can
change without breaking them. Hidden inputs are not interactive and are exempt.`,
	BadExample:  `<button (click)="send()">Send</button>`,
	GoodExample: `<button data-test="send-btn" (click)="send()">Send</button>`,
}

var interactiveTags = map[string]bool{
	"button": true,
	"input":  true,
	"select": true,
}

var testAttrs = map[string]bool{
	"data-test":        true,
	"[attr.data-test]": true,
}

func checkDataTest(in *lint.Input) ([]lint.Violation, error) {
	content, err := in.Content()
	if err != nil {
		return nil, err
	}

	var violations []lint.Violation
	z := html.NewTokenizer(bytes.NewReader(content))
	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return violations, nil
			}
			return nil, fmt.Errorf("failed to tokenize template: %w", z.Err())
		}

		start := line
		line += bytes.Count(z.Raw(), []byte("\n"))

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tok := z.Token()
		if !interactiveTags[tok.Data] || hasTestAttr(tok) {
			continue
		}
		violations = append(violations, lint.Violation{
			Message: fmt.Sprintf("<%s> on line %d has no data-test attribute", tok.Data, start),
		})
	}
}

func hasTestAttr(tok html.Token) bool {
	for _, a := range tok.Attr {
		if testAttrs[a.Key] {
			return true
		}
		if tok.Data == "input" && a.Key == "type" && strings.EqualFold(strings.TrimSpace(a.Val), "hidden") {
			return true
		}
	}
	return false
}
