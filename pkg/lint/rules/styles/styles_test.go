package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nglint/pkg/lint/linttest"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/styles"
)

const component = "src/app/pay/pay-button.component.ts"

func TestScssPerComponent(t *testing.T) {
	tests := []struct {
		name     string
		files    linttest.Files
		opts     map[string]any
		wantDiag bool
	}{
		{
			name:     "sibling stylesheet",
			files:    linttest.Files{component: "@Component({})", "src/app/pay/pay-button.component.scss": ""},
			wantDiag: false,
		},
		{
			name:     "missing stylesheet",
			files:    linttest.Files{component: "@Component({ templateUrl: './x.html' })"},
			wantDiag: true,
		},
		{
			name:     "inline styles",
			files:    linttest.Files{component: "@Component({ styles: [`:host { display: block }`] })"},
			wantDiag: false,
		},
		{
			name:     "css sibling does not count by default",
			files:    linttest.Files{component: "", "src/app/pay/pay-button.component.css": ""},
			wantDiag: true,
		},
		{
			name:     "configured extensions",
			files:    linttest.Files{component: "", "src/app/pay/pay-button.component.css": ""},
			opts:     map[string]any{"style_extensions": []any{".scss", ".css"}},
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, err := tt.files.Check(styles.ScssPerComponent, component, tt.opts)
			require.NoError(t, err)
			if tt.wantDiag {
				assert.Len(t, diags, 1)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestScssPerComponent_SkipsSpecsAndDisabledByDefault(t *testing.T) {
	files := linttest.Files{"src/app/pay/pay-button.component.spec.ts": ""}
	diags, err := files.Check(styles.ScssPerComponent, "src/app/pay/pay-button.component.spec.ts", nil)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.True(t, styles.ScssPerComponent.DefaultDisabled)
}

func TestScssPerComponent_Message(t *testing.T) {
	files := linttest.Files{component: ""}
	diags, err := files.Check(styles.ScssPerComponent, component, nil)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "pay-button.component.ts has no sibling .scss stylesheet", diags[0].Message)
}
