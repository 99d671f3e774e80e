package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/linttest"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/naming"
)

func check(t *testing.T, rule lint.RuleDef, path string, opts map[string]any) []lint.Violation {
	t.Helper()
	files := linttest.Files{path: ""}
	got, err := files.Check(rule, path, opts)
	require.NoError(t, err)
	return got
}

func TestNamingSuffix(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantDiag bool
	}{
		{"component with suffix", "src/app/features/pay/components/pay-button/pay-button.component.ts", false},
		{"component without suffix", "src/app/features/pay/components/pay-button/PayButton.ts", true},
		{"component spec", "src/app/features/pay/components/pay-button/pay-button.component.spec.ts", false},
		{"service under services", "src/app/core/services/auth.service.ts", false},
		{"component under services", "src/app/core/services/auth.component.ts", true},
		{"model as interface", "src/app/shared/models/user.interface.ts", false},
		{"model without suffix", "src/app/shared/models/user.ts", true},
		{"pipe", "src/app/shared/pipes/currency.pipe.ts", false},
		{"guard without suffix", "src/app/core/guards/auth.ts", true},
		{"interceptor", "src/app/core/interceptors/token.interceptor.ts", false},
		{"directive", "src/app/shared/directives/autofocus.directive.ts", false},
		{"barrel index", "src/app/shared/components/index.ts", false},
		{"barrel public-api", "src/app/shared/components/public-api.ts", false},
		{"no role directory", "src/app/app.config.ts", false},
		{"deepest role wins", "src/app/services/widgets/components/chart.service.ts", true},
		{"role dir is case-insensitive", "src/app/Components/chart.ts", true},
		{"template is not checked", "src/app/components/chart/chart.html", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := check(t, naming.Suffix, tt.path, nil)
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Contains(t, diags[0].Message, "does not end with")
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestNamingSuffix_Message(t *testing.T) {
	diags := check(t, naming.Suffix, "src/app/shared/models/user.ts", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "user.ts is in a models directory but does not end with .model.ts or .interface.ts", diags[0].Message)
}

func TestNamingSuffix_Options(t *testing.T) {
	t.Run("allow list", func(t *testing.T) {
		opts := map[string]any{"allow": []any{"tokens.ts"}}
		assert.Empty(t, check(t, naming.Suffix, "src/app/core/services/tokens.ts", opts))
	})

	t.Run("custom role", func(t *testing.T) {
		opts := map[string]any{"roles": map[string]any{"Stores": []any{".store.ts"}}}
		assert.Empty(t, check(t, naming.Suffix, "src/app/stores/cart.store.ts", opts))
		assert.Len(t, check(t, naming.Suffix, "src/app/stores/cart.ts", opts), 1)
		assert.Len(t, check(t, naming.Suffix, "src/app/pipes/x.ts", opts), 1, "defaults still apply")
	})

	t.Run("override default role", func(t *testing.T) {
		opts := map[string]any{"roles": map[string]any{"components": ".cmp.ts"}}
		assert.Empty(t, check(t, naming.Suffix, "src/app/components/x.cmp.ts", opts))
	})
}

func TestPageNaming(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantDiag bool
	}{
		{"page component", "src/app/features/pay/pages/checkout/checkout-page.component.ts", false},
		{"page template", "src/app/features/pay/pages/checkout/checkout-page.component.html", false},
		{"page styles", "src/app/features/pay/pages/checkout/checkout-page.component.scss", false},
		{"page spec", "src/app/features/pay/pages/checkout/checkout-page.component.spec.ts", false},
		{"missing -page", "src/app/features/pay/pages/checkout/checkout.component.ts", true},
		{"missing -page template", "src/app/features/pay/pages/checkout/checkout.component.html", true},
		{"barrel", "src/app/features/pay/pages/index.ts", false},
		{"nested components dir wins", "src/app/features/pay/pages/checkout/components/summary.component.ts", false},
		{"not under pages", "src/app/features/pay/checkout.component.ts", false},
		{"css is not checked", "src/app/pages/home/home.component.css", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := check(t, naming.PageNaming, tt.path, nil)
			if tt.wantDiag {
				assert.Len(t, diags, 1)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		path     string
		wantDiag bool
	}{
		{"src/app/user-profile.component.ts", false},
		{"src/app/user-profile.component.spec.ts", false},
		{"src/app/http2-client.service.ts", false},
		{"src/app/userProfile.component.ts", true},
		{"src/app/User-profile.component.html", true},
		{"src/app/user_profile.component.scss", true},
		{"src/styles/_variables.scss", false},
		{"src/app/double--dash.css", true},
		{"src/app/trailing-.ts", true},
		{"src/assets/Logo.svg", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			diags := check(t, naming.KebabCase, tt.path, nil)
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Contains(t, diags[0].Message, "is not kebab-case")
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}
