package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nglint/pkg/lint/linttest"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/routing"
)

func TestGuardPresent(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		content  string
		wantDiag bool
	}{
		{
			name:     "lazy children without guard",
			path:     "src/app/app.routes.ts",
			content:  `export const routes = [{ path: 'admin', loadChildren: () => import('./admin/admin.routes') }];`,
			wantDiag: true,
		},
		{
			name:     "lazy component without guard in routing module",
			path:     "src/app/features/pay/pay-routing.module.ts",
			content:  `const routes: Routes = [{ path: '', loadComponent: () => import('./pay-page.component') }];`,
			wantDiag: true,
		},
		{
			name:     "canMatch guard",
			path:     "src/app/app.routes.ts",
			content:  `[{ path: 'admin', canMatch: [adminGuard], loadChildren: () => import('./admin') }]`,
			wantDiag: false,
		},
		{
			name:     "canActivateChild guard",
			path:     "src/app/app.routes.ts",
			content:  `[{ path: 'admin', canActivateChild: [g], loadChildren: () => import('./admin') }]`,
			wantDiag: false,
		},
		{
			name:     "canLoad guard",
			path:     "src/app/app-routing.module.ts",
			content:  `[{ path: 'x', canLoad: [g], loadChildren: () => import('./x') }]`,
			wantDiag: false,
		},
		{
			name:     "eager routes",
			path:     "src/app/app.routes.ts",
			content:  `[{ path: '', component: HomePageComponent }]`,
			wantDiag: false,
		},
		{
			name:     "not a route file",
			path:     "src/app/app.config.ts",
			content:  `loadChildren`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := linttest.Files{tt.path: tt.content}
			diags, err := files.Check(routing.GuardPresent, tt.path, nil)
			require.NoError(t, err)
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Contains(t, diags[0].Message, "lazy-loaded routes")
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestGuardPresent_UnreadableFile(t *testing.T) {
	files := linttest.Files{}
	_, err := files.Check(routing.GuardPresent, "src/app/app.routes.ts", nil)
	assert.Error(t, err)
}
