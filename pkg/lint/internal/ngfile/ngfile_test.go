package ngfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStemAndArtifact(t *testing.T) {
	tests := []struct {
		base     string
		stem     string
		artifact string
		spec     bool
	}{
		{"pay-button.component.ts", "pay-button.component", "component", false},
		{"pay-button.component.spec.ts", "pay-button.component", "component", true},
		{"auth.service.ts", "auth.service", "service", false},
		{"main.ts", "main", "", false},
		{"app.routes.ts", "app.routes", "routes", false},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.stem, Stem(tt.base))
			assert.Equal(t, tt.artifact, Artifact(tt.base))
			assert.Equal(t, tt.spec, IsSpec(tt.base))
		})
	}

	assert.Equal(t, "pay.service.ts", WithoutSpec("pay.service.spec.ts"))
}

func TestDeepestRole(t *testing.T) {
	role, ok := DeepestRole([]string{"src", "Services", "pay", "components", "button"}, RoleSuffixes)
	assert.True(t, ok)
	assert.Equal(t, "components", role)

	_, ok = DeepestRole([]string{"src", "app"}, RoleSuffixes)
	assert.False(t, ok)
}

func TestBarrelAndSegments(t *testing.T) {
	assert.True(t, IsBarrel("index.ts"))
	assert.True(t, IsBarrel("public-api.ts"))
	assert.False(t, IsBarrel("index.html"))
	assert.True(t, HasSegment([]string{"src", "Core"}, "core"))
	assert.False(t, HasSegment([]string{"src", "corex"}, "core"))
}

func TestLineAt(t *testing.T) {
	content := []byte("a\nb\nc")
	assert.Equal(t, 1, LineAt(content, 0))
	assert.Equal(t, 2, LineAt(content, 2))
	assert.Equal(t, 3, LineAt(content, 4))
	assert.Equal(t, 3, LineAt(content, 99))
}
