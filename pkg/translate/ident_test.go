package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"value", "value"},
		{"autoFocus", "autoFocus"},
		{"AutoFocus", "autoFocus"},
		{"aria-label", "ariaLabel"},
		{"data-test-id", "dataTestId"},
		{"type", "type_"},
		{"range", "range_"},
		{"2d", "_2d"},
		{"", "value"},
		{"$ref", "ref"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParamIdent(tt.in))
		})
	}
}

func TestMemberIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "Red"},
		{"space-between", "SpaceBetween"},
		{"autoFocus", "AutoFocus"},
		{"2d", "X2d"},
		{"", "X"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, MemberIdent(tt.in))
		})
	}
}

// Distinct source names within one object must stay distinct after
// adaptation for common documentation vocabularies.
func TestParamIdentInjectivity(t *testing.T) {
	names := []string{"value", "autoFocus", "auto-focus2", "type", "aria-label", "ariaLabel2"}
	seen := map[string]string{}
	for _, n := range names {
		adapted := ParamIdent(n)
		prev, dup := seen[adapted]
		require.Falsef(t, dup, "%q and %q both adapt to %q", prev, n, adapted)
		seen[adapted] = n
	}
}
