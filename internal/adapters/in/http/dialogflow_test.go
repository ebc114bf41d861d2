package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExtractSessionID(t *testing.T) {
	tests := []struct {
		name        string
		contextName string
		want        string
		wantErr     bool
	}{
		{
			name:        "dialogflow context name",
			contextName: "projects/foodibot/agent/sessions/abc-123/contexts/ongoing-order",
			want:        "abc-123",
		},
		{
			name:        "session id with slashes stops at contexts",
			contextName: "projects/p/agent/sessions/55cc5f58-5391-1a52/contexts/ongoing-tracking",
			want:        "55cc5f58-5391-1a52",
		},
		{
			name:        "no session segment",
			contextName: "projects/foodibot/agent/contexts/ongoing-order",
			wantErr:     true,
		},
		{
			name:        "empty name",
			contextName: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSessionID(tt.contextName)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_stringSliceParam(t *testing.T) {
	t.Run("list of strings", func(t *testing.T) {
		got, ok := stringSliceParam(map[string]any{"food-item": []any{"pizza", "burger"}}, "food-item")
		require.True(t, ok)
		assert.Equal(t, []string{"pizza", "burger"}, got)
	})

	t.Run("bare string accepted", func(t *testing.T) {
		got, ok := stringSliceParam(map[string]any{"food-item": "pizza"}, "food-item")
		require.True(t, ok)
		assert.Equal(t, []string{"pizza"}, got)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		_, ok := stringSliceParam(map[string]any{}, "food-item")
		assert.False(t, ok)
	})

	t.Run("mixed types rejected", func(t *testing.T) {
		_, ok := stringSliceParam(map[string]any{"food-item": []any{"pizza", 2.0}}, "food-item")
		assert.False(t, ok)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, ok := stringSliceParam(map[string]any{"food-item": []any{}}, "food-item")
		assert.False(t, ok)
	})
}

func Test_intSliceParam(t *testing.T) {
	t.Run("list of whole numbers", func(t *testing.T) {
		got, ok := intSliceParam(map[string]any{"number": []any{2.0, 1.0}}, "number")
		require.True(t, ok)
		assert.Equal(t, []int{2, 1}, got)
	})

	t.Run("absent key means no quantities", func(t *testing.T) {
		got, ok := intSliceParam(map[string]any{}, "number")
		require.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("fractional quantity rejected", func(t *testing.T) {
		_, ok := intSliceParam(map[string]any{"number": []any{2.5}}, "number")
		assert.False(t, ok)
	})

	t.Run("single number accepted", func(t *testing.T) {
		got, ok := intSliceParam(map[string]any{"number": 3.0}, "number")
		require.True(t, ok)
		assert.Equal(t, []int{3}, got)
	})

	t.Run("non-numeric rejected", func(t *testing.T) {
		_, ok := intSliceParam(map[string]any{"number": []any{"two"}}, "number")
		assert.False(t, ok)
	})
}

func Test_stringParam(t *testing.T) {
	assert.Equal(t, "+923001234567",
		stringParam(map[string]any{"phone-number": " +923001234567 "}, "phone-number"))
	assert.Equal(t, "3001234567",
		stringParam(map[string]any{"phone-number": 3001234567.0}, "phone-number"))
	assert.Equal(t, "", stringParam(map[string]any{}, "phone-number"))
}
