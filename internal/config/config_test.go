package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUsers(t *testing.T) {
	users := ParseUsers("advocate:secret, admin:$2a$10$abc ,broken,:nopass")

	assert.Len(t, users, 2)
	assert.Equal(t, "secret", users["advocate"])
	assert.Equal(t, "$2a$10$abc", users["admin"])
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     []APIKey
	}{
		{
			name: "ordered labelled keys",
			raw:  "Tank-1:k1,Tank-2:k2",
			want: []APIKey{{Label: "Tank-1", Key: "k1"}, {Label: "Tank-2", Key: "k2"}},
		},
		{
			name: "bare key gets positional label",
			raw:  "Tank-1:k1,k2",
			want: []APIKey{{Label: "Tank-1", Key: "k1"}, {Label: "Key-2", Key: "k2"}},
		},
		{
			name:     "fallback used when list empty",
			raw:      "",
			fallback: "single",
			want:     []APIKey{{Label: "Primary", Key: "single"}},
		},
		{
			name:     "fallback ignored when list present",
			raw:      "A:k1",
			fallback: "single",
			want:     []APIKey{{Label: "A", Key: "k1"}},
		},
		{
			name: "nothing configured",
			raw:  " , ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAPIKeys(tt.raw, tt.fallback))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODEL_SMALL", "small-x")
	t.Setenv("MODEL_LARGE", "large-x")
	t.Setenv("ALLOWED_MODELS", "")

	cfg := Load()

	assert.Equal(t, "small-x", cfg.Ai.SmallModel)
	assert.Equal(t, "large-x", cfg.Ai.LargeModel)
	assert.Equal(t, []string{"small-x", "large-x"}, cfg.Ai.AllowedModels)
	assert.Positive(t, cfg.Session.TTL)
}
