package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Version: "1.0",
		Items: []Def{
			{ID: "T1_WOOD", Tier: 1, Type: "RESOURCE"},
			{ID: "T4_SWORD", Tier: 4, Quality: 2, Type: "WEAPON", Name: "Broadsword"},
		},
	}
}

func TestValidate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, loader.Validate(validConfig()))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("no items", func(t *testing.T) {
		err := loader.Validate(&Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), ErrMsgNoItemsDefined)
	})

	t.Run("empty id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].ID = ""
		err := loader.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items = append(cfg.Items, Def{ID: "T1_WOOD", Tier: 1, Type: "RESOURCE"})
		err := loader.Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("tier below one", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Tier = 0
		err := loader.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidTier)
	})

	t.Run("negative quality", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[1].Quality = -1
		err := loader.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNegativeQuality)
	})

	t.Run("unknown type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Type = "GADGET"
		err := loader.Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loader := NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoadCatalog_ShippedConfig(t *testing.T) {
	cat, err := LoadCatalog("../../configs/items/items.json")
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 0)

	meta, ok := cat.Resolve("T1_OAK_WOOD")
	require.True(t, ok)
	assert.Equal(t, 1, meta.Tier)
	assert.Equal(t, "Oak Wood", meta.Name)
}

func TestNewCatalog_NameFallback(t *testing.T) {
	cat := NewCatalog(&Config{Items: []Def{
		{ID: "T4_OAK_PLANK", Tier: 4, Type: "REFINED"},
		{ID: "T4_SWORD", Tier: 4, Type: "WEAPON", Name: "Broadsword"},
	}})

	meta, ok := cat.Resolve("T4_OAK_PLANK")
	require.True(t, ok)
	assert.Equal(t, "Oak Plank", meta.Name)

	meta, ok = cat.Resolve("T4_SWORD")
	require.True(t, ok)
	assert.Equal(t, "Broadsword", meta.Name)

	_, ok = cat.Resolve("T9_UNKNOWN")
	assert.False(t, ok)
}

func TestDisplayNameFromID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"T4_OAK_PLANK", "Oak Plank"},
		{"T1_WOOD", "Wood"},
		{"T12_ANCIENT_RELIC", "Ancient Relic"},
		{"NO_TIER_PREFIX", "No Tier Prefix"},
		{"SIMPLE", "Simple"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayNameFromID(tt.id))
		})
	}
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, "#9d9d9d", TierColor(1))
	assert.Equal(t, "#e268a8", TierColor(8))

	// out-of-range tiers clamp
	assert.Equal(t, "#9d9d9d", TierColor(0))
	assert.Equal(t, "#9d9d9d", TierColor(-3))
	assert.Equal(t, "#e268a8", TierColor(99))
}
