package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
    require.NoError(t, LoadConfig())
    require.NotNil(t, GlobalConfig)

    assert.Equal(t, 6, GlobalConfig.RecommendCount)
    assert.Equal(t, 0.7, GlobalConfig.TopPickRatio)
    assert.Equal(t, 3.0, GlobalConfig.GenreWeight)
    assert.Equal(t, 2.0, GlobalConfig.ThemeWeight)
    assert.Equal(t, 2.0, GlobalConfig.StyleWeight)
    assert.Equal(t, 1.0, GlobalConfig.EraWeight)
    assert.Equal(t, 10.0, GlobalConfig.DiversityJitter)
    assert.Equal(t, 24, GlobalConfig.RecencyCap)
    assert.Equal(t, 18, GlobalConfig.StarterRecencyCap)
    assert.Equal(t, 10, GlobalConfig.ReplacementPoolSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
    t.Setenv("RECOMMEND_COUNT", "8")
    t.Setenv("RECENCY_CAP", "30")

    require.NoError(t, LoadConfig())

    assert.Equal(t, 8, GlobalConfig.RecommendCount)
    assert.Equal(t, 30, GlobalConfig.RecencyCap)
}
