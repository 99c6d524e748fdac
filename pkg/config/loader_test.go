package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/config"
)

// Distinct struct types per test: the loader caches by type, so sharing a
// type across tests would leak state between them.

type defaultsConfig struct {
	Name  string `env:"CFG_TEST_NAME" envDefault:"fallback"`
	Count int    `env:"CFG_TEST_COUNT" envDefault:"7"`
	Flag  bool   `env:"CFG_TEST_FLAG" envDefault:"true"`
}

type envConfig struct {
	Name string `env:"CFG_TEST_ENV_NAME" envDefault:"fallback"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"initial"`
}

type requiredConfig struct {
	Token string `env:"CFG_TEST_REQUIRED_TOKEN,required"`
}

type badTypeConfig struct {
	Count int `env:"CFG_TEST_BAD_INT" envDefault:"42"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
	assert.True(t, cfg.Flag)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_ENV_NAME", "from-env")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// A changed environment is invisible once the type is cached.
	t.Setenv("CFG_TEST_CACHED", "second")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[defaultsConfig](nil)
	require.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadUnparsableValue(t *testing.T) {
	t.Setenv("CFG_TEST_BAD_INT", "not-a-number")

	var cfg badTypeConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
