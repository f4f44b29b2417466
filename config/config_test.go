package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("int-size", 10_000_000, "")
	fs.Int("string-size", 1_000_000, "")
	fs.Int64("seed", 0, "")
	fs.Bool("debug", false, "")
	fs.String("color", "auto", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestConfig_BindPFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg := New()
		require.NoError(t, cfg.BindPFlags(newFlagSet(t)))
		require.Equal(t, 10_000_000, cfg.GetInt("int-size"))
		require.Equal(t, 1_000_000, cfg.GetInt("string-size"))
		require.Equal(t, int64(0), cfg.GetInt64("seed"))
		require.False(t, cfg.GetBool("debug"))
		require.Equal(t, "auto", cfg.GetString("color"))
	})

	t.Run("parsed", func(t *testing.T) {
		cfg := New()
		require.NoError(t, cfg.BindPFlags(newFlagSet(t,
			"--int-size", "100", "--seed", "42", "--debug", "--color", "never")))
		require.Equal(t, 100, cfg.GetInt("int-size"))
		require.Equal(t, int64(42), cfg.GetInt64("seed"))
		require.True(t, cfg.GetBool("debug"))
		require.Equal(t, "never", cfg.GetString("color"))
		require.Equal(t, 100, cfg.Get("int-size"))
	})
}

func TestConfig_Set(t *testing.T) {
	t.Parallel()

	cfg := New()
	require.False(t, cfg.IsSet("int-size"))
	cfg.Set("int-size", 5)
	require.True(t, cfg.IsSet("int-size"))
	require.Equal(t, 5, cfg.GetInt("int-size"))
}

func TestConfig_Unmarshal(t *testing.T) {
	t.Parallel()

	cfg := New()
	require.NoError(t, cfg.BindPFlags(newFlagSet(t, "--string-size", "7")))

	var args struct {
		IntSize    int    `mapstructure:"int-size"`
		StringSize int    `mapstructure:"string-size"`
		Seed       int64  `mapstructure:"seed"`
		Color      string `mapstructure:"color"`
	}
	require.NoError(t, cfg.Unmarshal(&args))
	require.Equal(t, 10_000_000, args.IntSize)
	require.Equal(t, 7, args.StringSize)
	require.Equal(t, int64(0), args.Seed)
	require.Equal(t, "auto", args.Color)
}

func TestShared(t *testing.T) {
	require.NotNil(t, Shared)
}
