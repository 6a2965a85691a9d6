package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/nobletooth/chain/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFlagSet returns a flag set holding the flags of the config schema with their defaults.
func newTestFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.String("demo", "all", "")
	flagSet.String("log_level", "info", "")
	flagSet.String("log_handler_type", "json", "")
	return flagSet
}

// writeConfigFile writes `content` into a config file inside a temporary directory and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txtpb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// assertFlagValue checks the current value of the flag called `name`.
func assertFlagValue(t *testing.T, flagSet *flag.FlagSet, name, expected string) {
	t.Helper()
	flagHolder := flagSet.Lookup(name)
	require.NotNil(t, flagHolder, "Flag %s not found", name)
	assert.Equal(t, expected, flagHolder.Value.String(), "Flag %s value mismatch", name)
}

func TestLoadFile(t *testing.T) {
	t.Run("nested and enum fields", func(t *testing.T) {
		flagSet := newTestFlagSet()
		path := writeConfigFile(t, `
			demo: "singly"
			logging {
				log_level: "debug"
				log_handler_type: text
			}`)
		require.NoError(t, LoadFile(flagSet, path))
		assertFlagValue(t, flagSet, "demo", "singly")
		assertFlagValue(t, flagSet, "log_level", "debug")
		assertFlagValue(t, flagSet, "log_handler_type", "text")
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		flagSet := newTestFlagSet()
		require.NoError(t, LoadFile(flagSet, writeConfigFile(t, `demo: "doubly"`)))
		assertFlagValue(t, flagSet, "demo", "doubly")
		assertFlagValue(t, flagSet, "log_level", "info")
		assertFlagValue(t, flagSet, "log_handler_type", "json")
	})

	t.Run("command line wins over config", func(t *testing.T) {
		flagSet := newTestFlagSet()
		utils.SetTestFlagIn(t, flagSet, "demo", "doubly")
		require.NoError(t, LoadFile(flagSet, writeConfigFile(t, `demo: "singly" logging { log_level: "warn" }`)))
		assertFlagValue(t, flagSet, "demo", "doubly")
		assertFlagValue(t, flagSet, "log_level", "warn")
	})

	t.Run("missing file", func(t *testing.T) {
		flagSet := newTestFlagSet()
		require.NoError(t, LoadFile(flagSet, filepath.Join(t.TempDir(), "absent.txtpb")))
		require.NoError(t, LoadFile(flagSet, ""))
		assertFlagValue(t, flagSet, "demo", "all")
	})

	t.Run("invalid text", func(t *testing.T) {
		flagSet := newTestFlagSet()
		assert.Error(t, LoadFile(flagSet, writeConfigFile(t, `demo: `)))
		assert.Error(t, LoadFile(flagSet, writeConfigFile(t, `unknown_field: 1`)))
		assert.Error(t, LoadFile(flagSet, writeConfigFile(t, `logging { log_handler_type: xml }`)))
		assertFlagValue(t, flagSet, "demo", "all")
	})

	t.Run("flag missing from flag set", func(t *testing.T) {
		flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
		assert.Error(t, LoadFile(flagSet, writeConfigFile(t, `demo: "singly"`)))
	})
}

func TestGetDefinedFlags(t *testing.T) {
	md, err := configSchema()
	require.NoError(t, err)
	definedFlags, err := getDefinedFlags(md)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"demo": {}, "log_level": {}, "log_handler_type": {}}, definedFlags)
}

func TestCollectUnregisteredFlags(t *testing.T) {
	flagSet := newTestFlagSet()
	flagSet.String("config_file", "", "") // Skipped on purpose.
	flagSet.Bool("test.v", false, "")     // Test flags are skipped.
	flagSet.Int("max_nodes", 0, "")       // Not in the config.
	errs := collectUnregisteredFlags(flagSet)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "max_nodes")
}
