package utils

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetTestFlag sets a command line flag to a specific value for the duration of the test.
func SetTestFlag(t testing.TB, name, value string) {
	t.Helper()
	SetTestFlagIn(t, flag.CommandLine, name, value)
}

// SetTestFlagIn sets a flag of the given `flagSet` for the duration of the test.
func SetTestFlagIn(t testing.TB, flagSet *flag.FlagSet, name, value string) {
	t.Helper()
	flagHolder := flagSet.Lookup(name)
	require.NotNil(t, flagHolder, "Flag %s not found", name)
	if flagHolder != nil { // Revert the flag value back to its original when the test is done.
		prevValue := flagHolder.Value.String()
		t.Cleanup(func() { require.NoError(t, flagSet.Set(name, prevValue)) })
	}
	require.NoError(t, flagSet.Set(name, value))
}
