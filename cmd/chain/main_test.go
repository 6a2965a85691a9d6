package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nobletooth/chain/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsAreRegisteredInConfig(t *testing.T) {
	unregisteredFlags := config.CollectUnregisteredFlags()
	if len(unregisteredFlags) != 0 {
		t.Fail()
		for _, flagErr := range unregisteredFlags {
			t.Error(flagErr)
		}
	}
}

var (
	singlyOutput = []string{
		"Singly Linked List: [1, 3, 5]",
		"Size: 3",
		"Element at index 0: 1",
		"Singly Linked List after insertion: [1, 3, 4, 5]",
		"Singly Linked List after removal: [1, 4, 5]",
		"Element 4 found at index: 1",
		"Popped front element: 1",
		"Singly Linked List after pop_front: [4, 5]",
		"Popped back element: 5",
		"Singly Linked List after pop_back: [4]",
	}
	doublyOutput = []string{"Doubly Linked List: [cherry, banana, apple]"}
)

func TestRun(t *testing.T) {
	for _, testCase := range []struct {
		demo     string
		expected []string
	}{
		{demo: "singly", expected: singlyOutput},
		{demo: "doubly", expected: doublyOutput},
		{demo: "all", expected: append(append(append([]string{}, singlyOutput...), ""), doublyOutput...)},
	} {
		t.Run(testCase.demo, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(&out, testCase.demo))
			assert.Equal(t, strings.Join(testCase.expected, "\n")+"\n", out.String())
		})
	}

	t.Run("unknown demo", func(t *testing.T) {
		var out bytes.Buffer
		assert.ErrorContains(t, run(&out, "circular"), "unknown demo")
		assert.Zero(t, out.Len())
	})
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriteError(t *testing.T) {
	assert.ErrorContains(t, run(failingWriter{}, "singly"), "closed")
	assert.ErrorContains(t, run(failingWriter{}, "all"), "closed")
}
