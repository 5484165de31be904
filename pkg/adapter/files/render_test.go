package files

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// unknownAction is an action type unknown to the adapter.
type unknownAction struct {
	actions.Create
}

// expectPanic verifies that a function panics.
func expectPanic(t *testing.T, description string, function func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error(description, "did not panic")
		}
	}()
	function()
}

// TestRender tests action rendering.
func TestRender(t *testing.T) {
	// Set up paths.
	separator := string(os.PathSeparator)
	root := filepath.Join(t.TempDir(), "root")
	home := filepath.Join(root, "home")
	work := filepath.Join(home, "work")
	adapter, _, _ := newTestAdapter(t, Options{WorkingDirectory: work, HomeDirectory: home})
	workFile := fileLocation(filepath.Join(work, "file"))
	workDirectory := directoryLocation(filepath.Join(work, "sub"))
	homeFile := fileLocation(filepath.Join(home, "notes"))
	outside := filepath.Join(root, "other")

	// Define test cases.
	testCases := []struct {
		action   actions.Action
		expected string
	}{
		{actions.Create{Location: workFile, EntryType: cache.EntryTypeFile}, "CREATE file"},
		{actions.Create{Location: workDirectory, EntryType: cache.EntryTypeDirectory}, "CREATE sub" + separator},
		{
			actions.Create{Location: workFile, EntryType: cache.EntryTypeLink, LinkTarget: "../elsewhere"},
			"CREATE file -> ../elsewhere",
		},
		{actions.Delete{Location: homeFile, EntryType: cache.EntryTypeFile}, "DELETE ~" + separator + "notes"},
		{actions.Delete{Location: fileLocation(outside), EntryType: cache.EntryTypeFile}, "DELETE " + outside},
		{
			actions.Move{Source: workFile, Destination: homeFile, EntryType: cache.EntryTypeFile},
			"  MOVE file -> ~" + separator + "notes",
		},
		{
			actions.Copy{Source: workDirectory, Destination: directoryLocation(outside), EntryType: cache.EntryTypeDirectory},
			fmt.Sprintf("  COPY sub%s -> %s%s", separator, outside, separator),
		},
		{actions.Chmod{Location: workFile, Value: 0755, EntryType: cache.EntryTypeFile}, "CHMOD 755 file"},
		{actions.Chmod{Location: workFile, Value: 07, EntryType: cache.EntryTypeFile}, "CHMOD 007 file"},
		{actions.Chmod{Location: workFile, Value: 04755, EntryType: cache.EntryTypeFile}, "CHMOD 4755 file"},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if rendered := adapter.Render(testCase.action); rendered != testCase.expected {
			t.Errorf("%s action rendered as %q, expected %q", testCase.action.Kind(), rendered, testCase.expected)
		}
	}
}

// TestRenderPanics verifies that rendering panics on actions that callers
// must exclude.
func TestRenderPanics(t *testing.T) {
	adapter, _, _ := newTestAdapter(t, Options{})
	source := location.Location{Scheme: Scheme, Path: "/a"}
	foreign := location.Location{Scheme: "s3", Path: "/b"}
	expectPanic(t, "cross-adapter move", func() {
		adapter.Render(actions.Move{Source: source, Destination: foreign})
	})
	expectPanic(t, "cross-adapter copy", func() {
		adapter.Render(actions.Copy{Source: source, Destination: foreign})
	})
	expectPanic(t, "unknown action", func() {
		adapter.Render(unknownAction{})
	})
}
