package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/conneroisu/bizconsult/internal/logging"
)

func newTestWatcher(t *testing.T, delay time.Duration) (*FileWatcher, string) {
	t.Helper()
	dir := t.TempDir()

	fw, err := NewFileWatcher(delay, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, fw.SetRoot(dir))
	return fw, dir
}

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.NotNil(t, watcher.logger)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)
}

func TestFileWatcherAddPath(t *testing.T) {
	watcher, dir := newTestWatcher(t, 100*time.Millisecond)
	defer watcher.Stop()

	assert.NoError(t, watcher.AddPath(dir))
	assert.Error(t, watcher.AddPath(filepath.Join(dir, "missing")))
	assert.Error(t, watcher.AddPath(filepath.Join(dir, "..")))
	assert.Error(t, watcher.AddPath(os.TempDir()))
}

func TestFileWatcherAddRecursive(t *testing.T) {
	watcher, dir := newTestWatcher(t, 100*time.Millisecond)
	defer watcher.Stop()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css", "vendor"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cache"), 0o755))

	require.NoError(t, watcher.AddRecursive(dir))

	watched := watcher.watcher.WatchList()
	assert.Contains(t, watched, dir)
	assert.Contains(t, watched, filepath.Join(dir, "css"))
	assert.Contains(t, watched, filepath.Join(dir, "css", "vendor"))
	assert.NotContains(t, watched, filepath.Join(dir, ".cache"))
}

func TestFileWatcherDebouncesBurst(t *testing.T) {
	defer goleak.VerifyNone(t)

	watcher, dir := newTestWatcher(t, 200*time.Millisecond)
	watcher.AddFilter(AssetFilter)
	watcher.AddFilter(NoHiddenFilter)

	var (
		mu      sync.Mutex
		batches [][]ChangeEvent
	)
	received := make(chan struct{}, 10)
	watcher.AddHandler(func(events []ChangeEvent) error {
		mu.Lock()
		batches = append(batches, events)
		mu.Unlock()
		received <- struct{}{}
		return nil
	})

	require.NoError(t, watcher.AddRecursive(dir))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	css := filepath.Join(dir, "site.css")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(css, []byte("body{}"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.css"), []byte("x"), 0o644))

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}

	require.NoError(t, watcher.Stop())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, batches, 1)

	var paths []string
	for _, e := range batches[0] {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{filepath.Join(dir, "app.js"), css}, paths)
}

func TestFileWatcherWatchesNewDirectories(t *testing.T) {
	defer goleak.VerifyNone(t)

	watcher, dir := newTestWatcher(t, 50*time.Millisecond)
	watcher.AddFilter(AssetFilter)

	received := make(chan []ChangeEvent, 10)
	watcher.AddHandler(func(events []ChangeEvent) error {
		received <- events
		return nil
	})

	require.NoError(t, watcher.AddRecursive(dir))
	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	sub := filepath.Join(dir, "img")
	require.NoError(t, os.Mkdir(sub, 0o755))

	assert.Eventually(t, func() bool {
		for _, w := range watcher.watcher.WatchList() {
			if w == sub {
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)
}

func TestFileWatcherStopIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	watcher, _ := newTestWatcher(t, 50*time.Millisecond)
	require.NoError(t, watcher.Start(context.Background()))

	assert.NoError(t, watcher.Stop())
	assert.NoError(t, watcher.Stop())
}

func TestFileWatcherStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	watcher, _ := newTestWatcher(t, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, watcher.Start(ctx))

	cancel()
	require.NoError(t, watcher.Stop())
}

func TestDebouncerFlush(t *testing.T) {
	d := &Debouncer{output: make(chan []ChangeEvent, 1)}
	d.pending = []ChangeEvent{
		{Type: EventTypeCreated, Path: "b.css"},
		{Type: EventTypeModified, Path: "a.js"},
		{Type: EventTypeDeleted, Path: "b.css"},
	}

	d.flush()

	batch := <-d.output
	require.Len(t, batch, 2)
	assert.Equal(t, "a.js", batch[0].Path)
	assert.Equal(t, "b.css", batch[1].Path)
	assert.Equal(t, EventTypeDeleted, batch[1].Type)
	assert.Empty(t, d.pending)

	d.flush()
	assert.Empty(t, d.output)
}

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter FileFilter
		path   string
		want   bool
	}{
		{"css asset", AssetFilter, "static/site.css", true},
		{"upper case ext", AssetFilter, "static/LOGO.PNG", true},
		{"go source", AssetFilter, "main.go", false},
		{"no ext", AssetFilter, "static/README", false},
		{"plain file", NoHiddenFilter, "static/site.css", true},
		{"dotfile", NoHiddenFilter, "static/.DS_Store", false},
		{"dot dir", NoHiddenFilter, "static/.cache/x.css", false},
		{"relative prefix", NoHiddenFilter, "./static/site.css", true},
		{"git dir", NoGitFilter, "static/.git/HEAD", false},
		{"outside git", NoGitFilter, "static/site.css", true},
		{"swap file", NoEditorTempFilter, "static/.site.css.swp", false},
		{"backup", NoEditorTempFilter, "static/site.css~", false},
		{"emacs lock", NoEditorTempFilter, "static/#site.css#", false},
		{"regular", NoEditorTempFilter, "static/site.css", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter(tt.path))
		})
	}
}
