package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func newController(t *testing.T, screens ...string) (*Controller, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	c, err := NewController(screens, notifier)
	require.NoError(t, err)
	return c, notifier
}

func TestControllerStartsOnHomeScreen(t *testing.T) {
	c, _ := newController(t, "home", "settings")
	assert.Equal(t, "home", c.Current())
	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, StateRunning, c.State())
}

func TestGoToKnownScreen(t *testing.T) {
	c, notifier := newController(t, "home", "settings")

	c.GoTo("settings")
	assert.Equal(t, "settings", c.Current())
	assert.Equal(t, 1, c.Depth())
	assert.Empty(t, notifier.messages)
}

func TestGoToUnknownScreen(t *testing.T) {
	c, notifier := newController(t, "home", "settings")

	c.GoTo("missing")
	assert.Equal(t, "home", c.Current())
	assert.Equal(t, 0, c.Depth())
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "missing")
	assert.Equal(t, StateRunning, c.State())
}

func TestBackReturnsToPreviousScreen(t *testing.T) {
	c, _ := newController(t, "home", "settings", "about")

	c.GoTo("settings")
	c.GoTo("about")
	require.Equal(t, 2, c.Depth())

	c.Back()
	assert.Equal(t, "settings", c.Current())
	assert.Equal(t, 1, c.Depth())

	c.Back()
	assert.Equal(t, "home", c.Current())
	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, StateRunning, c.State())
}

func TestBackOnEmptyBackstackExits(t *testing.T) {
	c, _ := newController(t, "home")

	c.Back()
	assert.Equal(t, StateExited, c.State())

	// transitions after exit are ignored
	c.GoTo("home")
	assert.Equal(t, StateExited, c.State())
	assert.Equal(t, 0, c.Depth())
}

func TestGoToSameScreenPushes(t *testing.T) {
	c, _ := newController(t, "home")

	c.GoTo("home")
	assert.Equal(t, "home", c.Current())
	assert.Equal(t, 1, c.Depth())

	c.Back()
	assert.Equal(t, "home", c.Current())
	assert.Equal(t, 0, c.Depth())
}

func TestNewControllerRequiresScreens(t *testing.T) {
	_, err := NewController(nil, nil)
	require.Error(t, err)
}

func TestLoopRunsCallbacksInSubmissionOrder(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		loop.Post(func() { got = append(got, i) })
	}
	loop.Do(func() {})

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopSerializesNavigation(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	c, _ := newController(t, "home", "details")

	// background completions marshal onto the loop before navigating
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Do(func() {
				c.GoTo("details")
				c.Back()
			})
		}()
	}
	wg.Wait()

	loop.Do(func() {
		assert.Equal(t, "home", c.Current())
		assert.Equal(t, 0, c.Depth())
	})
}
