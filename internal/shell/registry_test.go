package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	name     string
	markup   string
	renders  int
	inits    int
	destroys int
	fail     error
}

func (f *fakeModule) Name() string  { return f.name }
func (f *fakeModule) Title() string { return f.name }
func (f *fakeModule) Init()         { f.inits++ }
func (f *fakeModule) Destroy()      { f.destroys++ }

func (f *fakeModule) Render() (string, error) {
	f.renders++
	if f.fail != nil {
		return "", f.fail
	}
	return f.markup, nil
}

func TestRegistry_ActivateDestroysPrevious(t *testing.T) {
	sangha := &fakeModule{name: "sangha", markup: "<div>sangha</div>"}
	tasks := &fakeModule{name: "tasks", markup: "<div>tasks</div>"}

	r := NewRegistry()
	require.NoError(t, r.Register(sangha))
	require.NoError(t, r.Register(tasks))

	markup, err := r.Activate("sangha")
	require.NoError(t, err)
	assert.Equal(t, "<div>sangha</div>", markup)
	assert.Equal(t, "sangha", r.Active())
	assert.Equal(t, 1, sangha.inits)

	markup, err = r.Activate("tasks")
	require.NoError(t, err)
	assert.Equal(t, "<div>tasks</div>", markup)
	assert.Equal(t, "tasks", r.Active())
	// Switching tears the previous module down before the new one comes up
	assert.Equal(t, 1, sangha.destroys)
	assert.Equal(t, 1, tasks.inits)
	assert.Equal(t, 0, tasks.destroys)
}

func TestRegistry_ReactivateSameModule(t *testing.T) {
	sangha := &fakeModule{name: "sangha", markup: "<div>sangha</div>"}

	r := NewRegistry()
	require.NoError(t, r.Register(sangha))

	_, err := r.Activate("sangha")
	require.NoError(t, err)
	_, err = r.Activate("sangha")
	require.NoError(t, err)

	// A re-activation re-renders without a destroy/init cycle
	assert.Equal(t, 2, sangha.renders)
	assert.Equal(t, 1, sangha.inits)
	assert.Equal(t, 0, sangha.destroys)
}

func TestRegistry_UnknownModule(t *testing.T) {
	r := NewRegistry()

	_, err := r.Activate("nonexistent")

	assert.ErrorIs(t, err, ErrUnknownModule)
	assert.Equal(t, "", r.Active())
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeModule{name: "sangha"}))

	err := r.Register(&fakeModule{name: "sangha"})

	assert.ErrorIs(t, err, ErrDuplicateModule)
}

func TestRegistry_RenderFailureLeavesPreviousDestroyed(t *testing.T) {
	sangha := &fakeModule{name: "sangha", markup: "<div>sangha</div>"}
	broken := &fakeModule{name: "broken", fail: errors.New("fetch failed")}

	r := NewRegistry()
	require.NoError(t, r.Register(sangha))
	require.NoError(t, r.Register(broken))

	_, err := r.Activate("sangha")
	require.NoError(t, err)

	_, err = r.Activate("broken")
	require.Error(t, err)
	assert.Equal(t, 1, sangha.destroys)
	// The failed module never got initialized
	assert.Equal(t, 0, broken.inits)
	assert.Equal(t, "", r.Active())
}

func TestRegistry_Deactivate(t *testing.T) {
	sangha := &fakeModule{name: "sangha", markup: "<div>sangha</div>"}

	r := NewRegistry()
	require.NoError(t, r.Register(sangha))
	_, err := r.Activate("sangha")
	require.NoError(t, err)

	r.Deactivate()

	assert.Equal(t, 1, sangha.destroys)
	assert.Equal(t, "", r.Active())

	// Deactivating with nothing active is a no-op
	r.Deactivate()
	assert.Equal(t, 1, sangha.destroys)
}

func TestRegistry_NamesInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeModule{name: "sangha"}))
	require.NoError(t, r.Register(&fakeModule{name: "tasks"}))
	require.NoError(t, r.Register(&fakeModule{name: "seva"}))

	assert.Equal(t, []string{"sangha", "tasks", "seva"}, r.Names())
}
