package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStorage struct{ err error }

func (b brokenStorage) Get(string) (string, error) { return "", b.err }
func (b brokenStorage) Set(string, string) error   { return b.err }

// recorder logs sink and storage calls in the order they happen.
type recorder struct {
	memoryStorage
	events []string
}

func (r *recorder) Apply(p Preference) { r.events = append(r.events, "apply:"+string(p)) }

func (r *recorder) Set(key, value string) error {
	r.events = append(r.events, "store:"+value)
	return r.memoryStorage.Set(key, value)
}

func newRecorder() *recorder {
	return &recorder{memoryStorage: memoryStorage{values: map[string]string{}}}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Preference
		wantOK bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{"", "", false},
		{"Dark", "", false},
		{" dark", "", false},
		{"auto", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitial_FallsBackToLight(t *testing.T) {
	tests := []struct {
		name    string
		storage Storage
	}{
		{"nil storage", nil},
		{"absent", newMemoryStorage()},
		{"unrecognized", func() Storage {
			m := newMemoryStorage()
			_ = m.Set(Key, "purple")
			return m
		}()},
		{"uppercase", func() Storage {
			m := newMemoryStorage()
			_ = m.Set(Key, "DARK")
			return m
		}()},
		{"storage error", brokenStorage{err: errors.New("quota exceeded")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Light, Initial(tt.storage))
		})
	}
}

func TestInitial_ReadsDark(t *testing.T) {
	m := newMemoryStorage()
	require.NoError(t, m.Set(Key, "dark"))
	assert.Equal(t, Dark, Initial(m))
}

func TestController_SetSurvivesReload(t *testing.T) {
	storage := newMemoryStorage()

	c := NewController(storage, nil)
	assert.Equal(t, Light, c.Current())
	require.NoError(t, c.Set(Dark))

	reloaded := NewController(storage, nil)
	assert.Equal(t, Dark, reloaded.Current())
	assert.Equal(t, Dark, Initial(storage))
}

func TestController_AppliesSinkBeforeStorage(t *testing.T) {
	r := newRecorder()
	c := NewController(r, r)
	require.NoError(t, c.Set(Dark))

	assert.Equal(t, []string{"apply:light", "apply:dark", "store:dark"}, r.events)
}

func TestController_SetIsIdempotent(t *testing.T) {
	once := newMemoryStorage()
	twice := newMemoryStorage()

	var onceApplied, twiceApplied Preference
	c1 := NewController(once, SinkFunc(func(p Preference) { onceApplied = p }))
	c2 := NewController(twice, SinkFunc(func(p Preference) { twiceApplied = p }))

	require.NoError(t, c1.Set(Dark))
	require.NoError(t, c2.Set(Dark))
	require.NoError(t, c2.Set(Dark))

	assert.Equal(t, c1.Current(), c2.Current())
	assert.Equal(t, onceApplied, twiceApplied)
	assert.Equal(t, once.values, twice.values)
}

func TestController_PersistFailureKeepsSessionTheme(t *testing.T) {
	var applied Preference
	c := NewController(brokenStorage{err: errors.New("private mode")}, SinkFunc(func(p Preference) { applied = p }))

	err := c.Set(Dark)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private mode")
	assert.Equal(t, Dark, c.Current())
	assert.Equal(t, Dark, applied)
}

func TestController_Toggle(t *testing.T) {
	c := NewController(newMemoryStorage(), nil)

	next, err := c.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, next)

	next, err = c.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, next)
	assert.Equal(t, Light, c.Current())
}

func TestController_RejectsUnknown(t *testing.T) {
	storage := newMemoryStorage()
	c := NewController(storage, nil)

	require.Error(t, c.Set("sepia"))
	assert.Equal(t, Light, c.Current())
	v, _ := storage.Get(Key)
	assert.Empty(t, v)
}
