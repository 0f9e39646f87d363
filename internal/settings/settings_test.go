package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct{ err error }

func (b failingBackend) LoadItem(string) ([]byte, error) { return nil, b.err }
func (b failingBackend) SaveItem(string, []byte) error   { return b.err }

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	s := NewStore(NewMemory(), nil)
	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Audio: true}, v)
}

func TestSaveLoad(t *testing.T) {
	mem := NewMemory()
	s := NewStore(mem, nil)
	require.NoError(t, s.Save(Settings{Audio: false, Debug: true}))

	raw, err := mem.LoadItem(itemKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"audio":false,"debug":true}`, string(raw))

	v, err := NewStore(mem, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Audio: false, Debug: true}, v)
}

func TestMissingFieldsKeepDefaults(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.SaveItem(itemKey, []byte(`{"debug":true}`)))

	v, err := NewStore(mem, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Audio: true, Debug: true}, v)
}

func TestCorruptData(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.SaveItem(itemKey, []byte(`{not json`)))

	v, err := NewStore(mem, nil).Load()
	require.Error(t, err)
	assert.Equal(t, Defaults(), v)
}

func TestUpdate(t *testing.T) {
	s := NewStore(NewMemory(), nil)
	v, err := s.Update(func(v *Settings) { v.Audio = !v.Audio })
	require.NoError(t, err)
	assert.False(t, v.Audio)

	v, err = s.Update(func(v *Settings) { v.Debug = true })
	require.NoError(t, err)
	assert.Equal(t, Settings{Audio: false, Debug: true}, v)
}

func TestBackendErrorsWrapped(t *testing.T) {
	cause := errors.New("disk full")
	s := NewStore(failingBackend{err: cause}, nil)

	_, err := s.Load()
	assert.ErrorIs(t, err, cause)

	err = s.Save(Defaults())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "settings: cannot save")
}

func TestVolumeRoundTrip(t *testing.T) {
	mem := NewMemory()
	s := NewStore(mem, nil)
	require.NoError(t, s.Save(Settings{Audio: true, Volume: -1.5}))

	raw, err := mem.LoadItem(itemKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"audio":true,"debug":false,"volume":-1.5}`, string(raw))

	v, err := s.Load()
	require.NoError(t, err)
	assert.InDelta(t, -1.5, v.MasterVolume(), 1e-9)
}

func TestMasterVolumeClamped(t *testing.T) {
	assert.Equal(t, 0.0, Defaults().MasterVolume())
	assert.Equal(t, float64(MinVolume), Settings{Volume: -40}.MasterVolume())
	assert.Equal(t, float64(MaxVolume), Settings{Volume: 9}.MasterVolume())
}
