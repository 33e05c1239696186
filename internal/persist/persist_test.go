package persist

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWritesReads(t *testing.T) {
	var buf bytes.Buffer
	w := NewWrites(&buf)
	w.B(7)
	w.Bool(true)
	w.S(-12)
	w.I(123456)
	w.L(-9e15)
	w.F(0.999)
	w.Str("thorium-reactor")
	w.Bytes([]byte{1, 2, 3})
	require.NoError(t, w.Err())

	r := NewReads(bytes.NewReader(buf.Bytes()))
	assert.Equal(t, byte(7), r.B())
	assert.True(t, r.Bool())
	assert.Equal(t, int16(-12), r.S())
	assert.Equal(t, int32(123456), r.I())
	assert.Equal(t, int64(-9e15), r.L())
	assert.Equal(t, float32(0.999), r.F())
	assert.Equal(t, "thorium-reactor", r.Str())
	assert.Equal(t, []byte{1, 2, 3}, r.Bytes())
	require.NoError(t, r.Err())

	assert.Equal(t, float32(0), r.F(), "reads past the end return zero")
	assert.Error(t, r.Err())
}

func TestFloatIsBigEndian(t *testing.T) {
	var buf bytes.Buffer
	NewWrites(&buf).F(1)
	bits := math.Float32bits(1)
	assert.Equal(t, []byte{byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits)}, buf.Bytes())
}

func TestSaveFileRoundTrip(t *testing.T) {
	save := &SaveFile{
		Tick: 3600,
		Seed: 42,
		Records: []Record{
			{DefID: "thorium-reactor", Q: 1, R: -1, Payload: []byte{9, 9}},
			{DefID: "thorium-wall", Q: 0, R: 2, Payload: []byte{}},
		},
	}
	data, err := save.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Revision, got.Revision)
	save.Revision = Revision
	if diff := cmp.Diff(save, got); diff != "" {
		t.Errorf("save mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode([]byte("nope"))
	assert.ErrorIs(t, err, ErrBadMagic)

	data, err := (&SaveFile{}).Encode()
	require.NoError(t, err)
	data[4] = Revision + 1
	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrUnknownRevision)

	data[4] = Revision
	_, err = Decode(data[:len(data)-2])
	assert.Error(t, err, "truncated")
}

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := OpenStore(context.Background(), path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveLoadList(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, MemoryPath)

	first := &SaveFile{Tick: 10, Records: []Record{{DefID: "thorium-reactor", Payload: []byte{1}}}}
	id1, err := store.Save(ctx, "alpha", first, Stats{Overheats: 1})
	require.NoError(t, err)
	id2, err := store.Save(ctx, "beta", &SaveFile{Tick: 20}, Stats{Overheats: 2, Explosions: 1})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	got, info, err := store.Load(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "alpha", info.Name)
	assert.Equal(t, int64(10), got.Tick)
	assert.Equal(t, Stats{Overheats: 1}, info.Stats)
	require.Len(t, got.Records, 1)
	assert.Equal(t, []byte{1}, got.Records[0].Payload)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id2, list[0].ID, "newest first")
	assert.Equal(t, Stats{Overheats: 2, Explosions: 1}, list[0].Stats)
	assert.Positive(t, list[1].Size)

	require.NoError(t, store.Delete(ctx, id1))
	_, _, err = store.Load(ctx, id1)
	assert.ErrorIs(t, err, ErrSaveNotFound)
	assert.ErrorIs(t, store.Delete(ctx, id1), ErrSaveNotFound)
}

func TestStoreReopensFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "saves.db")

	store, err := OpenStore(ctx, path, zap.NewNop())
	require.NoError(t, err)
	id, err := store.Save(ctx, "persisted", &SaveFile{Tick: 5}, Stats{})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := openTestStore(t, path)
	_, info, err := reopened.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Tick)
}
