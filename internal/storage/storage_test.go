package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns one instance of every storage implementation
func backends(t *testing.T) map[string]Storage {
	t.Helper()
	ctx := context.Background()

	sqliteStore, err := NewSQLite(ctx, ":memory:")
	require.NoError(t, err)

	fileStore, err := NewFile(filepath.Join(t.TempDir(), "records"))
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisStore := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), DefaultRedisPrefix)

	all := map[string]Storage{
		BackendSQLite: sqliteStore,
		BackendFile:   fileStore,
		BackendRedis:  redisStore,
		BackendMemory: NewMemory(),
	}
	t.Cleanup(func() {
		for _, s := range all {
			_ = s.Close()
		}
	})
	return all
}

func TestStorage_SaveLoadRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, DefaultKey, []byte(`{"boards":[]}`)))

			got, err := s.Load(ctx, DefaultKey)
			require.NoError(t, err)
			assert.JSONEq(t, `{"boards":[]}`, string(got))
		})
	}
}

func TestStorage_SaveOverwrites(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, "k", []byte("first")))
			require.NoError(t, s.Save(ctx, "k", []byte("second")))

			got, err := s.Load(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "second", string(got))
		})
	}
}

func TestStorage_LoadMissingIsErrNotFound(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(context.Background(), "missing")
			assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
		})
	}
}

func TestStorage_Delete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, "k", []byte("v")))
			require.NoError(t, s.Delete(ctx, "k"))
			require.NoError(t, s.Delete(ctx, "k"))

			_, err := s.Load(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStorage_EmptyKeyRejected(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.Save(context.Background(), "", []byte("v")), ErrEmptyKey)
		})
	}
}

func TestRedis_UsesPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	s := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
	defer s.Close()
	require.NoError(t, s.Save(context.Background(), DefaultKey, []byte("v")))

	got, err := mr.Get("test:" + DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestDialRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	ctx := context.Background()
	s, err := DialRedis(ctx, mr.Addr(), "dial:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Save(ctx, DefaultKey, []byte("v")))
	got, err := mr.Get("dial:" + DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestDialRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := DialRedis(ctx, addr, DefaultRedisPrefix)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to reach redis at "+addr)
}

func TestFile_RejectsPathKeys(t *testing.T) {
	s, err := NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape", "a/b", `a\b`, ".."} {
		assert.Error(t, s.Save(context.Background(), key, []byte("v")), key)
	}
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, DefaultKey, []byte("v")))

	second, err := NewFile(dir)
	require.NoError(t, err)
	got, err := second.Load(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files should not be left behind")
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(ctx, Options{Backend: "FILE", DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open(ctx, Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	s, err = Open(ctx, Options{Backend: BackendRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &Redis{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Backend: "s3"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
