package keyring_test

import (
	"sync"
	"testing"

	"github.com/UnknownOlympus/choprest/internal/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty pool", func(t *testing.T) {
		rotator, err := keyring.New(nil)

		require.Nil(t, rotator)
		require.ErrorIs(t, err, keyring.ErrEmptyPool)
	})

	t.Run("blank key", func(t *testing.T) {
		rotator, err := keyring.New([]string{"k1", "  "})

		require.Nil(t, rotator)
		require.ErrorIs(t, err, keyring.ErrEmptyPool)
		assert.ErrorContains(t, err, "key 1 is blank")
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		keys := []string{"k1", "k2"}
		rotator, err := keyring.New(keys)
		require.NoError(t, err)

		keys[0] = "changed"

		assert.Equal(t, "k1", rotator.Next())
		assert.Equal(t, 2, rotator.Size())
	})
}

func TestRotator_Next(t *testing.T) {
	t.Run("seven calls over three keys", func(t *testing.T) {
		rotator, err := keyring.New([]string{"k1", "k2", "k3"})
		require.NoError(t, err)

		got := make([]string, 0, 7)
		for range 7 {
			got = append(got, rotator.Next())
		}

		assert.Equal(t, []string{"k1", "k2", "k3", "k1", "k2", "k3", "k1"}, got)
		assert.Equal(t, "k2", rotator.Next())
	})

	t.Run("every window of pool size covers the pool", func(t *testing.T) {
		keys := []string{"a", "b", "c", "d", "e"}
		rotator, err := keyring.New(keys)
		require.NoError(t, err)

		seq := make([]string, 0, 50)
		for range 50 {
			seq = append(seq, rotator.Next())
		}

		for start := 0; start+len(keys) <= len(seq); start++ {
			assert.ElementsMatch(t, keys, seq[start:start+len(keys)], "window at %d", start)
		}
		for i := len(keys); i < len(seq); i++ {
			assert.Equal(t, seq[i-len(keys)], seq[i])
		}
	})

	t.Run("concurrent callers share the cursor", func(t *testing.T) {
		rotator, err := keyring.New([]string{"k1", "k2", "k3"})
		require.NoError(t, err)

		const workers, perWorker = 8, 300
		var (
			mu     sync.Mutex
			counts = map[string]int{}
			wg     sync.WaitGroup
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				local := map[string]int{}
				for range perWorker {
					local[rotator.Next()]++
				}
				mu.Lock()
				for k, v := range local {
					counts[k] += v
				}
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, workers*perWorker/3, counts["k1"])
		assert.Equal(t, workers*perWorker/3, counts["k2"])
		assert.Equal(t, workers*perWorker/3, counts["k3"])
	})
}

func TestRotator_Key(t *testing.T) {
	rotator, err := keyring.New([]string{"k1", "k2"})
	require.NoError(t, err)

	key, err := rotator.Key(1)
	require.NoError(t, err)
	assert.Equal(t, "k2", key)

	_, err = rotator.Key(2)
	require.ErrorIs(t, err, keyring.ErrIndexOutOfRange)

	_, err = rotator.Key(-1)
	require.ErrorIs(t, err, keyring.ErrIndexOutOfRange)

	assert.Equal(t, "k1", rotator.Next())
}
