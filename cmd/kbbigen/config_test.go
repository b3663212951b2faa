package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "kbbiwords/cmd/kbbigen"
	"kbbiwords/fs"
	kbbihttp "kbbiwords/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kbbigen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses all fields", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "url: http://example.com/words.txt\noutput: words.json\ntimeout_sec: 5\n")

		cfg, err := main.LoadFileConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "http://example.com/words.txt", cfg.URL)
		assert.Equal(t, "words.json", cfg.Output)
		assert.Equal(t, 5, cfg.TimeoutSec)
	})

	t.Run("rejects negative timeout", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "timeout_sec: -1\n")

		_, err := main.LoadFileConfig(path)

		assert.ErrorIs(t, err, main.ErrInvalidConfigTimeout)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "url: [unclosed\n")

		_, err := main.LoadFileConfig(path)

		assert.Error(t, err)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})
}

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		t.Parallel()

		s, err := main.ResolveSettings(&main.CLI{MinLen: 4, MaxLen: 6})

		require.NoError(t, err)
		assert.Equal(t, main.DefaultURL, s.URL)
		assert.Equal(t, fs.DefaultFilename, s.Output)
		assert.Equal(t, kbbihttp.DefaultFetchTimeout, s.Timeout)
		assert.Equal(t, 4, s.MinLen)
		assert.Equal(t, 6, s.MaxLen)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "url: http://example.com/words.txt\noutput: words.json\ntimeout_sec: 5\n")

		s, err := main.ResolveSettings(&main.CLI{Config: path, MinLen: 4, MaxLen: 6})

		require.NoError(t, err)
		assert.Equal(t, "http://example.com/words.txt", s.URL)
		assert.Equal(t, "words.json", s.Output)
		assert.Equal(t, 5*time.Second, s.Timeout)
	})

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "url: http://example.com/words.txt\noutput: words.json\n")

		s, err := main.ResolveSettings(&main.CLI{
			Config:  path,
			URL:     "http://other.example.com/list.txt",
			Output:  "other.json",
			Timeout: 7,
			MinLen:  4,
			MaxLen:  6,
		})

		require.NoError(t, err)
		assert.Equal(t, "http://other.example.com/list.txt", s.URL)
		assert.Equal(t, "other.json", s.Output)
		assert.Equal(t, 7*time.Second, s.Timeout)
	})

	t.Run("rejects min length below one", func(t *testing.T) {
		t.Parallel()

		_, err := main.ResolveSettings(&main.CLI{MinLen: 0, MaxLen: 6})

		assert.ErrorIs(t, err, main.ErrInvalidMinLen)
	})

	t.Run("rejects min length above max length", func(t *testing.T) {
		t.Parallel()

		_, err := main.ResolveSettings(&main.CLI{MinLen: 7, MaxLen: 6})

		assert.ErrorIs(t, err, main.ErrMinExceedsMax)
	})
}
