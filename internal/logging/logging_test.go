package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureTemp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "sectionlist.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestErrorAppendsLines(t *testing.T) {
	path := configureTemp(t)
	assert.Equal(t, path, Path())

	Error(nil)
	Error(errors.New("first"))
	Errorf("second %d", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "first"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "second 2"), lines[1])
}

func TestTraceWritesJSONOnlyWhenEnabled(t *testing.T) {
	path := configureTemp(t)

	Trace("ignored", nil)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected no file while tracing is off")

	SetTraceEnabled(true)
	require.True(t, TraceEnabled())
	Trace("scroll.by", map[string]interface{}{"requested": 3})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry struct {
		Event   string         `json:"event"`
		Payload map[string]int `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "scroll.by", entry.Event)
	assert.Equal(t, 3, entry.Payload["requested"])
}

func TestConfigureEmptyFallsBack(t *testing.T) {
	Configure("  ")
	assert.Equal(t, defaultLogFile, Path())
}
