package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/sectionlist/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallFixture = "../fixture/testdata/small.yaml"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "app-test")
	if err == nil {
		logging.Configure(filepath.Join(dir, "sectionlist.log"))
	}
	code := m.Run()
	if err == nil {
		os.RemoveAll(dir)
	}
	os.Exit(code)
}

func dump(t *testing.T, cfg Config, opts DumpOptions) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Dump(cfg, &buf, opts))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestDumpFromTop(t *testing.T) {
	lines := dump(t, Config{FixturePath: smallFixture, Width: 20, Height: 6}, DumpOptions{Position: -1})
	assert.Equal(t, []string{
		" Fruit",
		" apple",
		" apricot",
		" banana",
		" Veg   carrot celery",
		"       leek   pea",
	}, lines)
}

func TestDumpAtPosition(t *testing.T) {
	lines := dump(t, Config{FixturePath: smallFixture, Width: 20, Height: 3}, DumpOptions{Position: 4})
	assert.Equal(t, []string{
		" Veg   carrot celery",
		"       leek   pea",
		" Empty",
	}, lines)
}

func TestDumpChildren(t *testing.T) {
	lines := dump(t, Config{FixturePath: smallFixture, Width: 20, Height: 2}, DumpOptions{Position: -1, Children: true})
	require.Len(t, lines, 6)
	assert.Equal(t, []string{" Fruit", " apple", ""}, lines[:3])
	assert.Equal(t, "POS  KIND    LEFT  TOP  RIGHT  BOTTOM  TEXT", lines[3])
	assert.Contains(t, lines[4], "header")
	assert.True(t, strings.HasSuffix(lines[5], "apple"), lines[5])
}

func TestDumpDefaultsAndErrors(t *testing.T) {
	lines := dump(t, Config{}, DumpOptions{Position: -1})
	assert.Len(t, lines, dumpHeight)

	var buf bytes.Buffer
	err := Dump(Config{FixturePath: filepath.Join(t.TempDir(), "missing.yaml")}, &buf, DumpOptions{Position: -1})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
