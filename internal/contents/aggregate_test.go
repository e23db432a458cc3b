package contents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFiles(t *testing.T) {
	text := strings.Join([]string{
		"/bin/a   pkgX,pkgY",
		"/bin/b   pkgX",
		"/bin/c   pkgZ",
	}, "\n") + "\n"

	counts, err := CountFiles(text)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pkgX": 2, "pkgY": 1, "pkgZ": 1}, counts)
}

func TestCountFilesIdempotent(t *testing.T) {
	text := "/bin/a   pkgX,pkgY\n/bin/b   pkgX\n"

	first, err := CountFiles(text)
	require.NoError(t, err)
	second, err := CountFiles(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCountFilesSkipsHeader(t *testing.T) {
	text := "FILE   LOCATION\n/bin/a   pkgX\n"

	counts, err := CountFiles(text)
	require.NoError(t, err)
	assert.NotContains(t, counts, "LOCATION")
	assert.Equal(t, map[string]int{"pkgX": 1}, counts)
}

func TestCountFilesHeaderOnlyOnFirstLine(t *testing.T) {
	// The same tokens past line 0 are plain data.
	text := "/bin/a   pkgX\nFILE   LOCATION\n"

	counts, err := CountFiles(text)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pkgX": 1, "LOCATION": 1}, counts)
}

func TestCountFilesMalformedLine(t *testing.T) {
	text := "/bin/a   pkgX\nsingletoken\n/bin/c   pkgZ\n"

	_, err := CountFiles(text)
	require.Error(t, err)

	var malformed *MalformedLineError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "singletoken", malformed.Line)
}

func TestCountFilesEmptyInput(t *testing.T) {
	counts, err := CountFiles("")
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCountFilesSharedFileCountsEveryPackage(t *testing.T) {
	counts, err := CountFiles("usr/lib/shared.so   a,b,c\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, counts)
}
