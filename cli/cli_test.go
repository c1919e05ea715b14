package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/pak-savior/pak"
	"github.com/thanhnguyen2187/pak-savior/pak/paktest"
)

func createArchive(t *testing.T, files ...paktest.File) string {
	return paktest.WriteFile(t, paktest.Build(files...))
}

var sampleFiles = []paktest.File{
	{Name: "maps/start.bsp", Data: bytes.Repeat([]byte{1}, 2048)},
	{Name: "readme.txt", Data: []byte("hello")},
}

func TestRunList(t *testing.T) {
	path := createArchive(t, sampleFiles...)
	out := bytes.Buffer{}

	err := Run(Args{List: &ListCmd{Archive: path}}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2.0 kB")
	assert.True(t, strings.HasSuffix(lines[0], "maps/start.bsp"))
	assert.Contains(t, lines[1], "5 B")
}

func TestRunList_JSONDigest(t *testing.T) {
	path := createArchive(t, sampleFiles...)

	for _, algorithm := range []string{DigestSHA256, DigestBLAKE3} {
		out := bytes.Buffer{}
		err := Run(Args{Mmap: true, List: &ListCmd{Archive: path, JSON: true, Digest: algorithm}}, &out)
		require.NoError(t, err)

		listed := []ListedEntry{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &listed))
		require.Len(t, listed, 2)
		assert.Equal(t, "readme.txt", listed[1].Name)
		assert.Equal(t, int64(5), listed[1].Size)

		expected, err := Digest(algorithm, []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, expected, listed[1].Digest)
		assert.True(t, strings.HasPrefix(listed[1].Digest, algorithm+":"))
	}

	err := Run(Args{List: &ListCmd{Archive: path, Digest: "md5"}}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	sum, err := Digest(DigestSHA256, []byte{})
	assert.NoError(t, err)
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", sum)
}

func TestRunExtract(t *testing.T) {
	files := append(sampleFiles, paktest.File{Name: "readme.txt", Data: []byte("second")})
	path := createArchive(t, files...)
	to := t.TempDir()

	err := Run(Args{Extract: &ExtractCmd{Archive: path, To: to}}, &bytes.Buffer{})
	require.NoError(t, err)

	bs, err := os.ReadFile(filepath.Join(to, "maps", "start.bsp"))
	require.NoError(t, err)
	assert.Equal(t, sampleFiles[0].Data, bs)
	bs, err = os.ReadFile(filepath.Join(to, "readme.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), bs)
	bs, err = os.ReadFile(filepath.Join(to, "readme.txt~2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), bs)

	err = Run(Args{Extract: &ExtractCmd{Archive: path, To: to, Index: []int{1}}}, &bytes.Buffer{})
	assert.Error(t, err)
	err = Run(Args{Extract: &ExtractCmd{Archive: path, To: to, Index: []int{1}, Force: true}}, &bytes.Buffer{})
	assert.NoError(t, err)

	err = Run(Args{Extract: &ExtractCmd{Archive: path, To: to, Index: []int{7}, Force: true}}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, pak.ErrIndex))
}

func TestEntryPath(t *testing.T) {
	path, err := EntryPath("out", "maps/e1m1.bsp")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "maps", "e1m1.bsp"), path)

	for _, name := range []string{"", "../escape", "/etc/passwd", "maps/../../escape"} {
		_, err := EntryPath("out", name)
		assert.Error(t, err, name)
	}
}

func TestRunCat(t *testing.T) {
	path := createArchive(t, sampleFiles...)
	out := bytes.Buffer{}

	err := Run(Args{Cat: &CatCmd{Archive: path, Index: 1}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestRun_Errors(t *testing.T) {
	err := Run(Args{}, &bytes.Buffer{})
	assert.Error(t, err)

	broken := paktest.WriteFile(t, []byte("definitely not a pak"))
	err = Run(Args{List: &ListCmd{Archive: broken}}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, pak.ErrBadMagic))

	path := createArchive(t, sampleFiles...)
	err = Run(Args{Charmap: "ebcdic", List: &ListCmd{Archive: path}}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLookupCharmap(t *testing.T) {
	cm, err := LookupCharmap("")
	assert.NoError(t, err)
	assert.Nil(t, cm)

	cm, err = LookupCharmap("Windows-1252")
	assert.NoError(t, err)
	assert.NotNil(t, cm)
}
