package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/ostafen/magicid/internal/signature"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	files := map[string][]byte{
		"a.png":   {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52},
		"app.exe": {0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00},
		"doc.pdf": []byte("%PDF-1.7\n%âãÏÓ\n"),
		"notes":   []byte("plain text"),
		"old.rar": {0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00, 0xCF, 0x90, 0x73},
	}
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fsys, name, data, 0o644))
	}
	return fsys
}

func runCommand(t *testing.T, fsys afero.Fs, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := DefineRootCommand(fsys)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := runCommand(t, newTestFs(t), "--list")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "list", []byte(out))
}

func TestListIgnoresFiles(t *testing.T) {
	// An empty filesystem would report every path as missing if it were probed.
	out, _, err := runCommand(t, afero.NewMemMapFs(), "-l", "does-not-exist")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, signature.Builtin().Len())
	require.NotContains(t, out, "File not found")
}

func TestListWithAdditions(t *testing.T) {
	out, _, err := runCommand(t, newTestFs(t), "--list",
		"--add", "4D5A:Custom MZ Variant",
		"--add", "cafebabe:Java class, compiled",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, signature.Builtin().Len()+1)
	require.Contains(t, lines, "4D5A → Custom MZ Variant")
	require.Contains(t, lines, "CAFEBABE → Java class, compiled")
	require.NotContains(t, out, "Windows PE executable (MZ)")
}

func TestDetectText(t *testing.T) {
	out, _, err := runCommand(t, newTestFs(t), "a.png", "missing.txt", "notes", "old.rar", "doc.pdf")
	require.NoError(t, err)
	require.Equal(t, `a.png: PNG image
missing.txt: File not found
notes: Unknown
old.rar: RAR archive (v1.5)
doc.pdf: PDF document
`, out)
}

func TestDetectJSON(t *testing.T) {
	out, _, err := runCommand(t, newTestFs(t), "-j", "a.png", "missing.txt")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "detect_json", []byte(out))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, map[string]string{
		"a.png":       "PNG image",
		"missing.txt": "File not found",
	}, decoded)
}

func TestDetectCustomOverride(t *testing.T) {
	out, _, err := runCommand(t, newTestFs(t), "--add", "4D5A:Custom MZ Variant", "app.exe")
	require.NoError(t, err)
	require.Equal(t, "app.exe: Custom MZ Variant\n", out)
}

func TestDetectWorkersMatchSequential(t *testing.T) {
	fsys := newTestFs(t)
	args := []string{"notes", "a.png", "app.exe", "missing", "old.rar", "doc.pdf", "a.png"}

	sequential, _, err := runCommand(t, fsys, append([]string{"--json"}, args...)...)
	require.NoError(t, err)

	parallel, _, err := runCommand(t, fsys, append([]string{"--json", "--workers", "4"}, args...)...)
	require.NoError(t, err)
	require.Equal(t, sequential, parallel)
}

func TestDetectRealFiles(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/image.gif"
	require.NoError(t, os.WriteFile(path, []byte("GIF87a\x01\x00\x01\x00"), 0o644))

	out, _, err := runCommand(t, afero.NewOsFs(), path, dir+"/nope")
	require.NoError(t, err)
	require.Equal(t, path+": GIF image (GIF87a)\n"+dir+"/nope: File not found\n", out)
}

func TestInvalidAddition(t *testing.T) {
	out, errOut, err := runCommand(t, newTestFs(t), "--add", "zz:Bad", "a.png")

	var formatErr *signature.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "zz:Bad", formatErr.Entry)
	require.Contains(t, errOut, `invalid hex "zz"`)
	require.NotContains(t, out, "PNG image")
}

func TestNoFiles(t *testing.T) {
	out, errOut, err := runCommand(t, newTestFs(t))
	require.ErrorIs(t, err, ErrNoFiles)
	require.Contains(t, errOut, ErrNoFiles.Error())
	require.Contains(t, out, "Usage:")
}

func TestInvalidWorkers(t *testing.T) {
	_, _, err := runCommand(t, newTestFs(t), "--workers", "0", "a.png")
	require.ErrorContains(t, err, "workers must be greater than 0")
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := runCommand(t, newTestFs(t), "--log-level", "DEBUG", "a.png")
	require.NoError(t, err)
	require.Contains(t, errOut, "msg=\"probed file\"")
	require.Contains(t, errOut, "path=a.png")
}

func TestVersion(t *testing.T) {
	out, _, err := runCommand(t, newTestFs(t), "--version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:")
	require.Contains(t, out, "Commit:")
}
