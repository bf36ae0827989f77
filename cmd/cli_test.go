package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/gallery-captioner/internal/adapters/lock"
	"github.com/bnema/gallery-captioner/internal/application"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedRunner struct {
	script func(ctx context.Context, session *application.EditSession) error
}

func (r scriptedRunner) Run(ctx context.Context, session *application.EditSession) error {
	defer session.Close()
	return r.script(ctx, session)
}

func TestRunCreatesCaptionFileForNewGallery(t *testing.T) {
	gallery := writeGallery(t, "b.png", "a.jpg", "notes.txt")

	stdout, _, err := executeCLI(t, testDependencies(), gallery)
	require.NoError(t, err)
	assert.Contains(t, stdout, "images: 2  captioned: 0")
	assert.Contains(t, stdout, "saved to "+filepath.Join(gallery, "captions.csv"))

	assert.Equal(t, "Image,Caption\na.jpg,\nb.png,\n", readFile(t, filepath.Join(gallery, "captions.csv")))
}

func TestRunKeepsCaptionsAndReportsOrphans(t *testing.T) {
	gallery := writeGallery(t, "c.jpg")
	writeFile(t, filepath.Join(gallery, "captions.csv"), "Image,Caption\na.jpg,old caption\nc.jpg,kept\n")

	stdout, _, err := executeCLI(t, testDependencies(), gallery)
	require.NoError(t, err)
	assert.Contains(t, stdout, "a.jpg: old caption")

	assert.Equal(t, "Image,Caption\nc.jpg,kept\n", readFile(t, filepath.Join(gallery, "captions.csv")))
}

func TestRunEditCommitsCaption(t *testing.T) {
	gallery := writeGallery(t, "a.jpg", "b.jpg")

	deps := testDependencies()
	deps.interactive = func() bool { return true }
	deps.newRunner = func(string) application.SessionRunner {
		return scriptedRunner{script: func(ctx context.Context, session *application.EditSession) error {
			session.Apply(ctx, application.IntentBeginEdit)
			session.SetBuffer("sunset")
			session.Apply(ctx, application.IntentCommit)
			session.Apply(ctx, application.IntentQuit)
			return nil
		}}
	}

	_, _, err := executeCLI(t, deps, gallery, "--edit")
	require.NoError(t, err)
	assert.Equal(t, "Image,Caption\na.jpg,sunset\nb.jpg,\n", readFile(t, filepath.Join(gallery, "captions.csv")))
}

func TestRunEditRequiresTerminal(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")

	_, _, err := executeCLI(t, testDependencies(), gallery, "-e")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.ErrorIs(t, err, errNotInteractive)
	assert.NoFileExists(t, filepath.Join(gallery, "captions.csv"))
}

func TestRunEditPassesDecodedViewerArgs(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")

	var gotViewer domain.ViewerSpec
	deps := testDependencies()
	deps.interactive = func() bool { return true }
	deps.newRunner = func(string) application.SessionRunner {
		return scriptedRunner{script: func(ctx context.Context, session *application.EditSession) error {
			gotViewer = session.ViewerSpec()
			session.Apply(ctx, application.IntentQuit)
			return nil
		}}
	}

	_, _, err := executeCLI(t, deps, gallery, "-e", "-c", "feh", "-a", `\-\-scale-down`, "-a", "--auto-zoom")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewerSpec{Command: "feh", Args: []string{"--scale-down", "--auto-zoom"}}, gotViewer)
}

func TestRunViewerArgsWithoutCommandFails(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")

	_, _, err := executeCLI(t, testDependencies(), gallery, "-a", "--fullscreen")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRunOutputTypeAndName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		file     string
		contains string
	}{
		{name: "toml", args: []string{"-t", "toml"}, file: "captions.toml", contains: "a.jpg"},
		{name: "yaml", args: []string{"--output-type", "yaml"}, file: "captions.yaml", contains: "image: a.jpg"},
		{name: "sqlite", args: []string{"-t", "sqlite"}, file: "captions.db", contains: ""},
		{name: "custom name", args: []string{"-n", "labels.csv"}, file: "labels.csv", contains: "a.jpg,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gallery := writeGallery(t, "a.jpg")

			args := append([]string{gallery}, tt.args...)
			_, _, err := executeCLI(t, testDependencies(), args...)
			require.NoError(t, err)

			path := filepath.Join(gallery, tt.file)
			require.FileExists(t, path)
			if tt.contains != "" {
				assert.Contains(t, readFile(t, path), tt.contains)
			}
		})
	}
}

func TestRunRejectsUnknownOutputType(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")

	_, _, err := executeCLI(t, testDependencies(), gallery, "-t", "xml")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "csv, toml, yaml, sqlite")
}

func TestRunMissingGalleryFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, _, err := executeCLI(t, testDependencies(), missing)
	require.ErrorIs(t, err, domain.ErrDirectoryNotFound)
	assert.NoDirExists(t, missing)
}

func TestRunMalformedCaptionFileIsNotOverwritten(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")
	malformed := "Image,Caption\na.jpg,one,two\n"
	writeFile(t, filepath.Join(gallery, "captions.csv"), malformed)

	_, _, err := executeCLI(t, testDependencies(), gallery)
	require.ErrorIs(t, err, domain.ErrMalformedInput)
	assert.Equal(t, malformed, readFile(t, filepath.Join(gallery, "captions.csv")))
}

func TestRunUsesConfigFileAndEnvironment(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")
	configPath := filepath.Join(t.TempDir(), "captioner.toml")
	writeFile(t, configPath, "[output]\ntype = \"yaml\"\nname = \"from-config.yaml\"\n")

	_, _, err := executeCLI(t, testDependencies(), gallery, "--config", configPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(gallery, "from-config.yaml"))

	t.Setenv("CAPTIONER_OUTPUT_NAME", "from-env.yaml")
	_, _, err = executeCLI(t, testDependencies(), gallery, "--config", configPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(gallery, "from-env.yaml"))

	_, _, err = executeCLI(t, testDependencies(), gallery, "--config", configPath, "-n", "from-flag.yaml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(gallery, "from-flag.yaml"))
}

func TestRunLogsToStderrWithSessionID(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")

	_, stderr, err := executeCLI(t, testDependencies(), gallery, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "gallery reconciled")
	assert.Contains(t, stderr, "session_id=test-session")
}

func TestListShowsTableWithoutWriting(t *testing.T) {
	gallery := writeGallery(t, "a.jpg", "b.jpg")
	writeFile(t, filepath.Join(gallery, "captions.csv"), "Image,Caption\na.jpg,sunset\n")

	stdout, _, err := executeCLI(t, testDependencies(), "list", gallery)
	require.NoError(t, err)
	assert.Contains(t, stdout, "IMAGE")
	assert.Contains(t, stdout, "sunset")
	assert.Contains(t, stdout, "b.jpg")
	assert.Equal(t, "Image,Caption\na.jpg,sunset\n", readFile(t, filepath.Join(gallery, "captions.csv")))
}

func TestListJSONOutput(t *testing.T) {
	gallery := writeGallery(t, "c.jpg")
	writeFile(t, filepath.Join(gallery, "captions.csv"), "Image,Caption\na.jpg,old caption\n")

	stdout, _, err := executeCLI(t, testDependencies(), "list", gallery, "--json")
	require.NoError(t, err)

	var out listOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.StoreFound)
	assert.Equal(t, []listEntry{{Image: "c.jpg"}}, out.Captions)
	assert.Equal(t, []string{"c.jpg"}, out.Added)
	assert.Equal(t, []listEntry{{Image: "a.jpg", Caption: "old caption"}}, out.Orphaned)
}

func TestListStrictRequiresCaptionFile(t *testing.T) {
	gallery := writeGallery(t, "a.jpg")

	_, _, err := executeCLI(t, testDependencies(), "list", "--strict", gallery)
	require.ErrorIs(t, err, domain.ErrStoreNotFound)

	_, _, err = executeCLI(t, testDependencies(), "list", gallery)
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, testDependencies(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestTooManyArgumentsFails(t *testing.T) {
	_, _, err := executeCLI(t, testDependencies(), "one", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func testDependencies() dependencies {
	return dependencies{
		interactive:  func() bool { return false },
		locker:       lock.FileLocker{},
		newSessionID: func() string { return "test-session" },
		newRunner: func(string) application.SessionRunner {
			return scriptedRunner{script: func(ctx context.Context, session *application.EditSession) error {
				session.Apply(ctx, application.IntentQuit)
				return nil
			}}
		},
	}
}

func executeCLI(t *testing.T, deps dependencies, args ...string) (string, string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	root := newRootCmd(deps)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeGallery(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		writeFile(t, filepath.Join(dir, name), "img")
	}

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
