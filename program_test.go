package stomlargs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	stomlargs "github.com/parazyd/stoml-args"
	"github.com/parazyd/stoml-args/value"
)

func TestProgram_HelpRequested(t *testing.T) {
	t.Parallel()

	prog := stomlargs.New("myapp").
		About("Does app things").
		Arg(stomlargs.NewArg("port").Short('p').Long("port").
			Type(stomlargs.TypeInteger).Default(value.Int(8080)).
			Help("Port to listen on").ValueName("PORT")).
		Arg(stomlargs.NewPositional("input").Required().Help("Input file"))

	for _, tokens := range [][]string{{"-h"}, {"--help"}} {
		_, err := prog.ParseFrom(context.Background(), tokens)

		var help *stomlargs.HelpRequestedError
		require.ErrorAs(t, err, &help, "tokens %v", tokens)
		require.True(t, stomlargs.IsInfoRequest(err))
		require.Equal(t, 0, stomlargs.ExitCode(err))

		require.Contains(t, help.Text, "Usage: myapp [OPTIONS] <INPUT>")
		require.Contains(t, help.Text, "Does app things")
		require.Contains(t, help.Text, "-p, --port <PORT>")
		require.Contains(t, help.Text, "Port to listen on")
		require.Contains(t, help.Text, "[default: 8080]")
		require.Contains(t, help.Text, "<INPUT>")
	}
}

func TestProgram_HelpShortCircuitsValidation(t *testing.T) {
	t.Parallel()

	// The required positional is absent, but help wins over validation.
	prog := stomlargs.New("myapp").
		Arg(stomlargs.NewPositional("input").Required())

	_, err := prog.ParseFrom(context.Background(), []string{"--help"})

	var help *stomlargs.HelpRequestedError
	require.ErrorAs(t, err, &help)
}

func TestProgram_VersionRequested(t *testing.T) {
	t.Parallel()

	prog := stomlargs.New("myapp").Version("2.3.1")

	for _, tokens := range [][]string{{"-V"}, {"--version"}} {
		_, err := prog.ParseFrom(context.Background(), tokens)

		var version *stomlargs.VersionRequestedError
		require.ErrorAs(t, err, &version, "tokens %v", tokens)
		require.True(t, stomlargs.IsInfoRequest(err))
		require.Equal(t, 0, stomlargs.ExitCode(err))
		require.Equal(t, "myapp 2.3.1", version.Text)
	}
}

func TestProgram_NoVersionFlagWithoutVersion(t *testing.T) {
	t.Parallel()

	// Without a declared version there is no -V flag to match.
	_, err := stomlargs.New("myapp").ParseFrom(context.Background(), []string{"--version"})

	var unknown *stomlargs.UnknownFlagError
	require.ErrorAs(t, err, &unknown)
}

func TestProgram_DisableHelp(t *testing.T) {
	t.Parallel()

	_, err := stomlargs.New("myapp").DisableHelp().
		ParseFrom(context.Background(), []string{"--help"})

	var unknown *stomlargs.UnknownFlagError
	require.ErrorAs(t, err, &unknown)
}

func TestProgram_FailureExitCode(t *testing.T) {
	t.Parallel()

	_, err := stomlargs.New("myapp").ParseFrom(context.Background(), []string{"--bogus"})

	require.Error(t, err)
	require.False(t, stomlargs.IsInfoRequest(err))
	require.Equal(t, 2, stomlargs.ExitCode(err))
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const serverTOML = `
verbose = true

[server]
host = "10.0.0.1"
port = 3000
`

func configProgram() *stomlargs.Program {
	return stomlargs.New("myapp").
		ConfigFlag().
		Arg(stomlargs.NewArg("port").Short('p').Long("port").
			Type(stomlargs.TypeInteger).Default(value.Int(8080)).
			ConfigKey("server.port")).
		Arg(stomlargs.NewArg("host").Long("host").ConfigKey("server.host")).
		Arg(stomlargs.NewArg("verbose").Short('v').Long("verbose").Type(stomlargs.TypeBool))
}

func TestProgram_ConfigFileMerged(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app.toml", serverTOML)

	m, err := configProgram().ParseFrom(context.Background(), []string{"--config", path})
	require.NoError(t, err)

	// Config fills what the CLI left absent, addressable both by dotted
	// key and by the argument's declared config-key alias.
	require.Equal(t, int64(3000), m.GetIntOr("server.port", 0))
	require.Equal(t, int64(3000), m.GetIntOr("port", 0))
	require.Equal(t, "10.0.0.1", m.GetStringOr("host", ""))
	require.True(t, m.GetBool("verbose"))
	require.Equal(t, path, m.GetStringOr("config", ""))
}

func TestProgram_CLIOverridesConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app.toml", serverTOML)

	m, err := configProgram().ParseFrom(context.Background(),
		[]string{"--config", path, "--port=9090"})
	require.NoError(t, err)

	require.Equal(t, int64(9090), m.GetIntOr("port", 0))
	// The dotted view still reflects the document.
	require.Equal(t, int64(3000), m.GetIntOr("server.port", 0))
}

func TestProgram_ConfigPathSpellings(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app.toml", serverTOML)

	spellings := [][]string{
		{"--config", path},
		{"--config=" + path},
		{"-c", path},
		{"-c" + path},
		{"-vc", path}, // config short ends a cluster
	}
	for _, tokens := range spellings {
		m, err := configProgram().ParseFrom(context.Background(), tokens)
		require.NoError(t, err, "tokens %v", tokens)
		require.Equal(t, int64(3000), m.GetIntOr("port", 0), "tokens %v", tokens)
	}
}

func TestProgram_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	ghost := filepath.Join(t.TempDir(), "nope.toml")

	_, err := configProgram().ParseFrom(context.Background(), []string{"-c", ghost})

	var missing *stomlargs.MissingConfigError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, ghost, missing.Path)
}

func TestProgram_DefaultConfigMissingIsSkipped(t *testing.T) {
	t.Parallel()

	ghost := filepath.Join(t.TempDir(), "nope.toml")

	m, err := stomlargs.New("myapp").
		ConfigFlagDefault(ghost).
		Arg(stomlargs.NewArg("port").Long("port").Type(stomlargs.TypeInteger).
			Default(value.Int(8080)).ConfigKey("server.port")).
		ParseFrom(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, int64(8080), m.GetIntOr("port", 0))
}

func TestProgram_DefaultConfigUsedWhenPresent(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app.toml", serverTOML)

	m, err := stomlargs.New("myapp").
		ConfigFlagDefault(path).
		Arg(stomlargs.NewArg("port").Long("port").Type(stomlargs.TypeInteger).
			ConfigKey("server.port")).
		ParseFrom(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, int64(3000), m.GetIntOr("port", 0))
}

func TestProgram_ConfigTemplateBootstraps(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	m, err := stomlargs.New("myapp").
		ConfigFlagDefault(path).
		ConfigTemplate("[server]\nport = 4242\n").
		Arg(stomlargs.NewArg("port").Long("port").Type(stomlargs.TypeInteger).
			ConfigKey("server.port")).
		ParseFrom(context.Background(), nil)
	require.NoError(t, err)

	// The template was written out and then loaded like a normal config.
	require.Equal(t, int64(4242), m.GetIntOr("port", 0))
	written, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	require.Contains(t, string(written), "port = 4242")
}

func TestProgram_RequiredSatisfiedByConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app.toml", "name = \"from-config\"\n")

	m, err := stomlargs.New("myapp").
		ConfigFlag().
		Arg(stomlargs.NewArg("name").Long("name").Required()).
		ParseFrom(context.Background(), []string{"-c", path})
	require.NoError(t, err)

	require.Equal(t, "from-config", m.GetStringOr("name", ""))
}

func TestMatches_MergeFileOptional(t *testing.T) {
	t.Parallel()

	m, err := stomlargs.New("myapp").
		Arg(stomlargs.NewArg("port").Long("port").Type(stomlargs.TypeInteger)).
		ParseFrom(context.Background(), nil)
	require.NoError(t, err)

	// Missing file: no-op.
	require.NoError(t, m.MergeFileOptional(filepath.Join(t.TempDir(), "nope.toml")))
	require.False(t, m.Contains("port"))

	// Present file: merged.
	path := writeConfig(t, "app.toml", "port = 7070\n")
	require.NoError(t, m.MergeFile(path))
	require.Equal(t, int64(7070), m.GetIntOr("port", 0))
}
