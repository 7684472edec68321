// Command demo is a demonstration web-server front end showing layered
// configuration resolution: command-line flags override the TOML config
// file, which overrides the built-in defaults. On first run it writes an
// editable config.toml from a template.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	stomlargs "github.com/parazyd/stoml-args"
	"github.com/parazyd/stoml-args/internal/ctxlog"
	"github.com/parazyd/stoml-args/value"
)

const defaultConfig = `# Server Configuration
# Auto-generated default config. Edit as needed.

[server]
host = "0.0.0.0"
port = 8080
workers = 4

[logging]
file = "server.log"

[tls]
enabled = false
# cert = "/path/to/cert.pem"
# key = "/path/to/key.pem"

# features = ["metrics", "tracing"]
`

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if stomlargs.IsInfoRequest(err) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(stomlargs.ExitCode(err))
	}
}

// run holds the real logic so tests can drive it with a buffer.
func run(outW io.Writer, args []string) error {
	prog := stomlargs.New("myserver").
		Version("1.0.0").
		About("A demonstration web server with layered configuration").
		ConfigFlagDefault("config.toml").
		ConfigTemplate(defaultConfig).
		Arg(stomlargs.NewArg("host").Short('H').Long("host").
			Help("Bind address").Default(value.Str("0.0.0.0")).
			ConfigKey("server.host").ValueName("ADDR")).
		Arg(stomlargs.NewArg("port").Short('p').Long("port").
			Type(stomlargs.TypeInteger).Help("Port to listen on").
			Default(value.Int(8080)).ConfigKey("server.port").ValueName("PORT")).
		Arg(stomlargs.NewArg("workers").Short('w').Long("workers").
			Type(stomlargs.TypeInteger).Help("Number of worker threads").
			Default(value.Int(4)).ConfigKey("server.workers")).
		Arg(stomlargs.NewArg("verbose").Short('v').Long("verbose").Count().
			Help("Increase verbosity (can be repeated: -vvv)")).
		Arg(stomlargs.NewArg("quiet").Short('q').Long("quiet").Flag().
			Help("Suppress all output")).
		Arg(stomlargs.NewArg("log-file").Short('l').Long("log-file").
			Help("Log to file instead of stderr").
			ConfigKey("logging.file").ValueName("PATH")).
		Arg(stomlargs.NewArg("feature").Short('f').Long("feature").
			Type(stomlargs.TypeArray).Help("Enable feature (can be repeated)").
			ConfigKey("features").ValueName("NAME")).
		Arg(stomlargs.NewArg("tls").Long("tls").Flag().
			Help("Enable TLS").ConfigKey("tls.enabled")).
		Arg(stomlargs.NewArg("cert").Long("cert").
			Help("TLS certificate path").ConfigKey("tls.cert").ValueName("PATH")).
		Arg(stomlargs.NewArg("key").Long("key").
			Help("TLS private key path").ConfigKey("tls.key").ValueName("PATH"))

	// Parse with a quiet logger, then rebuild it at the resolved verbosity.
	ctx := ctxlog.WithLogger(context.Background(), newLogger(0, os.Stderr))

	m, err := prog.ParseFrom(ctx, args)
	if err != nil {
		return err
	}

	logger := newLogger(m.GetCount("verbose"), os.Stderr)
	logger.Debug("Configuration resolved.", "program", m.Program(), "values", len(m.Values()))

	if m.GetBool("quiet") {
		return nil
	}

	fmt.Fprintln(outW, "Server Configuration:")
	if cfg, ok := m.GetString("config"); ok {
		fmt.Fprintf(outW, "  Config file: %s\n", cfg)
	}
	fmt.Fprintf(outW, "  Host: %s\n", m.GetStringOr("host", "0.0.0.0"))
	fmt.Fprintf(outW, "  Port: %d\n", m.GetIntOr("port", 8080))
	fmt.Fprintf(outW, "  Workers: %d\n", m.GetIntOr("workers", 4))
	fmt.Fprintf(outW, "  Verbosity: %d\n", m.GetCount("verbose"))

	if path, ok := m.GetString("log-file"); ok {
		fmt.Fprintf(outW, "  Log file: %s\n", path)
	}

	if features, ok := m.GetArray("feature"); ok {
		names := make([]string, 0, len(features))
		for _, f := range features {
			if s, ok := f.AsString(); ok {
				names = append(names, s)
			}
		}
		fmt.Fprintf(outW, "  Features: %s\n", strings.Join(names, ", "))
	}

	if m.GetBool("tls") {
		fmt.Fprintln(outW, "  TLS: enabled")
		if cert, ok := m.GetString("cert"); ok {
			fmt.Fprintf(outW, "    Certificate: %s\n", cert)
		}
		if key, ok := m.GetString("key"); ok {
			fmt.Fprintf(outW, "    Private key: %s\n", key)
		}
	}

	return nil
}

// newLogger builds an isolated slog.Logger whose level follows the
// repeated -v verbosity count.
func newLogger(verbosity int64, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
