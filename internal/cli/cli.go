// Package cli implements the stablebimap command line tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/homier/stablebimap"
	"github.com/homier/stablebimap/codec"
	"github.com/homier/stablebimap/internal/config"
)

const (
	flagHasher   = "hasher"
	flagCapacity = "capacity"
	flagFixed    = "fixed"
	flagLogLevel = "loglevel"
)

// app carries what every sub-command needs once the root command ran its
// setup.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

// New returns the root command.
func New() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "stablebimap [sub-command]",
		Short: "Inspect documents of one-to-one pairs",
		Long: `stablebimap loads documents of left/right pairs into a bidirectional map.
Pairs are inserted in document order: a pair whose left or right value is
already taken evicts the stale pair, so the result is always one-to-one.

Defaults are read from STABLEBIMAP_* environment variables and an optional
.env file; flags take precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().String(flagHasher, config.HasherMaphash, `hash function of both sides (maphash, xxhash)`)
	cmd.PersistentFlags().Int(flagCapacity, 0, `initial number of slots per index, 0 for the default`)
	cmd.PersistentFlags().Bool(flagFixed, false, `never grow past --capacity, fail instead`)
	cmd.PersistentFlags().String(flagLogLevel, "info", `set the log level (debug, info, warn, error)`)

	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newGetCmd(a))
	cmd.AddCommand(newInvertCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed(flagHasher) {
		cfg.Hasher, _ = flags.GetString(flagHasher)
	}
	if flags.Changed(flagCapacity) {
		cfg.Capacity, _ = flags.GetInt(flagCapacity)
	}
	if flags.Changed(flagFixed) {
		cfg.Fixed, _ = flags.GetBool(flagFixed)
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var out io.Writer = cmd.ErrOrStderr()
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	a.cfg = cfg
	a.log = zerolog.New(out).Level(level).With().Timestamp().Logger()
	a.log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("configuration loaded")

	return nil
}

func (a *app) decoder(strict bool) codec.Decoder[string, string] {
	var opts []stablebimap.Option[string, string]

	if a.cfg.Hasher == config.HasherXXHash {
		opts = append(opts,
			stablebimap.WithLeftHashFunc[string, string](stablebimap.XXHashString[string]),
			stablebimap.WithRightHashFunc[string, string](stablebimap.XXHashString[string]),
		)
	}
	if a.cfg.Fixed {
		opts = append(opts, stablebimap.WithFixedCapacity[string, string]())
	}

	return codec.Decoder[string, string]{
		Strict:   strict,
		Logger:   &a.log,
		Capacity: a.cfg.Capacity,
		Options:  opts,
	}
}

// load reads the document at path into a new map.
func (a *app) load(path string, strict bool) (*stablebimap.Map[string, string], codec.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, codec.Report{}, fmt.Errorf("reading %s: %w", path, err)
	}

	m, report, err := a.decoder(strict).Decode(data)
	if err != nil {
		return nil, report, fmt.Errorf("loading %s: %w", path, err)
	}

	a.log.Debug().
		Str("file", path).
		Int("entries", m.Len()).
		Int("inserted", report.Inserted).
		Int("unchanged", report.Unchanged).
		Int("evicted", report.Evicted).
		Msg("document loaded")

	return m, report, nil
}
