// passclip: memorable passphrase generator that copies to the clipboard
//
// Passphrases are drawn from a fixed dictionary of words or syllables:
// - Standard tier (~80 bits): 5 words or 10 syllables
// - Long tier (~128 bits):    8 words or 16 syllables
//
// Chunks are sampled uniformly without replacement from crypto/rand. A draw
// whose summed chunk length does not exceed the tier's floor (17 or 27
// characters) is discarded and redrawn, so the phrase also resists a pure
// alphabetic brute-force.
//
// Notes:
// - --suffix appends a fixed literal ("Q1!" when bare) for strength meters;
//   it adds no entropy and is not counted toward the floor.
// - The result always goes to the clipboard; stdout only without --quiet.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"passclip/internal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// selfTestRuns is the number of draws per unit/tier combination.
const selfTestRuns = 200

// env is everything the command touches outside the process.
type env struct {
	stdout     io.Writer
	stderr     io.Writer
	clipboard  internal.Clipboard
	isTerminal func() bool
}

type options struct {
	long, syll, quiet bool
	suffix, sep       string

	qr            bool
	wordsFile     string
	syllablesFile string
	verbose       bool
	noColor       bool
	selfTest      bool
	version       bool
	seed          string
}

// usageError marks bad command-line input.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

var errSelfTest = errors.New("self-test failed")

func newRootCommand(e env) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "passclip",
		Short: "Generate a memorable passphrase and copy it to the clipboard",
		Long: `passclip draws a random passphrase from a built-in word or syllable list
and copies it to the clipboard.

Default: standard security (80-bit), space-separated words, no suffix.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := internal.Flags{
				Long:         o.long,
				Syllable:     o.syll,
				Quiet:        o.quiet,
				Suffix:       o.suffix,
				Separator:    o.sep,
				SeparatorSet: cmd.Flags().Changed("sep"),
			}
			return run(e, o, flags, cmd.Flags().Changed("seed"))
		},
	}
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.BoolVar(&o.long, "long", false, "generate a long (>128bit security) passphrase")
	f.BoolVar(&o.syll, "syll", false, "generate a passphrase with syllables, rather than whole words")
	f.BoolVar(&o.quiet, "quiet", false, "quiet mode: copy to clipboard without displaying")
	f.StringVar(&o.suffix, "suffix", "", `include a suffix to satisfy strength meters, default is "`+internal.DefaultSuffix+`"`)
	f.Lookup("suffix").NoOptDefVal = internal.DefaultSuffix
	f.StringVar(&o.sep, "sep", "", "separator to use between words or syllables")

	f.BoolVar(&o.qr, "qr", false, "also print the passphrase as a QR code (ignored with --quiet)")
	f.StringVar(&o.wordsFile, "words-file", "", "load the word list from a whitespace-delimited file")
	f.StringVar(&o.syllablesFile, "syllables-file", "", "load the syllable list from a whitespace-delimited file")
	f.BoolVar(&o.verbose, "verbose", false, "log debug details to stderr")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&o.selfTest, "self-test", false, "check the generator against every mode and exit")
	f.BoolVar(&o.version, "version", false, "print version and exit")
	f.StringVar(&o.seed, "seed", "", "deterministic random seed (diagnostics only, output is NOT secret)")
	_ = f.MarkHidden("seed")

	return cmd
}

func run(e env, o options, flags internal.Flags, seeded bool) error {
	logger := internal.NewLogger(e.stderr, o.verbose)

	// Color enablement: default on for TTY unless --no-color
	internal.SetColorEnabled(!o.noColor && e.isTerminal())

	if o.version {
		fmt.Fprintln(e.stdout, internal.Banner(version))
		return nil
	}

	pools, err := internal.LoadPools(o.wordsFile, o.syllablesFile)
	if err != nil {
		return usageError{err}
	}

	gen := internal.NewGenerator(logger)
	if seeded {
		src, err := internal.NewSeededSource(o.seed)
		if err != nil {
			return err
		}
		gen.Source = src
		logger.Warn("using deterministic seed; the passphrase is not secret")
	}

	if o.selfTest {
		if failed := internal.RunSelfTest(e.stdout, gen, pools, selfTestRuns); failed > 0 {
			return fmt.Errorf("%w: %d mode(s)", errSelfTest, failed)
		}
		return nil
	}

	cfg := internal.Resolve(flags)
	pool := pools.For(cfg.Unit)
	if bits := internal.NominalBits(pool.Len(), cfg.ChunkCount); bits > 0 && bits < internal.TargetBits(cfg.Tier) {
		logger.Warn("pool is too small for this tier",
			"pool", pool.Name, "size", pool.Len(), "bits", fmt.Sprintf("%.1f", bits),
			"target", internal.TargetBits(cfg.Tier))
	}
	result, err := gen.Generate(pool, cfg)
	if err != nil {
		return err
	}

	sink := internal.Sink{
		Clipboard: e.clipboard,
		Out:       e.stdout,
		Quiet:     cfg.Quiet,
		QR:        o.qr,
	}
	return sink.Deliver(result)
}

// exitCode maps an error to the process exit status: 2 for bad input or
// configuration, 1 for runtime failures such as the clipboard.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue),
		errors.Is(err, internal.ErrConfiguration),
		errors.Is(err, internal.ErrEmptyPool):
		return 2
	default:
		return 1
	}
}

func execute(e env, args []string) int {
	cmd := newRootCommand(e)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
	}
	return exitCode(err)
}

func main() {
	e := env{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: internal.SystemClipboard{},
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
	os.Exit(execute(e, os.Args[1:]))
}
