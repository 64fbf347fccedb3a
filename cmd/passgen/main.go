package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lth/passgen/internal/charset"
	"github.com/lth/passgen/internal/generator"
	"github.com/lth/passgen/internal/logger"
)

var version = "1.0.0"

type rootFlags struct {
	opts     generator.Options
	seed     uint64
	progress bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := rootFlags{opts: generator.DefaultOptions()}

	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `passgen v` + version + `
Generates random passwords from the selected character classes.
Each password gets its own length drawn from [min-len, max-len).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	flags := rootCmd.Flags()
	addClassFlags(flags, &f.opts.Selection)
	flags.Uint64Var(&f.opts.MinLength, "min-len", f.opts.MinLength, "Minimum password length (inclusive)")
	flags.Uint64Var(&f.opts.MaxLength, "max-len", f.opts.MaxLength, "Maximum password length (exclusive)")
	flags.Uint64VarP(&f.opts.Count, "count", "c", f.opts.Count, "Number of passwords to generate")
	flags.Uint64Var(&f.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flags.BoolVarP(&f.progress, "progress", "p", false, "Show a progress bar on stderr")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newInfoCmd(), newBenchmarkCmd())

	return rootCmd
}

func addClassFlags(fs *pflag.FlagSet, sel *charset.Selection) {
	fs.BoolVarP(&sel.Upper, "upper-case", "u", false, "Include upper-case letters (A-Z)")
	fs.BoolVarP(&sel.Lower, "lower-case", "l", false, "Include lower-case letters (a-z)")
	fs.BoolVarP(&sel.Digits, "digits", "d", false, "Include digits (0-9)")
	fs.BoolVarP(&sel.Special, "special", "s", false, "Include special symbols")
}

func runGenerate(cmd *cobra.Command, f rootFlags) error {
	log := logger.New(cmd.ErrOrStderr(), f.verbose)
	log.Debug("random source", "seed", f.seed)

	g := generator.New(generator.NewRandSource(f.seed), log)

	if f.progress && f.opts.Validate() == nil {
		bar := progressbar.NewOptions64(int64(f.opts.Count),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()

		g.SetProgressCallback(func(p generator.Progress) {
			bar.Set64(int64(p.Generated))
		})
	}

	result, err := g.Generate(f.opts)
	if err != nil {
		return err
	}

	_, err = result.WriteTo(cmd.OutOrStdout())
	return err
}

func newInfoCmd() *cobra.Command {
	var sel charset.Selection

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Display the character pool for the selected classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sel.Empty() {
				return generator.ErrNoCharacterClass
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Character Pool")
			fmt.Fprintln(out, "==============")
			for _, c := range sel.Classes() {
				fmt.Fprintf(out, "%-12s %2d  %s\n", c.String()+":", len(c.Alphabet()), c.Alphabet())
			}
			fmt.Fprintf(out, "%-12s %2d\n", "Total:", len(sel.Pool()))
			return nil
		},
	}
	addClassFlags(infoCmd.Flags(), &sel)

	return infoCmd
}

func newBenchmarkCmd() *cobra.Command {
	var (
		duration time.Duration
		seed     uint64
	)

	benchCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure generation throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, duration)
			defer cancel()

			opts := generator.DefaultOptions()
			opts.Selection = charset.Selection{Upper: true, Lower: true, Digits: true, Special: true}
			opts.Count = 0

			g := generator.New(generator.NewRandSource(seed), logger.New(cmd.ErrOrStderr(), false))

			fmt.Fprintf(cmd.OutOrStdout(), "Benchmarking for %s...\n", duration)

			start := time.Now()
			passwords, err := g.Stream(ctx, opts)
			if err != nil {
				return err
			}

			var count uint64
			for range passwords {
				count++
			}
			elapsed := time.Since(start)

			rate := float64(count) / elapsed.Seconds()
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d passwords in %s (%.0f passwords/second)\n",
				count, formatDuration(elapsed), rate)
			return nil
		},
	}
	benchCmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "How long to generate for")
	benchCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed, 0 seeds from the clock")

	return benchCmd
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
