package generator

import (
	"log/slog"
)

type Progress struct {
	Generated uint64
	Total     uint64
}

type Generator struct {
	src        Source
	logger     *slog.Logger
	progressCb func(Progress)
}

// New returns a Generator drawing from src. A nil src gets a clock-seeded
// RandSource.
func New(src Source, logger *slog.Logger) *Generator {
	if src == nil {
		src = NewRandSource(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		src:    src,
		logger: logger,
	}
}

func (g *Generator) SetProgressCallback(cb func(Progress)) {
	g.progressCb = cb
}

func (g *Generator) reportProgress(generated, total uint64) {
	if g.progressCb == nil {
		return
	}
	g.progressCb(Progress{Generated: generated, Total: total})
}

// Generate produces opts.Count passwords. Nothing is generated when opts
// fails validation.
func (g *Generator) Generate(opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	pool := opts.Pool()
	g.logger.Debug("generating passwords",
		"classes", opts.Classes(),
		"pool_size", len(pool),
		"min_len", opts.MinLength,
		"max_len", opts.MaxLength,
		"count", opts.Count)

	passwords := make([]string, 0, opts.Count)
	for i := uint64(0); i < opts.Count; i++ {
		passwords = append(passwords, g.password(pool, opts.MinLength, opts.MaxLength))
		g.reportProgress(i+1, opts.Count)
	}

	return NewResult(passwords), nil
}

// password draws a length in [minLen, maxLen) and fills it with pool
// characters, repeats allowed.
func (g *Generator) password(pool string, minLen, maxLen uint64) string {
	length := g.src.InRange(minLen, maxLen)
	password := make([]byte, length)
	for i := range password {
		password[i] = pool[g.src.Index(len(pool))]
	}
	return string(password)
}

// Generate runs opts against a fresh clock-seeded source.
func Generate(opts Options) (Result, error) {
	return New(nil, nil).Generate(opts)
}
