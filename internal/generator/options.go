package generator

import (
	"errors"

	"github.com/lth/passgen/internal/charset"
)

var (
	ErrNoCharacterClass   = errors.New("select data chars, use --help for more information.")
	ErrInvalidLengthRange = errors.New("min length must be less than max length")
)

// Options describes one generation run. MaxLength is exclusive.
type Options struct {
	charset.Selection
	MinLength uint64
	MaxLength uint64
	Count     uint64
}

// DefaultOptions returns the CLI defaults with no class selected.
func DefaultOptions() Options {
	return Options{
		MinLength: 8,
		MaxLength: 10,
		Count:     1,
	}
}

// Validate reports why opts cannot produce passwords, checking the
// character classes before the length range.
func (o Options) Validate() error {
	if o.Empty() {
		return ErrNoCharacterClass
	}
	if o.MinLength >= o.MaxLength {
		return ErrInvalidLengthRange
	}
	return nil
}
