package barcode

import (
	"fmt"
	"regexp"
)

const (
	// FormatJSON renders barcodes as {"<label>": <pk>}.
	FormatJSON = "json"
	// FormatShort renders barcodes as <prefix><code><pk>.
	FormatShort = "short"

	// DefaultShortPrefix is used when no prefix is configured.
	DefaultShortPrefix = "INV-"
	// DefaultTypeCodeCharset is the character class accepted for short type codes
	// (Code 39 symbols). The comma is not a Code 39 symbol and is not accepted.
	DefaultTypeCodeCharset = "0-9A-Z $%*+./:-"
)

// Config holds the barcode settings used by scan and generate calls.
type Config struct {
	// Format is the internal barcode format used for generation (json, short).
	Format string `mapstructure:"format" default:"json"`
	// ShortPrefix is prepended to short barcodes.
	ShortPrefix string `mapstructure:"short_prefix" default:"INV-"`
	// TypeCodeCharset is the regular expression character class (without brackets)
	// a short barcode type code is drawn from.
	TypeCodeCharset string `mapstructure:"type_code_charset" default:"0-9A-Z $%*+./:-"`
}

// IsValidFormat checks if the configured format is supported.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatJSON, FormatShort:
		return true
	default:
		return false
	}
}

func (c Config) charset() string {
	if c.TypeCodeCharset == "" {
		return DefaultTypeCodeCharset
	}
	return c.TypeCodeCharset
}

// Validate rejects an unsupported format or a type code charset that does not
// form a valid character class.
func (c Config) Validate() error {
	if !c.IsValidFormat() {
		return fmt.Errorf("invalid barcode format %q (expected %s or %s)", c.Format, FormatJSON, FormatShort)
	}
	if _, err := regexp.Compile("^[" + c.charset() + "]$"); err != nil {
		return fmt.Errorf("invalid barcode type code charset %q: %w", c.TypeCodeCharset, err)
	}
	return nil
}
