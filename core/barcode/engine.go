package barcode

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"inventory-manager/core/utils"

	"go.uber.org/zap"
)

// Engine matches scanned payloads against the registered record types.
// It is safe for concurrent use.
type Engine struct {
	registry *Registry
	logger   *zap.Logger
	patterns sync.Map // patternKey -> *regexp.Regexp
}

type patternKey struct {
	prefix  string
	charset string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for strategy tracing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates a new resolution engine over the registry.
func NewEngine(registry *Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves against.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Scan resolves a payload to a single record. A nil match with a nil error means
// no record matched. Errors are only returned when a descriptor lookup fails; an
// invalid short-code pattern skips the short-code strategy.
func (e *Engine) Scan(ctx context.Context, p Payload, cfg Config) (*Match, error) {
	norm := Normalize(p)
	l := e.logger.With(zap.String("kind", norm.Kind.String()))

	// 1. Short code, text payloads only
	if p.IsText() {
		match, err := e.matchShort(ctx, p.Text(), cfg, l)
		if err != nil {
			return nil, err
		}
		if match != nil {
			l.Debug("Matched short barcode", zap.String("label", match.Label), zap.Int("pk", match.Record.PrimaryKey()))
			return match, nil
		}
	}

	// 2. Structured document keyed by type label
	if norm.Kind == KindStructured {
		match, err := e.matchStructured(ctx, norm.Fields)
		if err != nil {
			return nil, err
		}
		if match != nil {
			l.Debug("Matched structured barcode", zap.String("label", match.Label), zap.Int("pk", match.Record.PrimaryKey()))
			return match, nil
		}
	}

	// 3. Linked external barcode
	hash := Hash(p)
	match, err := e.MatchHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if match != nil {
		l.Debug("Matched linked barcode", zap.String("label", match.Label), zap.String("hash", hash))
		return match, nil
	}

	l.Debug("No barcode match", zap.String("hash", hash))
	return nil, nil
}

// ShortPattern returns the short barcode pattern for the configured prefix and
// the registry's code width. The first group is the type code, the second the id.
// Compiled patterns are kept per prefix and charset.
func (e *Engine) ShortPattern(cfg Config) (*regexp.Regexp, error) {
	key := patternKey{prefix: cfg.ShortPrefix, charset: cfg.charset()}
	if re, ok := e.patterns.Load(key); ok {
		return re.(*regexp.Regexp), nil
	}

	expr := fmt.Sprintf(`^%s([%s]{%d})(\d+)$`, regexp.QuoteMeta(key.prefix), key.charset, e.registry.CodeWidth())
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid short barcode pattern %q: %w", expr, err)
	}
	e.patterns.Store(key, re)
	return re, nil
}

func (e *Engine) matchShort(ctx context.Context, text string, cfg Config, l *zap.Logger) (*Match, error) {
	re, err := e.ShortPattern(cfg)
	if err != nil {
		l.Warn("Skipping short barcode strategy", zap.Error(err))
		return nil, nil
	}

	// A single trailing newline from the scanner does not break the match
	groups := re.FindStringSubmatch(strings.TrimSuffix(text, "\n"))
	if groups == nil {
		return nil, nil
	}
	code, digits := groups[1], groups[2]

	desc, ok := e.registry.ByCode(code)
	if !ok {
		return nil, nil
	}

	pk, err := strconv.Atoi(digits)
	if err != nil {
		return nil, nil
	}

	rec, found, err := desc.FindByPrimaryKey(ctx, pk)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s %d: %w", desc.TypeLabel(), pk, err)
	}
	if !found {
		return nil, nil
	}
	return &Match{Label: desc.TypeLabel(), Record: rec, Strategy: StrategyShort}, nil
}

func (e *Engine) matchStructured(ctx context.Context, fields map[string]any) (*Match, error) {
	for _, desc := range e.registry.ordered {
		label := desc.TypeLabel()
		val, ok := fields[label]
		if !ok {
			continue
		}

		pk, ok := utils.ToPrimaryKey(val)
		if !ok {
			continue
		}

		rec, found, err := desc.FindByPrimaryKey(ctx, pk)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s %d: %w", label, pk, err)
		}
		if found {
			return &Match{Label: label, Record: rec, Strategy: StrategyJSON}, nil
		}
	}
	return nil, nil
}

// MatchHash looks up a linked barcode hash through every descriptor in
// registration order. The first record found wins.
func (e *Engine) MatchHash(ctx context.Context, hash string) (*Match, error) {
	for _, desc := range e.registry.ordered {
		rec, found, err := desc.FindByExternalHash(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s by barcode hash: %w", desc.TypeLabel(), err)
		}
		if found {
			return &Match{Label: desc.TypeLabel(), Record: rec, Strategy: StrategyHash}, nil
		}
	}
	return nil, nil
}
