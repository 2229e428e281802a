// Package polyfill carries the reference table of language symbols the
// compiler deliberately does not provide fallback implementations for. The
// table is flat, append-only data consumed by the pass that decides whether
// to synthesize a runtime shim; nothing here performs that synthesis.
package polyfill

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/jscomp/jscomp/pkg/logger"
)

//go:embed exclusions.yaml
var rawExclusions []byte

// Entry marks one symbol as excluded from fallback synthesis.
type Entry struct {
	// Symbol is the language-level identifier, e.g. "Proxy".
	Symbol string `yaml:"symbol"   validate:"required"`
	// Language is the language level that introduced the symbol.
	Language string `yaml:"language" validate:"required"`
	// Note optionally records why no fallback is shipped.
	Note string `yaml:"note"`
}

type exclusionFile struct {
	Exclusions []Entry `yaml:"exclusions" validate:"required,dive"`
}

var (
	loadOnce sync.Once
	entries  []Entry
	bySymbol map[string]Entry
	loadErr  error
)

// Load parses and validates the embedded exclusion table. The result is
// cached for the process lifetime.
func Load() ([]Entry, error) {
	loadOnce.Do(func() {
		entries, bySymbol, loadErr = parse(rawExclusions)
		if loadErr != nil {
			logger.Error("failed to load polyfill exclusion table", "error", loadErr)
			return
		}
		logger.Debug("loaded polyfill exclusion table", "entries", len(entries))
	})
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func parse(raw []byte) ([]Entry, map[string]Entry, error) {
	var file exclusionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse exclusion table: %w", err)
	}
	if err := validator.New().Struct(&file); err != nil {
		return nil, nil, fmt.Errorf("exclusion table validation failed: %w", err)
	}
	index := make(map[string]Entry, len(file.Exclusions))
	for _, e := range file.Exclusions {
		if _, exists := index[e.Symbol]; exists {
			return nil, nil, fmt.Errorf("duplicate exclusion for symbol %s", e.Symbol)
		}
		index[e.Symbol] = e
	}
	return file.Exclusions, index, nil
}

// ForSymbol returns the exclusion entry for a symbol, if one exists. A table
// that failed to load behaves as empty; the failure was already logged and is
// reported by Load.
func ForSymbol(symbol string) (Entry, bool) {
	if _, err := Load(); err != nil {
		return Entry{}, false
	}
	e, ok := bySymbol[symbol]
	return e, ok
}

// Excluded reports whether the compiler refuses to synthesize a fallback for
// the symbol.
func Excluded(symbol string) bool {
	_, ok := ForSymbol(symbol)
	return ok
}
