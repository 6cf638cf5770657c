package convert

import (
	"errors"
	"fmt"

	"biometa-converter/document"
)

//go:generate go tool stringer -type=NormalizeEnum -output=normalize_string.go

// NormalizeEnum selects when array-marked keys are rewritten into plain
// keys holding lists.
type NormalizeEnum int

const (
	_ NormalizeEnum = iota // skip zero value, use it as a default (invalid) value for NormalizeEnum

	// NormalizeLazy rewrites marked keys only on the levels the fold
	// visits. A marker buried under a branch that no later record
	// touches survives into the output verbatim.
	NormalizeLazy
	// NormalizeEager rewrites every marked key the moment its subtree
	// enters the accumulator, so no marker can reach the output.
	NormalizeEager

	// NormalizeTotal is a constant that represents the total number of normalization modes defined
	NormalizeTotal = int(iota)
)

var (
	// ErrAggregateConflict is returned when two records disagree about a
	// path that collects no list: same key, different irreconcilable
	// values.
	ErrAggregateConflict = errors.New("conflicting record contents")
)

// Config carries the aggregation knobs.
type Config struct {
	Normalize NormalizeEnum
}

// DefaultConfig returns the configuration matching the historical
// behavior: lazy normalization.
func DefaultConfig() Config {
	return Config{Normalize: NormalizeLazy}
}

// Aggregator folds records into one growing document. It owns every
// value it stores; callers keep ownership of the records they pass in.
type Aggregator struct {
	cfg  Config
	root document.Value
}

// New returns an empty aggregator. A zero Normalize falls back to
// NormalizeLazy.
func New(cfg Config) *Aggregator {
	if cfg.Normalize != NormalizeEager {
		cfg.Normalize = NormalizeLazy
	}

	return &Aggregator{cfg: cfg, root: document.NewMapping()}
}

// Fold merges one record into the accumulator. Records must fold in
// extraction order: the fold decides list order and first-wins identity
// by arrival.
func (a *Aggregator) Fold(r Record) error {
	if r.Kind() != document.KindMapping {
		return fmt.Errorf("%w: record root is %s, expected a mapping",
			ErrAggregateConflict, r.Kind())
	}

	return a.foldLevel(a.root.Map(), r.Map(), nil)
}

// Document returns a deep copy snapshot of the accumulated document.
// Later folds never reach a snapshot handed out earlier.
func (a *Aggregator) Document() document.Value {
	return a.root.Clone()
}

// Reset discards the accumulated document.
func (a *Aggregator) Reset() {
	a.root = document.NewMapping()
}

func (a *Aggregator) foldLevel(acc, rec *document.Mapping, path []string) error {
	normalizeLevel(acc)

	for _, e := range rec.Entries() {
		if e.Key.Repeatable {
			if err := a.appendElement(acc, e, path); err != nil {
				return err
			}

			continue
		}

		existing, ok := acc.Lookup(e.Key.Name)
		if !ok {
			acc.Put(e.Key, a.own(e.Value))
			continue
		}

		if existing.Value.Kind() == document.KindMapping && e.Value.Kind() == document.KindMapping {
			err := a.foldLevel(existing.Value.Map(), e.Value.Map(), append(path, e.Key.Name))
			if err != nil {
				return err
			}

			continue
		}

		// records repeating an identical fact fold to a no-op
		if existing.Value.Equal(e.Value) {
			continue
		}

		return fmt.Errorf("%w at %s: %s vs %s", ErrAggregateConflict,
			joinPath(path, e.Key.Name), existing.Value.Kind(), e.Value.Kind())
	}

	return nil
}

// appendElement inserts the value of an array-marked key into the list
// accumulated under the plain key, unless an equal element is already
// there.
func (a *Aggregator) appendElement(acc *document.Mapping, e document.Entry, path []string) error {
	key := e.Key.Plain()
	candidate := a.own(e.Value)

	existing, ok := acc.Lookup(key.Name)
	if !ok {
		acc.Put(key, document.NewList(candidate))
		return nil
	}

	if existing.Value.Kind() != document.KindList {
		return fmt.Errorf("%w at %s: array-marked key collides with %s",
			ErrAggregateConflict, joinPath(path, key.Name), existing.Value.Kind())
	}

	// stored elements are compared against the candidate in its stored
	// form, so eager rewriting cannot defeat the duplicate check
	for _, item := range existing.Value.Items() {
		if item.Equal(candidate) {
			return nil
		}
	}

	items := existing.Value.Items()
	grown := make([]document.Value, len(items)+1)
	copy(grown, items)
	grown[len(items)] = candidate
	acc.Put(key, document.NewList(grown...))

	return nil
}

// own converts an incoming subtree into one the accumulator may keep and
// mutate. Both branches return a value sharing nothing with the input.
func (a *Aggregator) own(v document.Value) document.Value {
	if a.cfg.Normalize == NormalizeEager {
		return normalizeDeep(v)
	}

	return v.Clone()
}

// normalizeLevel rewrites every still-marked key at this level into a
// plain key holding a one-element list. Keys keep their positions and
// running the rewrite again is a no-op.
func normalizeLevel(level *document.Mapping) {
	for _, e := range level.Entries() {
		if e.Key.Repeatable {
			level.Put(e.Key.Plain(), document.NewList(e.Value))
		}
	}
}

// normalizeDeep rebuilds the subtree with every marked key rewritten, at
// any depth. The result is a full copy sharing no state with the input.
func normalizeDeep(v document.Value) document.Value {
	switch v.Kind() {
	default:
		return v

	case document.KindList:
		items := make([]document.Value, len(v.Items()))
		for i, item := range v.Items() {
			items[i] = normalizeDeep(item)
		}

		return document.NewList(items...)

	case document.KindMapping:
		entries := make([]document.Entry, 0, v.Map().Len())

		for _, e := range v.Map().Entries() {
			child := normalizeDeep(e.Value)
			if e.Key.Repeatable {
				entries = append(entries, document.Entry{Key: e.Key.Plain(), Value: document.NewList(child)})
			} else {
				entries = append(entries, document.Entry{Key: e.Key, Value: child})
			}
		}

		return document.NewMapping(entries...)
	}
}
