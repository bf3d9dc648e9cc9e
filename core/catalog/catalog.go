package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"artifact-planner/core/artifact"
)

var (
	// ErrUnknownItem is returned when a key is not in the catalog.
	ErrUnknownItem = errors.New("unknown item")

	// ErrDuplicateItem is returned when a catalog lists a key twice.
	ErrDuplicateItem = errors.New("duplicate catalog item")

	// ErrInvalidKey is returned for keys holding complete key delimiters.
	ErrInvalidKey = errors.New("invalid catalog key")

	// ErrWrongKind is returned when a stone is used as a host or vice versa.
	ErrWrongKind = errors.New("wrong item kind")

	// ErrTooManyStones is returned when an artifact holds more stones than
	// it has sockets.
	ErrTooManyStones = errors.New("too many stones for host")
)

// Kind tells hosts and stones apart.
type Kind string

const (
	KindArtifact Kind = "artifact"
	KindStone    Kind = "stone"
)

// Effects holds the bonus an item contributes, as fractions (0.25 = +25%).
type Effects struct {
	EarningBonus         float64 `json:"earning_bonus,omitempty"`
	EggValue             float64 `json:"egg_value,omitempty"`
	EggLayingRate        float64 `json:"egg_laying_rate,omitempty"`
	HabSpace             float64 `json:"hab_space,omitempty"`
	InternalHatcheryRate float64 `json:"internal_hatchery_rate,omitempty"`
	BoostEffect          float64 `json:"boost_effect,omitempty"`
	AwayEarnings         float64 `json:"away_earnings,omitempty"`
	VirtualEarnings      float64 `json:"virtual_earnings,omitempty"`
	RunningChickenBonus  float64 `json:"running_chicken_bonus,omitempty"`
}

// Entry is one catalog item.
type Entry struct {
	Key               artifact.Key `json:"key"`
	Family            string       `json:"family"`
	Name              string       `json:"name"`
	Kind              Kind         `json:"kind"`
	Slots             int          `json:"slots"`
	BaseCraftingPrice float64      `json:"base_crafting_price"`
	Quality           float64      `json:"quality"`
	Effects           Effects      `json:"effects"`
}

// Item returns the identity and ordering attributes of the entry.
func (e Entry) Item() artifact.Item {
	return artifact.Item{
		Key:               e.Key,
		Family:            e.Family,
		Name:              e.Name,
		Slots:             e.Slots,
		BaseCraftingPrice: e.BaseCraftingPrice,
		Quality:           e.Quality,
	}
}

// Catalog is an immutable index of entries by key.
type Catalog struct {
	entries map[artifact.Key]Entry
}

// keyDelimiters may not appear in keys; see artifact.Artifact.CompleteKey.
const keyDelimiters = "[],; \t\r\n"

// New indexes entries. Keys must be unique and non-empty and may not contain
// brackets, commas, semicolons or whitespace. A missing kind means artifact
// and a missing family means the key is its own family.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[artifact.Key]Entry, len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("catalog entry %q has no key", e.Name)
		}
		if strings.ContainsAny(string(e.Key), keyDelimiters) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, e.Key)
		}
		if _, exists := c.entries[e.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, e.Key)
		}
		if e.Kind == "" {
			e.Kind = KindArtifact
		}
		if e.Family == "" {
			e.Family = string(e.Key)
		}
		c.entries[e.Key] = e
	}
	return c, nil
}

// document is the JSON layout of a catalog file.
type document struct {
	Items []Entry `json:"items"`
}

// Decode reads a JSON catalog document.
func Decode(r io.Reader) (*Catalog, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return New(doc.Items)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every entry ordered by key.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Lookup returns the entry for key.
func (c *Catalog) Lookup(key artifact.Key) (Entry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Effects returns the effects of key, or zero effects for unknown keys.
func (c *Catalog) Effects(key artifact.Key) Effects {
	return c.entries[key].Effects
}

// Item resolves key into an item of the given kind.
func (c *Catalog) Item(key artifact.Key, kind Kind) (artifact.Item, error) {
	e, ok := c.entries[key]
	if !ok {
		return artifact.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, key)
	}
	if e.Kind != kind {
		return artifact.Item{}, fmt.Errorf("%w: %s is a %s, not a %s", ErrWrongKind, key, e.Kind, kind)
	}
	return e.Item(), nil
}

// Items resolves every key into an item of the given kind.
func (c *Catalog) Items(keys []artifact.Key, kind Kind) ([]artifact.Item, error) {
	items := make([]artifact.Item, 0, len(keys))
	for _, k := range keys {
		item, err := c.Item(k, kind)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Artifact resolves a host and its stones into an artifact.
func (c *Catalog) Artifact(host artifact.Key, stones []artifact.Key) (artifact.Artifact, error) {
	h, err := c.Item(host, KindArtifact)
	if err != nil {
		return artifact.Artifact{}, err
	}
	if len(stones) > h.Slots {
		return artifact.Artifact{}, fmt.Errorf("%w: %s has %d slots, got %d stones", ErrTooManyStones, host, h.Slots, len(stones))
	}
	s, err := c.Items(stones, KindStone)
	if err != nil {
		return artifact.Artifact{}, err
	}
	return artifact.New(h, s...), nil
}
