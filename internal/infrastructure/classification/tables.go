package classification

import (
	"fmt"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/pkg/utils"
)

const (
	week  = 7 * 24 * 60 * 60
	month = 30 * 24 * 60 * 60
)

// Tables is the immutable set of classification tables. It implements
// port.ClassificationTables and is safe for concurrent reads.
type Tables struct {
	logger  port.Logger
	entries map[string]map[string]entity.ClassificationEntry
}

// NewTables builds the tables from the built-in defaults merged with any
// overrides. Overrides are applied in order; later explicit fields win.
func NewTables(log port.Logger, overrides ...map[string]map[string]entity.ClassificationEntry) *Tables {
	t := &Tables{
		logger:  log,
		entries: make(map[string]map[string]entity.ClassificationEntry, len(defaultTables)),
	}
	t.merge(defaultTables)
	for _, o := range overrides {
		t.merge(o)
	}

	total := 0
	for _, c := range t.entries {
		total += len(c)
	}
	t.logger.Info("Classification tables initialized", "categories", len(t.entries), "entries", total)
	return t
}

func (t *Tables) merge(src map[string]map[string]entity.ClassificationEntry) {
	for category, entries := range src {
		dst, ok := t.entries[category]
		if !ok {
			dst = make(map[string]entity.ClassificationEntry, len(entries))
			t.entries[category] = dst
		}
		for key, entry := range entries {
			if base, exists := dst[key]; exists {
				t.logger.Debug("Overriding classification entry", "category", category, "key", key)
				entry = mergeEntry(base, entry)
			}
			entry.Category = category
			entry.Key = key
			dst[key] = entry
		}
	}
}

func mergeEntry(base, override entity.ClassificationEntry) entity.ClassificationEntry {
	if override.Label != "" {
		base.Label = override.Label
	}
	if override.Description != "" {
		base.Description = override.Description
	}
	if override.Sentiment != "" {
		base.Sentiment = override.Sentiment
	}
	if override.SecondLine != "" {
		base.SecondLine = override.SecondLine
	}
	if override.Risks != nil {
		base.Risks = override.Risks
	}
	if override.References != nil {
		base.References = override.References
	}
	return base
}

// Lookup returns a copy of the entry stored under category/key.
func (t *Tables) Lookup(category, key string) (entity.ClassificationEntry, error) {
	entries, ok := t.entries[category]
	if !ok {
		return entity.ClassificationEntry{}, fmt.Errorf("%w: category %q", entity.ErrUnknownKey, category)
	}
	entry, ok := entries[key]
	if !ok {
		return entity.ClassificationEntry{}, fmt.Errorf("%w: %s.%s", entity.ErrUnknownKey, category, key)
	}
	entry.Risks = append([]entity.Risk(nil), entry.Risks...)
	entry.References = append([]entity.Reference(nil), entry.References...)
	return entry, nil
}

// Keys returns the sorted keys of a category.
func (t *Tables) Keys(category string) []string {
	return utils.SortedKeys(t.entries[category])
}

// Categories returns the sorted category names.
func (t *Tables) Categories() []string {
	return utils.SortedKeys(t.entries)
}

// ExitWindow derives the exit window risk view entry. The window is the time
// between an upgrade being announced and it taking effect, minus the time a
// withdrawal needs to complete.
func (t *Tables) ExitWindow(upgradeDelaySeconds, exitDelaySeconds int64) entity.RiskViewEntry {
	entry := entity.RiskViewEntry{
		Sources: []entity.Reference{},
		ExitWindow: &entity.ExitWindowParams{
			UpgradeDelaySeconds: upgradeDelaySeconds,
			ExitDelaySeconds:    exitDelaySeconds,
		},
	}

	window := upgradeDelaySeconds - exitDelaySeconds
	switch {
	case upgradeDelaySeconds <= 0:
		entry.Value = "None"
		entry.Sentiment = entity.SentimentBad
		entry.Description = "There is no window for users to exit in case of an unwanted regular upgrade since contracts are instantly upgradable."
	case window <= 0:
		entry.Value = "None"
		entry.Sentiment = entity.SentimentBad
		entry.Description = fmt.Sprintf(
			"There is no window for users to exit in case of an unwanted upgrade since the upgrade delay (%s) is not longer than the withdrawal delay (%s).",
			utils.FormatSeconds(upgradeDelaySeconds), utils.FormatSeconds(exitDelaySeconds))
	default:
		entry.Value = utils.FormatSeconds(window)
		entry.Description = fmt.Sprintf(
			"Users have %s to exit funds in case of an unwanted upgrade. There is a %s delay before an upgrade is applied, and withdrawals can take up to %s to be processed.",
			utils.FormatSeconds(window), utils.FormatSeconds(upgradeDelaySeconds), utils.FormatSeconds(exitDelaySeconds))
		switch {
		case window < week:
			entry.Sentiment = entity.SentimentBad
		case window < month:
			entry.Sentiment = entity.SentimentWarning
		default:
			entry.Sentiment = entity.SentimentGood
		}
	}
	return entry
}
