// Package timeago renders an absolute timestamp as a coarse human-readable
// age ("3 dias atrás"). Locale strings are data, not logic: swap the Locale
// to change language without touching the selection rules.
package timeago

import (
	"fmt"
	"time"
)

// Interval maps a unit label to its length in seconds. Tables must be ordered
// largest unit first.
type Interval struct {
	Label   string
	Seconds int64
}

// Locale bundles the unit table with the surrounding phrase parts.
// IrregularPlurals maps a label to the stem used when the count is not 1,
// before the plural suffix is applied.
type Locale struct {
	Intervals        []Interval
	IrregularPlurals map[string]string
	PluralSuffix     string
	Suffix           string
	Fallback         string
}

// PortugueseBR matches the site's original strings, including the irregular
// "mês" → "meses" plural.
var PortugueseBR = Locale{
	Intervals: []Interval{
		{Label: "ano", Seconds: 31536000},
		{Label: "mês", Seconds: 2592000},
		{Label: "dia", Seconds: 86400},
		{Label: "hora", Seconds: 3600},
		{Label: "minuto", Seconds: 60},
		{Label: "segundo", Seconds: 1},
	},
	IrregularPlurals: map[string]string{"mês": "mese"},
	PluralSuffix:     "s",
	Suffix:           "atrás",
	Fallback:         "Recentemente",
}

// Format picks the largest unit whose length is strictly less than the
// elapsed seconds between date and now, and renders the floored count in it.
// If no unit qualifies (under a second of age, or a date in the future) the
// locale fallback is returned.
func (l Locale) Format(date, now time.Time) string {
	elapsed := int64(now.Sub(date).Seconds())

	for _, iv := range l.Intervals {
		if iv.Seconds >= elapsed {
			continue
		}
		count := elapsed / iv.Seconds
		label := iv.Label
		if count != 1 {
			if stem, ok := l.IrregularPlurals[label]; ok {
				label = stem
			}
			label += l.PluralSuffix
		}
		return fmt.Sprintf("%d %s %s", count, label, l.Suffix)
	}
	return l.Fallback
}

// Since formats date against the current wall clock in the pt-BR locale.
func Since(date time.Time) string {
	return PortugueseBR.Format(date, time.Now())
}
