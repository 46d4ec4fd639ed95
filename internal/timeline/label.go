package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghaliela/cochrono/internal/i18n"
)

// FormatLabel renders the display label of the block [start, end] as shown
// in a view at level l.
//
//   - Epoch: ordinal millennium ("4th Millennium BC") when start is a
//     multiple of 1000, otherwise a "start - end" range with eras.
//   - Millennium: ordinal century ("20th Century AD").
//   - Century: decade ("1980s", "500 BCs").
//   - Decade: bare year ("1984", "500 BC").
//   - Year: month name of start (1..12).
func FormatLabel(start, end int, l Level, tr *i18n.Translations) string {
	switch l {
	case Epoch:
		if start%1000 == 0 {
			idx := abs(start) / 1000
			if start >= 0 {
				idx++
			}
			return fmt.Sprintf("%d%s %s %s", idx, millenniumSuffix(idx, tr.Language()), tr.T(i18n.KeyMillennium), era(start, tr))
		}
		return fmt.Sprintf("%d %s - %d %s", abs(start), era(start, tr), abs(end), era(end, tr))
	case Millennium:
		var c int
		if start < 0 {
			c = (abs(start) + 99) / 100
		} else {
			c = start/100 + 1
		}
		return fmt.Sprintf("%d%s %s %s", c, centurySuffix(c, tr.Language()), tr.T(i18n.KeyCentury), era(start, tr))
	case Century:
		if start < 0 {
			return fmt.Sprintf("%d %ss", abs(start), tr.T(i18n.KeyBC))
		}
		return fmt.Sprintf("%ds", start)
	case Decade:
		return FormatYear(start, tr)
	case Year:
		return tr.Month(start)
	}
	return strconv.Itoa(start)
}

// FormatYear renders a year the way event cards show it: "500 BC" for
// negative years and the bare number otherwise.
func FormatYear(year int, tr *i18n.Translations) string {
	if year < 0 {
		return fmt.Sprintf("%d %s", abs(year), tr.T(i18n.KeyBC))
	}
	return strconv.Itoa(year)
}

// FormatFullDate renders the complete date of an event with its era.
// French puts the day first. Absent month or day (0) are omitted.
func FormatFullDate(year, month, day int, tr *i18n.Translations) string {
	y := fmt.Sprintf("%d %s", abs(year), era(year, tr))

	var m, d string
	if month != 0 {
		m = tr.Month(month)
	}
	if day != 0 {
		d = strconv.Itoa(day)
	}

	parts := []string{m, d, y}
	if tr.Language() == i18n.French {
		parts = []string{d, m, y}
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Era classifies a year into one of the broad historical periods.
type Era int

const (
	Ancient Era = iota
	Medieval
	Modern
)

// EraOf returns the period of year: ancient before 500, medieval before
// 1500, modern after.
func EraOf(year int) Era {
	switch {
	case year < 500:
		return Ancient
	case year < 1500:
		return Medieval
	}
	return Modern
}

// Label returns the localized name of the era.
func (e Era) Label(tr *i18n.Translations) string {
	switch e {
	case Ancient:
		return tr.T(i18n.KeyAncientEra)
	case Medieval:
		return tr.T(i18n.KeyMedievalPeriod)
	}
	return tr.T(i18n.KeyModernEra)
}

func era(year int, tr *i18n.Translations) string {
	if year < 0 {
		return tr.T(i18n.KeyBC)
	}
	return tr.T(i18n.KeyAD)
}

// millenniumSuffix applies the ordinal suffix to the literal index, with no
// teen handling.
func millenniumSuffix(n int, lang i18n.Language) string {
	if lang == i18n.French {
		return frenchSuffix(n)
	}
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// centurySuffix is the English ordinal suffix with the 11th/12th/13th
// exception.
func centurySuffix(n int, lang i18n.Language) string {
	if lang == i18n.French {
		return frenchSuffix(n)
	}
	if t := n % 100; t >= 11 && t <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func frenchSuffix(n int) string {
	if n == 1 {
		return "er"
	}
	return "ème"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
