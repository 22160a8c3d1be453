package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	yearRangePattern = regexp.MustCompile(
		`(?i)\b(\d{4})\s*(?:-|–|a|até|to)\s*(\d{4}|presente|present|atual|current)\b`)
	monthYearPattern = regexp.MustCompile(
		`(?i)\b(jan|fev|feb|mar|abr|apr|mai|may|jun|jul|ago|aug|set|sep|out|oct|nov|dez|dec)[a-zçê]*\.?\s*(?:de\s+|/|,\s*)?(\d{4})`)
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	yearPattern        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// monthAbbrevs covers Portuguese and English three-letter prefixes
var monthAbbrevs = map[string]time.Month{
	"jan": time.January,
	"fev": time.February, "feb": time.February,
	"mar": time.March,
	"abr": time.April, "apr": time.April,
	"mai": time.May, "may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August, "aug": time.August,
	"set": time.September, "sep": time.September,
	"out": time.October, "oct": time.October,
	"nov": time.November,
	"dez": time.December, "dec": time.December,
}

var presentMarkers = []string{"presente", "present", "atual", "current"}

func isPresentMarker(s string) bool {
	lowered := strings.ToLower(strings.TrimSpace(s))
	for _, m := range presentMarkers {
		if lowered == m {
			return true
		}
	}
	return false
}

// parseFlexibleDate accepts the date shapes that show up in resumes:
// ISO timestamps, year-month, bare years, numeric day/month/year, and
// month-name plus year in Portuguese or English.
func parseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{
		time.RFC3339, "2006-01-02", "2006-01", "01/2006",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if m := numericDatePattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		if month, ok := monthAbbrevs[strings.ToLower(m[1])]; ok {
			year, _ := strconv.Atoi(m[2])
			return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := yearPattern.FindString(s); m != "" && len(s) <= 6 {
		year, _ := strconv.Atoi(m)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// extractDateRange pulls a start/end date pair out of free text. A year
// range wins; otherwise the first and last month-name or numeric dates
// found are used. The end string may be a present marker.
func extractDateRange(text string) (start, end string) {
	if m := yearRangePattern.FindStringSubmatch(text); m != nil {
		end := m[2]
		if isPresentMarker(end) {
			end = "Presente"
		}
		return m[1], end
	}

	dates := monthYearPattern.FindAllString(text, -1)
	if len(dates) == 0 {
		dates = numericDatePattern.FindAllString(text, -1)
	}
	switch len(dates) {
	case 0:
		return "", ""
	case 1:
		lowered := strings.ToLower(text)
		for _, marker := range presentMarkers {
			if strings.Contains(lowered, marker) {
				return dates[0], "Presente"
			}
		}
		return dates[0], ""
	default:
		return dates[0], dates[len(dates)-1]
	}
}
