package shorts

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"shortsapi/models"
)

// countUnits maps large-number suffixes to multipliers. Latin
// abbreviations plus the Korean and Japanese units upstream localizes
// counts into.
var countUnits = []struct {
	unit       string
	multiplier float64
}{
	{"k", 1e3},
	{"m", 1e6},
	{"b", 1e9},
	{"천", 1e3},
	{"만", 1e4},
	{"억", 1e8},
	{"万", 1e4},
	{"億", 1e8},
}

var countPattern = regexp.MustCompile(`([0-9][0-9.,]*)\s*([kKmMbB천만억万億]?)`)

// parseHumanCount turns strings like "1,234,567 views", "1.2M" or
// "조회수 52만회" into an integer. Unparseable input resolves to 0.
func parseHumanCount(s string) int64 {
	m := countPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	if m[2] != "" {
		for _, u := range countUnits {
			if strings.EqualFold(u.unit, m[2]) {
				n *= u.multiplier
				break
			}
		}
	}
	if n < 0 {
		return 0
	}
	return int64(math.Round(n))
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration converts "PT1M8S"-style strings to seconds. Missing
// components count as zero; anything else resolves to 0.
func parseISODuration(s string) int64 {
	m := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	var total int64
	for i, mul := range []int64{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0
		}
		total += n * mul
	}
	return total
}

// parseClock converts "M:SS" and "H:MM:SS" strings to seconds.
func parseClock(s string) int64 {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}
	var total int64
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// ageRules maps relative-recency phrases to hours per unit. Evaluated
// in order, first match wins. Minutes precede months so the shared
// prefix cannot misfire, and each language block keeps the same
// smallest-to-largest unit order.
var ageRules = []struct {
	pattern *regexp.Regexp
	hours   float64
}{
	{regexp.MustCompile(`(\d+)\s*minutes?\b`), 1.0 / 60},
	{regexp.MustCompile(`(\d+)\s*hours?\b`), 1},
	{regexp.MustCompile(`(\d+)\s*days?\b`), 24},
	{regexp.MustCompile(`(\d+)\s*weeks?\b`), 168},
	{regexp.MustCompile(`(\d+)\s*months?\b`), 720},
	{regexp.MustCompile(`(\d+)\s*years?\b`), 8760},

	{regexp.MustCompile(`(\d+)\s*분\s*전`), 1.0 / 60},
	{regexp.MustCompile(`(\d+)\s*시간\s*전`), 1},
	{regexp.MustCompile(`(\d+)\s*일\s*전`), 24},
	{regexp.MustCompile(`(\d+)\s*주\s*전`), 168},
	{regexp.MustCompile(`(\d+)\s*개월\s*전`), 720},
	{regexp.MustCompile(`(\d+)\s*년\s*전`), 8760},

	{regexp.MustCompile(`(\d+)\s*分前`), 1.0 / 60},
	{regexp.MustCompile(`(\d+)\s*時間前`), 1},
	{regexp.MustCompile(`(\d+)\s*日前`), 24},
	{regexp.MustCompile(`(\d+)\s*週間前`), 168},
	{regexp.MustCompile(`(\d+)\s*(?:か月|ヶ月|カ月)前`), 720},
	{regexp.MustCompile(`(\d+)\s*年前`), 8760},

	{regexp.MustCompile(`hace\s+(\d+)\s+minutos?`), 1.0 / 60},
	{regexp.MustCompile(`hace\s+(\d+)\s+horas?`), 1},
	{regexp.MustCompile(`hace\s+(\d+)\s+d[ií]as?`), 24},
	{regexp.MustCompile(`hace\s+(\d+)\s+semanas?`), 168},
	{regexp.MustCompile(`hace\s+(\d+)\s+mes(?:es)?`), 720},
	{regexp.MustCompile(`hace\s+(\d+)\s+años?`), 8760},
}

var dateLayouts = []string{
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006-01-02",
	time.RFC3339,
}

// parseAgeHours derives a video's age from its published text: either
// a relative phrase in one of the supported languages or an absolute
// date measured against now. No match resolves to the unknown sentinel.
func parseAgeHours(s string, now time.Time) models.AgeHours {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return models.AgeUnknown
	}
	for _, rule := range ageRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return models.AgeHours(n * rule.hours)
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err != nil {
			continue
		}
		age := now.Sub(t).Hours()
		if age < 0 {
			age = 0
		}
		return models.AgeHours(age)
	}
	return models.AgeUnknown
}
