// Package dates provides month-granularity arithmetic over "YYYY-MM" strings.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// WeeksPerMonth is the average number of weeks in a calendar month.
const WeeksPerMonth = 4.345

// YearMonth is a calendar month.
type YearMonth struct {
	Year  int
	Month int
}

// ParseYearMonth parses a strict "YYYY-MM" string. Anything else returns false.
func ParseYearMonth(s string) (YearMonth, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[4] != '-' {
		return YearMonth{}, false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil || year <= 0 || strings.ContainsAny(s[:4], "+-") {
		return YearMonth{}, false
	}
	month, err := strconv.Atoi(s[5:])
	if err != nil || month < 1 || month > 12 || strings.ContainsAny(s[5:], "+-") {
		return YearMonth{}, false
	}
	return YearMonth{Year: year, Month: month}, true
}

// FromTime returns the month containing t.
func FromTime(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// Index returns a monotonically increasing month number.
func (ym YearMonth) Index() int {
	return ym.Year*12 + ym.Month - 1
}

// AddMonths returns ym shifted by n months.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Index() + n
	return YearMonth{Year: idx / 12, Month: idx%12 + 1}
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Index() < other.Index()
}

// String formats ym as "YYYY-MM".
func (ym YearMonth) String() string {
	return strconv.Itoa(ym.Year) + "-" + pad2(ym.Month)
}

// Span is a resolved month range.
type Span struct {
	Start YearMonth
	End   YearMonth
}

// Months returns the whole months covered by the span, never negative.
func (s Span) Months() int {
	return max(s.End.Index()-s.Start.Index(), 0)
}

// ResolveSpan resolves a start/end pair against now. A missing or malformed
// start yields false. An empty end, or current=true, ends the span at now.
// A present but malformed end yields false.
func ResolveSpan(start, end string, current bool, now time.Time) (Span, bool) {
	s, ok := ParseYearMonth(start)
	if !ok {
		return Span{}, false
	}
	if current || strings.TrimSpace(end) == "" {
		return Span{Start: s, End: FromTime(now)}, true
	}
	e, ok := ParseYearMonth(end)
	if !ok {
		return Span{}, false
	}
	return Span{Start: s, End: e}, true
}

// MonthsBetween returns the whole months between start and end (or now when
// current is set or end is empty). Malformed or missing input yields 0.
func MonthsBetween(start, end string, current bool, now time.Time) int {
	span, ok := ResolveSpan(start, end, current, now)
	if !ok {
		return 0
	}
	return span.Months()
}

// MonthsSince returns the months from ym to now, floored at zero.
func MonthsSince(ym YearMonth, now time.Time) int {
	return max(FromTime(now).Index()-ym.Index(), 0)
}

// OverlapMonths returns how many months of a fall inside b.
func OverlapMonths(a, b Span) int {
	lo := max(a.Start.Index(), b.Start.Index())
	hi := min(a.End.Index(), b.End.Index())
	return max(hi-lo, 0)
}

// Contains reports whether ym falls within the span, inclusive.
func (s Span) Contains(ym YearMonth) bool {
	return ym.Index() >= s.Start.Index() && ym.Index() <= s.End.Index()
}

// TrailingWindow returns the span [now-months, now].
func TrailingWindow(now time.Time, months int) Span {
	end := FromTime(now)
	return Span{Start: end.AddMonths(-months), End: end}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
