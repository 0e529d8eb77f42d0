package healthstats

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// FormatDuration renders minutes as "Hh Mm", or "Mm" below one hour.
// Negative input renders as "0m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

type localeLayout struct {
	date string
	time string
}

// order matters: the first entry is the fallback for unmatched locales
var supportedLocales = []struct {
	tag    language.Tag
	layout localeLayout
}{
	{language.AmericanEnglish, localeLayout{date: "Jan 2, 2006", time: "03:04 PM"}},
	{language.BritishEnglish, localeLayout{date: "2 Jan 2006", time: "15:04"}},
	{language.German, localeLayout{date: "02.01.2006", time: "15:04"}},
	{language.French, localeLayout{date: "02/01/2006", time: "15:04"}},
	{language.Japanese, localeLayout{date: "2006/01/02", time: "15:04"}},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supportedLocales))
	for _, l := range supportedLocales {
		tags = append(tags, l.tag)
	}
	return language.NewMatcher(tags)
}()

// Formatter renders timestamps for a fixed locale and time zone.
type Formatter struct {
	locale language.Tag
	layout localeLayout
	loc    *time.Location
}

// NewFormatter builds a Formatter. An empty locale means en-US, a nil tz means UTC.
func NewFormatter(locale string, tz *time.Location) (*Formatter, error) {
	if tz == nil {
		tz = time.UTC
	}

	idx := 0
	if locale = strings.TrimSpace(locale); locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", locale, err)
		}
		_, idx, _ = localeMatcher.Match(tag)
	}

	return &Formatter{
		locale: supportedLocales[idx].tag,
		layout: supportedLocales[idx].layout,
		loc:    tz,
	}, nil
}

// Locale returns the supported locale the formatter settled on.
func (f *Formatter) Locale() string {
	return f.locale.String()
}

func (f *Formatter) FormatDate(t time.Time) string {
	return t.In(f.loc).Format(f.layout.date)
}

func (f *Formatter) FormatTime(t time.Time) string {
	return t.In(f.loc).Format(f.layout.time)
}

var defaultFormatter = &Formatter{
	locale: supportedLocales[0].tag,
	layout: supportedLocales[0].layout,
	loc:    time.UTC,
}

// FormatDate renders t as an en-US date in UTC, e.g. "Jan 15, 2024".
func FormatDate(t time.Time) string {
	return defaultFormatter.FormatDate(t)
}

// FormatTime renders t as an en-US time in UTC, e.g. "02:30 PM".
func FormatTime(t time.Time) string {
	return defaultFormatter.FormatTime(t)
}
