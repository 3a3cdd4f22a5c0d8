package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form.
const DateLayout = "2006-01-02"

// Date is a calendar date. It travels as YYYY-MM-DD in JSON and accepts a few
// other common layouts on input.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	DateLayout,
	"02-01-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// DateOf truncates t to midnight UTC of its calendar day. Stored dates and
// date query arguments both go through it so equality lookups line up.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewDate(t time.Time) Date {
	return Date{Time: DateOf(t)}
}

// ParseDate parses s with the accepted layouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse date: %s", s)
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(DateLayout)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date format (string expected): %w", err)
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.String())
}
