package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// MomentLayout is the only accepted textual form of a Moment.
const MomentLayout = "DD-MM HH:MM"

// Moments are parsed inside 1900, a non-leap year, so 29-02 is rejected.
const (
	momentParseYear  = "1900 "
	momentTimeLayout = "2006 02-01 15:04"
)

var momentPattern = regexp.MustCompile(`^\d{2}-\d{2} \d{2}:\d{2}$`)

// Moment is a calendar instant without a year: day, month, hour and minute.
//
// Because there is no year, a range that crosses New Year (start in December,
// due in January) compares as due-before-start. This is a known limitation.
type Moment struct {
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// ParseMoment converts "DD-MM HH:MM" text into a Moment. Every field must be
// two digits and form a valid calendar value of a non-leap year.
func ParseMoment(text string) (Moment, error) {
	if !momentPattern.MatchString(text) {
		return Moment{}, ErrInvalidDateFormat
	}
	t, err := time.Parse(momentTimeLayout, momentParseYear+text)
	if err != nil {
		return Moment{}, ErrInvalidDateFormat
	}
	return Moment{
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}, nil
}

// MustParseMoment is like ParseMoment but panics on error.
func MustParseMoment(text string) Moment {
	m, err := ParseMoment(text)
	if err != nil {
		panic(err)
	}
	return m
}

// Compare returns -1, 0 or +1 ordering m against other chronologically.
func (m Moment) Compare(other Moment) int {
	a, b := m.ordinal(), other.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (m Moment) Before(other Moment) bool {
	return m.Compare(other) < 0
}

func (m Moment) String() string {
	return fmt.Sprintf("%02d-%02d %02d:%02d", m.Day, int(m.Month), m.Hour, m.Minute)
}

func (m Moment) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Moment) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseMoment(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Moment) ordinal() int {
	return ((int(m.Month)*32+m.Day)*24+m.Hour)*60 + m.Minute
}
