package mypage

import (
	"fmt"
	"strings"
	"time"

	"github.com/nfrund/flightdesk/internal/domain"
)

// FormatPhone renders a phone number as three dash-separated groups, e.g.
// "01022223333" becomes "010-2222-3333". Values shorter than ten characters
// are returned unchanged. The input is not checked for digits.
func FormatPhone(phone string) string {
	r := []rune(phone)
	if len(r) < 10 {
		return phone
	}
	return string(r[:3]) + "-" + string(r[3:7]) + "-" + string(r[7:])
}

// localDateLayouts are calendar dates without zone; they are read in local time.
var localDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006.01.02",
}

// FormatBirthday renders a date as "{year}년 {month}월 {day}일" using the local
// calendar. Unparseable input is returned unchanged.
func FormatBirthday(birthday string) string {
	t, ok := parseDate(strings.TrimSpace(birthday))
	if !ok {
		return birthday
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), true
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DepartureDate returns the date portion of an ISO-8601 timestamp.
func DepartureDate(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}

// JoinSeats lists seat identifiers separated by ", ".
func JoinSeats(seats []domain.Ident) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
