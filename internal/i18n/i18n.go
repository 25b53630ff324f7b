// Package i18n holds the page labels and picks a language per request.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the page languages. The first entry is the fallback.
var Supported = []language.Tag{language.Korean, language.English}

// Label keys. The English text doubles as the key.
const (
	MyPage         = "My Page"
	EditProfile    = "Edit profile"
	Email          = "Email:"
	Name           = "Name:"
	Phone          = "Phone:"
	Birthday       = "Birthday:"
	Address        = "Address:"
	Reservations   = "Reservations"
	ReservationNo  = "Reservation no.: %s"
	Flight         = "Flight:"
	Route          = "From / To:"
	DepartureDate  = "Departure date:"
	Seats          = "Seats:"
	NoReservations = "You have no reservations."
	Loading        = "Loading..."
	NotAvailable   = "N/A"
	LoginRequired  = "Please log in to see your reservations."
)

var korean = map[string]string{
	MyPage:         "마이 페이지",
	EditProfile:    "내정보 수정",
	Email:          "이메일:",
	Name:           "이름:",
	Phone:          "전화번호:",
	Birthday:       "생년월일:",
	Address:        "주소:",
	Reservations:   "예약 목록",
	ReservationNo:  "예약 번호: %s",
	Flight:         "항공편:",
	Route:          "출발지 / 도착지:",
	DepartureDate:  "출발 날짜:",
	Seats:          "좌석 번호:",
	NoReservations: "현재 예약이 없습니다.",
	LoginRequired:  "예약 내역을 보려면 로그인하세요.",
}

var (
	cat     = build()
	matcher = language.NewMatcher(Supported)
)

func build() catalog.Catalog {
	b := catalog.NewBuilder()
	for key, msg := range korean {
		if err := b.SetString(language.Korean, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Printer renders labels in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// For returns a printer for the best supported match of the given
// Accept-Language style preferences.
func For(prefs ...string) *Printer {
	_, idx := language.MatchStrings(matcher, prefs...)
	tag := Supported[idx]
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Lang returns the BCP 47 tag of the printer's language.
func (p *Printer) Lang() string {
	return p.tag.String()
}

// T translates key, substituting args into its verbs.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
