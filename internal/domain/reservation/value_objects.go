package reservation

import (
	"crypto/subtle"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinNicknameLength   = 2
	MaxNicknameLength   = 50
	MinHolderNameLength = 2
	MaxHolderNameLength = 50
	MinHolderIDDigits   = 6
	MaxHolderIDDigits   = 20
	MaxPhoneLength      = 20
	MinPurposeLength    = 4
	MaxPurposeLength    = 500
)

var (
	phonePattern    = regexp.MustCompile(`^01[016789]-\d{3,4}-\d{4}$`)
	holderIDPattern = regexp.MustCompile(`^\d+$`)
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot only checks ordering; window rules need a clock and live in Window.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps is the half-open interval test used by the overlap query.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Holder identifies the person who made a reservation. Name and ID double as
// the cancellation credentials.
type Holder struct {
	nickname string
	name     string
	id       string
	phone    string
}

func NewHolder(nickname, name, id, phone string) (Holder, error) {
	nickname = strings.TrimSpace(nickname)
	name = strings.TrimSpace(name)
	id = strings.TrimSpace(id)
	phone = strings.TrimSpace(phone)

	if !lengthBetween(nickname, MinNicknameLength, MaxNicknameLength) {
		return Holder{}, ErrInvalidNickname
	}
	if !lengthBetween(name, MinHolderNameLength, MaxHolderNameLength) {
		return Holder{}, ErrInvalidHolderName
	}
	if !holderIDPattern.MatchString(id) || !lengthBetween(id, MinHolderIDDigits, MaxHolderIDDigits) {
		return Holder{}, ErrInvalidHolderID
	}
	if len(phone) > MaxPhoneLength || !phonePattern.MatchString(phone) {
		return Holder{}, ErrInvalidPhone
	}

	return Holder{nickname: nickname, name: name, id: id, phone: phone}, nil
}

func ReconstructHolder(nickname, name, id, phone string) Holder {
	return Holder{nickname: nickname, name: name, id: id, phone: phone}
}

func (h Holder) Nickname() string { return h.nickname }
func (h Holder) Name() string     { return h.name }
func (h Holder) ID() string       { return h.id }
func (h Holder) Phone() string    { return h.phone }

// Matches compares cancellation credentials in constant time.
func (h Holder) Matches(name, id string) bool {
	nameOK := subtle.ConstantTimeCompare([]byte(h.name), []byte(strings.TrimSpace(name))) == 1
	idOK := subtle.ConstantTimeCompare([]byte(h.id), []byte(strings.TrimSpace(id))) == 1
	return nameOK && idOK
}

type Purpose struct {
	value string
}

func NewPurpose(value string) (Purpose, error) {
	value = strings.TrimSpace(value)
	if !lengthBetween(value, MinPurposeLength, MaxPurposeLength) {
		return Purpose{}, ErrInvalidPurpose
	}
	return Purpose{value: value}, nil
}

func ReconstructPurpose(value string) Purpose {
	return Purpose{value: value}
}

func (p Purpose) String() string {
	return p.value
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

// IsValidPhone reports whether s is a Korean mobile number in 010-1234-5678 form.
func IsValidPhone(s string) bool {
	return len(s) <= MaxPhoneLength && phonePattern.MatchString(s)
}

func IsDigits(s string) bool {
	return holderIDPattern.MatchString(s)
}
