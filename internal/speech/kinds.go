// Package speech defines the closed choice sets a wedding speech is built from
// and the validated inputs that flow into prompts and storage.
package speech

import (
	"errors"
	"fmt"
)

// ErrInvalidChoice is wrapped by every Parse function when a value is not part
// of its closed set.
var ErrInvalidChoice = errors.New("invalid choice")

// Sex is the speaker's sex. The zero value means unspecified, which only occurs
// for users first seen through the identity provider.
type Sex string

const (
	SexUnspecified Sex = ""
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
)

// Sexes lists the selectable values in display order.
var Sexes = []Sex{SexMale, SexFemale}

// ParseSex returns the Sex for s or an error wrapping ErrInvalidChoice.
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), nil
	default:
		return SexUnspecified, fmt.Errorf("%w: sex %q", ErrInvalidChoice, s)
	}
}

// Label is the human-readable form used in forms.
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Unspecified"
	}
}

// DefaultType is the speech type preselected when the speaker picks a sex.
func (s Sex) DefaultType() Type {
	switch s {
	case SexFemale:
		return TypeBridesmaid
	case SexMale:
		return TypeBestMan
	default:
		return TypeBestMan
	}
}

// Type is the kind of wedding speech.
type Type string

const (
	TypeBestMan    Type = "Best Man"
	TypeBridesmaid Type = "Bridesmaid"
)

// Types lists the selectable speech types.
var Types = []Type{TypeBestMan, TypeBridesmaid}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeBestMan, TypeBridesmaid:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: speech type %q", ErrInvalidChoice, s)
	}
}

// Label is the option text shown in the speech type select.
func (t Type) Label() string {
	switch t {
	case TypeBestMan:
		return "Best Man Speech"
	case TypeBridesmaid:
		return "Bridesmaid Speech"
	default:
		return string(t)
	}
}

// Tone is the requested emotional register of the speech.
type Tone string

const (
	ToneHeartfeltHumorous    Tone = "Heartfelt and Humorous"
	ToneSentimentalEmotional Tone = "Sentimental and Emotional"
	ToneFunnyLighthearted    Tone = "Funny and Lighthearted"
	ToneFormalElegant        Tone = "Formal and Elegant"
	ToneCasualPersonal       Tone = "Casual and Personal"
)

// Tones lists the selectable tones; the first is the form default.
var Tones = []Tone{
	ToneHeartfeltHumorous,
	ToneSentimentalEmotional,
	ToneFunnyLighthearted,
	ToneFormalElegant,
	ToneCasualPersonal,
}

func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneHeartfeltHumorous, ToneSentimentalEmotional, ToneFunnyLighthearted,
		ToneFormalElegant, ToneCasualPersonal:
		return Tone(s), nil
	default:
		return "", fmt.Errorf("%w: tone %q", ErrInvalidChoice, s)
	}
}

// Length is the requested delivery length.
type Length string

const (
	LengthShort  Length = "Short (2-3 minutes)"
	LengthMedium Length = "Medium (3-4 minutes)"
	LengthLong   Length = "Long (4-5 minutes)"
)

// Lengths lists the selectable lengths.
var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

func ParseLength(s string) (Length, error) {
	switch Length(s) {
	case LengthShort, LengthMedium, LengthLong:
		return Length(s), nil
	default:
		return "", fmt.Errorf("%w: length %q", ErrInvalidChoice, s)
	}
}

// Mode selects between a conversational answer and a rewrite of the selection.
type Mode string

const (
	ModeChat    Mode = "chat"
	ModeRewrite Mode = "rewrite"
)

// ParseMode maps s to a Mode. An empty string is the chat default.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeChat, nil
	case ModeChat, ModeRewrite:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: mode %q", ErrInvalidChoice, s)
	}
}
