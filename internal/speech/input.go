package speech

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is wrapped when a required field is blank.
var ErrMissingField = errors.New("missing required field")

// Fields is the untyped form of a generation request as it arrives from a
// form post or a JSON body. Name is accepted as an alternative to
// FirstName/LastName.
type Fields struct {
	Name         string
	FirstName    string
	LastName     string
	Email        string
	Sex          string
	SpeechType   string
	GroomName    string
	BrideName    string
	Relationship string
	Stories      string
	Tone         string
	Length       string
}

// GenerateInput is a fully validated generation request.
type GenerateInput struct {
	FirstName    string
	LastName     string
	Email        string
	Sex          Sex
	Type         Type
	GroomName    string
	BrideName    string
	Relationship string
	Stories      string
	Tone         Tone
	Length       Length
}

// FullName joins first and last name the way the speaker is addressed in prompts.
func (in GenerateInput) FullName() string {
	return strings.TrimSpace(in.FirstName + " " + in.LastName)
}

// SplitName splits a single display name at the first space.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	first, last, _ = strings.Cut(name, " ")
	return first, strings.TrimSpace(last)
}

// Parse validates f and converts it into a GenerateInput. All problems are
// reported together. Names and email are trimmed; the couple, relationship
// and stories are kept exactly as given and only checked for content.
func (f Fields) Parse() (GenerateInput, error) {
	first, last := strings.TrimSpace(f.FirstName), strings.TrimSpace(f.LastName)
	if first == "" && last == "" {
		first, last = SplitName(f.Name)
	}

	in := GenerateInput{
		FirstName:    first,
		LastName:     last,
		Email:        strings.TrimSpace(f.Email),
		GroomName:    f.GroomName,
		BrideName:    f.BrideName,
		Relationship: f.Relationship,
		Stories:      f.Stories,
	}

	var errs []error
	required := []struct {
		name  string
		value string
	}{
		{"firstName", in.FirstName},
		{"email", in.Email},
		{"groomName", in.GroomName},
		{"brideName", in.BrideName},
		{"relationship", in.Relationship},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, r.name))
		}
	}

	var err error
	if in.Sex, err = ParseSex(f.Sex); err != nil {
		errs = append(errs, err)
	}
	if in.Type, err = ParseType(f.SpeechType); err != nil {
		errs = append(errs, err)
	}
	if in.Tone, err = ParseTone(f.Tone); err != nil {
		errs = append(errs, err)
	}
	if in.Length, err = ParseLength(f.Length); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return GenerateInput{}, errors.Join(errs...)
	}
	return in, nil
}
