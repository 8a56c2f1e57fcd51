package speech

import (
	"errors"
	"testing"
)

func TestParseChoices(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) error
		input   string
		wantErr bool
	}{
		{"male", func(s string) error { _, err := ParseSex(s); return err }, "male", false},
		{"female", func(s string) error { _, err := ParseSex(s); return err }, "female", false},
		{"sex is case sensitive", func(s string) error { _, err := ParseSex(s); return err }, "Male", true},
		{"empty sex", func(s string) error { _, err := ParseSex(s); return err }, "", true},
		{"best man", func(s string) error { _, err := ParseType(s); return err }, "Best Man", false},
		{"typo type", func(s string) error { _, err := ParseType(s); return err }, "Best-Man", true},
		{"tone", func(s string) error { _, err := ParseTone(s); return err }, "Formal and Elegant", false},
		{"unknown tone", func(s string) error { _, err := ParseTone(s); return err }, "Angry", true},
		{"length", func(s string) error { _, err := ParseLength(s); return err }, "Long (4-5 minutes)", false},
		{"unknown length", func(s string) error { _, err := ParseLength(s); return err }, "Epic", true},
		{"empty mode defaults", func(s string) error { _, err := ParseMode(s); return err }, "", false},
		{"rewrite mode", func(s string) error { _, err := ParseMode(s); return err }, "rewrite", false},
		{"unknown mode", func(s string) error { _, err := ParseMode(s); return err }, "shout", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidChoice) {
					t.Errorf("parse(%q) = %v, want ErrInvalidChoice", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("parse(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

func TestParseModeDefaultsToChat(t *testing.T) {
	m, err := ParseMode("")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}
	if m != ModeChat {
		t.Errorf("mode = %q, want %q", m, ModeChat)
	}
}

func TestSexDefaultType(t *testing.T) {
	if got := SexMale.DefaultType(); got != TypeBestMan {
		t.Errorf("male default = %q, want %q", got, TypeBestMan)
	}
	if got := SexFemale.DefaultType(); got != TypeBridesmaid {
		t.Errorf("female default = %q, want %q", got, TypeBridesmaid)
	}
}

func validFields() Fields {
	return Fields{
		FirstName:    "Tom",
		LastName:     "Baker",
		Email:        "tom@example.com",
		Sex:          "male",
		SpeechType:   "Best Man",
		GroomName:    "John",
		BrideName:    "Sarah",
		Relationship: "college roommate",
		Tone:         "Heartfelt and Humorous",
		Length:       "Medium (3-4 minutes)",
	}
}

func TestFieldsParse(t *testing.T) {
	in, err := validFields().Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.FullName() != "Tom Baker" {
		t.Errorf("FullName = %q, want %q", in.FullName(), "Tom Baker")
	}
	if in.Stories != "" {
		t.Errorf("Stories = %q, want empty", in.Stories)
	}
}

func TestFieldsParse_KeepsContentVerbatim(t *testing.T) {
	f := validFields()
	f.FirstName = "  Tom "
	f.GroomName = " John "
	f.BrideName = "Sarah\n"
	f.Relationship = " college roommate"
	f.Stories = "The road trip.  "

	in, err := f.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.FirstName != "Tom" {
		t.Errorf("FirstName = %q, want trimmed", in.FirstName)
	}
	if in.GroomName != f.GroomName || in.BrideName != f.BrideName ||
		in.Relationship != f.Relationship || in.Stories != f.Stories {
		t.Errorf("content fields changed: %+v", in)
	}
}

func TestFieldsParse_NameFallback(t *testing.T) {
	f := validFields()
	f.FirstName, f.LastName = "", ""
	f.Name = "Mary Jane Watson"

	in, err := f.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.FirstName != "Mary" || in.LastName != "Jane Watson" {
		t.Errorf("names = %q/%q, want Mary/Jane Watson", in.FirstName, in.LastName)
	}
}

func TestFieldsParse_ReportsEveryProblem(t *testing.T) {
	f := validFields()
	f.GroomName = "  "
	f.Tone = "Sarcastic"

	_, err := f.Parse()
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("err = %v, want ErrInvalidChoice", err)
	}
}
