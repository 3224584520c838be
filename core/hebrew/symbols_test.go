package hebrew

import "testing"

func TestIsLetter(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'א', true},
		{'ת', true},
		{'ך', true},
		{Vav, true},
		{Dagesh, false},
		{Maqaf, false},
		{Geresh, false},
		{'a', false},
		{'1', false},
		{' ', false},
	}

	for _, tt := range tests {
		if got := IsLetter(tt.r); got != tt.want {
			t.Errorf("IsLetter(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsDiacritic(t *testing.T) {
	marks := []rune{Sheva, HatafQamats, Hiriq, Holam, HolamHaserOfVav, Dagesh, Meteg, Rafe, ShinDot, SinDot, QamatsQatan, '\u0591'}
	for _, m := range marks {
		if !IsDiacritic(m) {
			t.Errorf("IsDiacritic(%U) = false, want true", m)
		}
	}

	notMarks := []rune{Maqaf, '\u05C0', '\u05C3', Geresh, Gershayim, Apostrophe, 'ש', 'x'}
	for _, r := range notMarks {
		if IsDiacritic(r) {
			t.Errorf("IsDiacritic(%U) = true, want false", r)
		}
	}
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "דוד", "דוד"},
		{"pointed", "דָּוִד", "דוד"},
		{"keeps punctuation", "שָׁלוֹם־ר'", "שלום־ר'"},
		{"non-hebrew untouched", "abc 123", "abc 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDiacritics(tt.in); got != tt.want {
				t.Errorf("StripDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContainsNonStressedO(t *testing.T) {
	tests := []struct {
		name  string
		marks []rune
		want  bool
	}{
		{"nil", nil, false},
		{"holam", []rune{Holam}, true},
		{"holam haser", []rune{HolamHaserOfVav}, true},
		{"qamats qatan with dagesh", []rune{Dagesh, QamatsQatan}, true},
		{"hataf qamats", []rune{HatafQamats}, true},
		{"qamats gadol", []rune{Qamats}, false},
		{"dagesh only", []rune{Dagesh}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsNonStressedO(tt.marks); got != tt.want {
				t.Errorf("ContainsNonStressedO(%q) = %v, want %v", string(tt.marks), got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"double geresh", "צה׳׳ל", "צה.ל"},
		{"double apostrophe", "צה''ל", "צה.ל"},
		{"quotation mark", `צה"ל`, "צה.ל"},
		{"gershayim", "צה״ל", "צה.ל"},
		{"hyphen", "בית-ספר", "בית־ספר"},
		{"single geresh kept", "ג׳ירפה", "ג׳ירפה"},
		{"single apostrophe kept", "ג'ירפה", "ג'ירפה"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsMater(t *testing.T) {
	if !IsMater(Vav) || !IsMater(Yud) {
		t.Error("vav and yud are matres lectionis")
	}
	if IsMater('ה') || IsMater('א') {
		t.Error("he and alef are not treated as matres lectionis")
	}
}
