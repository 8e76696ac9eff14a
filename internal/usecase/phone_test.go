package usecase

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0991234567", "265991234567", true},
		{"991234567", "265991234567", true},
		{"+265 88 123 4567", "265881234567", true},
		{"265-77-123-4567", "265771234567", true},
		{"0981234567", "265981234567", true},
		{"123", "", false},
		{"0661234567", "", false},
		{"09912345678", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizePhone(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("NormalizePhone(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	if got := MaskPhone("265991234567"); got != "265******567" {
		t.Fatalf("unexpected mask: %s", got)
	}
	if got := MaskPhone("123"); got != "***" {
		t.Fatalf("unexpected mask for short input: %s", got)
	}
}
