package sanitize_test

import (
	"testing"

	"github.com/ngoworks/programhub/internal/app/system/sanitize"
)

func TestText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "community reading circle", "community reading circle"},
		{"tags stripped", "<b>bold</b> statement", "bold statement"},
		{"nested markup", "<div><a href=\"http://x\">link</a> text</div>", "link text"},
		{"whitespace trimmed", "   padded   ", "padded"},
		{"empty", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := sanitize.Text(c.in); got != c.want {
				t.Errorf("Text(%q): got %q, want %q", c.in, got, c.want)
			}
		})
	}
}
