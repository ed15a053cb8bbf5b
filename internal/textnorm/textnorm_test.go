package textnorm

import "testing"

func TestKey(t *testing.T) {
	tests := map[string]string{
		"Ebó":       "ebo",
		"ebo":       "ebo",
		"OBRIGAÇÃO": "obrigacao",
		"obrigacao": "obrigacao",
		"Búzios":    "buzios",
		"":          "",
	}

	for in, want := range tests {
		if got := Key(in); got != want {
			t.Errorf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestASCII(t *testing.T) {
	if got := ASCII("certidão ñ.pdf"); got != "certidao n.pdf" {
		t.Errorf("ASCII = %q", got)
	}
	if got := ASCII("日本.pdf"); got != ".pdf" {
		t.Errorf("ASCII = %q", got)
	}
}
