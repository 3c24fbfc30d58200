package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, v := range []string{"j", "json"} {
		f, err := ParseFormat(v)
		if err != nil || f != JSONFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", v, f, err)
		}
	}
	for _, v := range []string{"y", "yaml", "yml"} {
		f, err := ParseFormat(v)
		if err != nil || f != YAMLFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", v, f, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"tokens.json":        JSONFormat,
		"colors.tokens.yaml": YAMLFormat,
		"a.yml":              YAMLFormat,
		"-":                  JSONFormat,
	}
	for p, want := range tests {
		if got := FromPath(p); got != want {
			t.Errorf("FromPath(%q) = %s, want %s", p, got, want)
		}
	}
}
