package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompterAcceptsYes(t *testing.T) {
	for _, input := range []string{"y\n", "yes\n", "YES\n", " y \n"} {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)
		ok, err := p.Confirm("systemctl restart myapp", "")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", input, err)
		}
		if !ok {
			t.Fatalf("Confirm(%q) = false, want true", input)
		}
		if !strings.Contains(out.String(), "systemctl restart myapp") {
			t.Fatal("prompt did not show the command")
		}
	}
}

func TestPrompterDeclinesEverythingElse(t *testing.T) {
	for _, input := range []string{"n\n", "no\n", "\n", "maybe\n"} {
		p := NewPrompter(strings.NewReader(input), &bytes.Buffer{})
		ok, err := p.Confirm("rm -rf ./build", "")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", input, err)
		}
		if ok {
			t.Fatalf("Confirm(%q) = true, want false", input)
		}
	}
}

func TestPrompterDeclinesOnEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	ok, err := p.Confirm("echo hi", "")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if ok {
		t.Fatal("EOF must decline")
	}
}
