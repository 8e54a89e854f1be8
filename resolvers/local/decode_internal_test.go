package local

import (
	"testing"

	"github.com/birkland/lresolv"
	"github.com/pkg/errors"
)

func TestEncodingSelfCheck(t *testing.T) {
	if err := CheckEncoding(); err != nil {
		t.Fatalf("UTF-8 self check should pass: %+v", err)
	}
}

func TestEnvironmentFaultIsFatal(t *testing.T) {
	saved := probe
	defer func() { probe = saved }()

	cases := []struct {
		name    string
		encoded string
		decoded string
	}{
		{"mismatch", saved.encoded, "something else"},
		{"undecodable", "%zz", saved.decoded},
		{"invalidUTF8", "%25FF", "\xff"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			probe.encoded = c.encoded
			probe.decoded = c.decoded

			r, err := NewResolver(Config{})
			if errors.Cause(err) != lresolv.ErrEnvironment {
				t.Errorf("Expected an environment error, got %v", err)
			}
			if r != nil {
				t.Errorf("No resolver should be returned when the environment is unusable")
			}
		})
	}
}

func TestDecodeIsNotAFixedPoint(t *testing.T) {
	decoded, err := decode("%252525")
	if err != nil {
		t.Fatal(err)
	}

	if decoded != "%25" {
		t.Errorf("Expected exactly two passes to yield %%25, got %s", decoded)
	}
}

func TestDecodeKeepsInvalidUTF8(t *testing.T) {
	decoded, err := decode("a%25FFb.jp2")
	if err != nil {
		t.Fatal(err)
	}

	if decoded != "a\xffb.jp2" {
		t.Errorf("Expected raw byte 0xff to survive decoding, got %q", decoded)
	}
}
