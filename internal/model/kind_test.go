package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestKindString tests the String method of Kind.
func TestKindString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind     Kind
		expected string
	}{
		{KindAdjacent, "adjacent"},
		{KindCrossLine, "cross-line"},
		{Kind(999), "unknown"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.kind.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.kind.String(), tc.expected)
			}
		})
	}
}

// TestKindJSON tests that kinds serialize by name and round-trip.
func TestKindJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals by name", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(KindCrossLine)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `"cross-line"` {
			t.Errorf("got %s, expected %q", data, "cross-line")
		}
	})

	t.Run("round-trips", func(t *testing.T) {
		t.Parallel()

		for _, kind := range []Kind{KindAdjacent, KindCrossLine} {
			data, err := json.Marshal(kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var decoded Kind
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decoded != kind {
				t.Errorf("got %v, expected %v", decoded, kind)
			}
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		var decoded Kind
		if err := json.Unmarshal([]byte(`"sideways"`), &decoded); err == nil {
			t.Error("expected an error for an unknown kind name")
		}
	})
}

// TestKindYAML tests that kinds serialize by name and round-trip in YAML.
func TestKindYAML(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindAdjacent, KindCrossLine} {
		data, err := yaml.Marshal(kind)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded Kind
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decoded != kind {
			t.Errorf("got %v, expected %v", decoded, kind)
		}
	}
}
