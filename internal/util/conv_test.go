package util

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"sourcing", []string{"sourcing"}},
		{"sourcing,offers", []string{"sourcing", "offers"}},
		{" sourcing , offers ", []string{"sourcing", "offers"}},
		{"sourcing,,offers", []string{"sourcing", "offers"}},
	}

	for _, tc := range cases {
		if got := SplitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJoinTags(t *testing.T) {
	if got := JoinTags([]string{"a", "b"}); got != "a,b" {
		t.Fatalf("JoinTags = %q", got)
	}
	if got := JoinTags(nil); got != "" {
		t.Fatalf("JoinTags(nil) = %q", got)
	}
}
