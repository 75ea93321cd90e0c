package helpers

import "testing"

func TestIsAbsoluteHTTP(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.com/best-sushi", true},
		{"http://example.org", true},
		{"  https://example.com  ", true},
		{"ftp://example.net/file", false},
		{"example.com/page", false},
		{"https://", false},
		{"not a url", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsAbsoluteHTTP(tc.in); got != tc.want {
			t.Errorf("IsAbsoluteHTTP(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases host", "https://Example.COM/Path", "https://example.com/Path"},
		{"strips default https port", "https://example.com:443/a", "https://example.com/a"},
		{"strips default http port", "http://example.com:80/a", "http://example.com/a"},
		{"keeps custom port", "https://example.com:8443/a", "https://example.com:8443/a"},
		{"drops fragment", "https://example.com/a#section", "https://example.com/a"},
		{"drops tracking params", "https://example.com/a?utm_source=x&q=sushi&fbclid=y", "https://example.com/a?q=sushi"},
		{"sorts query", "https://example.com/a?b=2&a=1", "https://example.com/a?a=1&b=2"},
		{"empty path becomes root", "https://example.com", "https://example.com/"},
		{"assumes https for protocol-relative", "//example.com/a", "https://example.com/a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanonicalURL(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCanonicalURL_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "https://"} {
		if _, err := CanonicalURL(in); err == nil {
			t.Errorf("CanonicalURL(%q) succeeded, want error", in)
		}
	}
}

func TestURLFingerprint_StableAcrossEquivalentForms(t *testing.T) {
	a, err := URLFingerprint("https://Example.com:443/a?b=2&a=1&utm_source=x")
	if err != nil {
		t.Fatal(err)
	}
	b, err := URLFingerprint("https://example.com/a?a=1&b=2")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("fingerprints differ: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("fingerprint length = %d, want 64", len(a))
	}
}
