package fetch

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme.com", "https://acme.com"},
		{"  acme.com/  ", "https://acme.com"},
		{"http://acme.com", "http://acme.com"},
		{"https://acme.com/", "https://acme.com"},
		{"https://acme.com///", "https://acme.com"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeURL(tc.in); got != tc.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDomain(t *testing.T) {
	if got := Domain("https://WWW.Acme.COM/pages/faq"); got != "www.acme.com" {
		t.Fatalf("unexpected domain: %q", got)
	}
	if got := Domain("://bad"); got != "" {
		t.Fatalf("expected empty domain for invalid URL, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		base string
		href string
		want string
	}{
		{"https://acme.com", "/products/widget", "https://acme.com/products/widget"},
		{"https://acme.com/pages/about", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"https://acme.com", "  /collections/all ", "https://acme.com/collections/all"},
	}
	for _, tc := range cases {
		if got := Resolve(tc.base, tc.href); got != tc.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tc.base, tc.href, got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join("acme.com/", "/products.json"); got != "https://acme.com/products.json" {
		t.Fatalf("unexpected join result: %q", got)
	}
}
