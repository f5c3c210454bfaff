package pattern

import "testing"

func TestResolveAlias(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dot resolves to global", ".", GlobalContextName},
		{"plain name passes through", "MyApp", "MyApp"},
		{"global name passes through", GlobalContextName, GlobalContextName},
		{"dot prefix is not the alias", ".hidden", ".hidden"},
		{"empty string passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAlias(tt.in); got != tt.want {
				t.Errorf("ResolveAlias(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsWildcard(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"foo*", true},
		{"*", true},
		{"f*o", true},
		{"foo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsWildcard(tt.in); got != tt.want {
			t.Errorf("IsWildcard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		name string
		pat  Pattern
		in   string
		want bool
	}{
		{"all matches anything", All(), "anything", true},
		{"all matches empty name", All(), "", true},
		{"exact match", Name("MyApp"), "MyApp", true},
		{"exact is case-sensitive", Name("MyApp"), "myapp", false},
		{"exact rejects prefix", Name("MyApp"), "MyApp2", false},
		{"empty spec only matches empty name", Name(""), "MyApp", false},
		{"empty spec matches empty name", Name(""), "", true},
		{"prefix wildcard matches", Name("abc*"), "abcdef", true},
		{"prefix wildcard matches bare prefix", Name("abc*"), "abc", true},
		{"prefix wildcard is case-sensitive", Name("abc*"), "ABCdef", false},
		{"prefix wildcard rejects other prefix", Name("abc*"), "abd", false},
		{"bare wildcard matches anything", Name("*"), "whatever", true},
		{"bare wildcard matches empty name", Name("*"), "", true},
		{"only first marker counts", Name("a*b*"), "aXYZ", true},
		{"text after marker is ignored", Name("a*b"), "aqq", true},
		{"zero value matches nothing", Pattern{}, "MyApp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pat.Matches(tt.in); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPatternIsWildcardAndString(t *testing.T) {
	if !All().IsAll() {
		t.Error("All().IsAll() = false, want true")
	}
	if All().IsWildcard() {
		t.Error("All().IsWildcard() = true, want false")
	}
	if got := All().String(); got != "*" {
		t.Errorf("All().String() = %q, want %q", got, "*")
	}
	if !Name("foo*").IsWildcard() {
		t.Error("Name(\"foo*\").IsWildcard() = false, want true")
	}
	if Name("foo").IsWildcard() {
		t.Error("Name(\"foo\").IsWildcard() = true, want false")
	}
	if got := Name("foo*").String(); got != "foo*" {
		t.Errorf("Name(\"foo*\").String() = %q, want %q", got, "foo*")
	}
}
