package text

import "testing"

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the great escape", "The Great Escape"},
		{"already Capitalized", "Already Capitalized"},
		{"one", "One"},
		{"", ""},
		{"  leading spaces", "  Leading Spaces"},
		{"mixedCase word", "MixedCase Word"},
		{"5th avenue", "5th Avenue"},
	}
	for _, tt := range tests {
		if got := CapitalizeWords(tt.in); got != tt.want {
			t.Errorf("CapitalizeWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerMinorWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Lord Of The Rings", "The Lord of the Rings"},
		{"Gone With The Wind", "Gone with the Wind"},
		{"A Tale Of Two Cities", "A Tale of Two Cities"},
		// A leading or trailing word is not surrounded by spaces.
		{"Of Mice And Men", "Of Mice and Men"},
		{"What It Is For", "What It Is For"},
	}
	for _, tt := range tests {
		if got := LowerMinorWords(tt.in); got != tt.want {
			t.Errorf("LowerMinorWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUppercaseSubtitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"War: a history", "War: A history"},
		{"War:  a history", "War:  A history"},
		{"War: A History", "War: A History"},
		{"No subtitle here", "No subtitle here"},
		{"Odd:colon", "Odd:colon"},
	}
	for _, tt := range tests {
		if got := UppercaseSubtitle(tt.in); got != tt.want {
			t.Errorf("UppercaseSubtitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsurePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Foo", "Foo."},
		{"Foo.", "Foo."},
		{"Foo?", "Foo?"},
		{"Foo!", "Foo!"},
	}
	for _, tt := range tests {
		if got := EnsurePeriod(tt.in); got != tt.want {
			t.Errorf("EnsurePeriod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "http://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"HTTPS://example.com", "HTTPS://example.com"},
		{"ftp://example.com", "ftp://example.com"},
		{"telnet://example.com", "telnet://example.com"},
		{"gopher://example.com", "gopher://example.com"},
		{"www.example.com/page", "http://www.example.com/page"},
	}
	for _, tt := range tests {
		if got := EnsureScheme(tt.in); got != tt.want {
			t.Errorf("EnsureScheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAbbreviateMonth(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"January", "Jan."},
		{"February", "Feb."},
		{"March", "Mar."},
		{"April", "Apr."},
		{"May", "May"},
		{"June", "June"},
		{"July", "July"},
		{"August", "Aug."},
		{"September", "Sept."},
		{"October", "Oct."},
		{"November", "Nov."},
		{"December", "Dec."},
		{"Spring", "Spring"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := AbbreviateMonth(tt.in); got != tt.want {
			t.Errorf("AbbreviateMonth(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShowDay(t *testing.T) {
	if !ShowDay("March") {
		t.Error("ShowDay(March) should be true")
	}
	if ShowDay("Spring") {
		t.Error("ShowDay(Spring) should be false")
	}
	if ShowDay("") {
		t.Error("ShowDay(\"\") should be false")
	}
}

func TestFirstInitial(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mary", "M"},
		{"Mary", "M"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FirstInitial(tt.in); got != tt.want {
			t.Errorf("FirstInitial(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimLeadingArticle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The New York Times", "New York Times"},
		{"A Clockwork Orange", "Clockwork Orange"},
		{"An Apple", "Apple"},
		{"Theory Of Mind", "Theory Of Mind"},
		{"the lowercase", "the lowercase"},
	}
	for _, tt := range tests {
		if got := TrimLeadingArticle(tt.in); got != tt.want {
			t.Errorf("TrimLeadingArticle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
