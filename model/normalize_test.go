package model

import "testing"

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "İstanbul", expected: "ISTANBUL"},
		{input: "istanbul", expected: "ISTANBUL"},
		{input: "ISTANBUL", expected: "ISTANBUL"},
		{input: "ıstanbul", expected: "ISTANBUL"},
		{input: "Fenerbahçe HDI Sigorta", expected: "FENERBAHCEHDISIGORTA"},
		{input: "FENERBAHCE HDI SIGORTA", expected: "FENERBAHCEHDISIGORTA"},
		{input: "Ziraat Bankkart", expected: "ZIRAATBANKKART"},
		{input: "Halkbank S.K.", expected: "HALKBANKSK"},
		{input: "Göztepe", expected: "GOZTEPE"},
		{input: "Muğla 1970 SK", expected: "MUGLA1970SK"},
		{input: "  Arkas   Spor  ", expected: "ARKASSPOR"},
		{input: "", expected: ""},
	}

	for _, tc := range tests {
		a := CanonicalName(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestCanonicalName_idempotent(t *testing.T) {
	inputs := []string{
		"İstanbul Büyükşehir Belediyespor",
		"Beşiktaş",
		"Çanakkale Belediyespor",
		"spor toto",
		"VakıfBank",
	}

	for _, in := range inputs {
		once := CanonicalName(in)
		twice := CanonicalName(once)
		if once != twice {
			t.Errorf("not idempotent for '%s': first '%s', second '%s'", in, once, twice)
		}
	}
}

func TestCanonicalName_variantsAgree(t *testing.T) {
	variants := []string{
		"Beşiktaş",
		"BEŞİKTAŞ",
		"besiktas",
		"Besiktas ",
		"Beşiktaş.",
	}

	want := CanonicalName(variants[0])
	for _, v := range variants[1:] {
		if got := CanonicalName(v); got != want {
			t.Errorf("variant '%s' normalized to '%s', want '%s'", v, got, want)
		}
	}
}
