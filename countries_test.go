package adzuna

import "testing"

func TestCountryCodes(t *testing.T) {
	cases := []struct {
		country Country
		code    string
	}{
		{UnitedStates, "us"},
		{UnitedKingdom, "gb"},
		{Germany, "de"},
		{Netherlands, "nl"},
		{NewZealand, "nz"},
		{SouthAfrica, "za"},
	}

	for _, tc := range cases {
		if got := tc.country.Code(); got != tc.code {
			t.Fatalf("expected code %q, got %q", tc.code, got)
		}
	}
}

func TestCountryCodeIsTotal(t *testing.T) {
	if got := Country(999).Code(); got != "us" {
		t.Fatalf("expected unknown countries to fall back to us, got %q", got)
	}
}

func TestParseCountry(t *testing.T) {
	country, err := ParseCountry("nz")
	if err != nil {
		t.Fatalf("expected nz to parse, got %v", err)
	}
	if country != NewZealand {
		t.Fatalf("expected NewZealand, got %v", country)
	}

	if _, err := ParseCountry("xx"); err == nil {
		t.Fatalf("expected an error for an unsupported code")
	}
}
