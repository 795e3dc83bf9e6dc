package adzuna

import "fmt"

// Country identifies a national job market served by the API. The zero
// value is the United States, which every country-scoped endpoint uses
// unless told otherwise.
type Country int

const (
	UnitedStates Country = iota
	UnitedKingdom
	Austria
	Australia
	Belgium
	Brazil
	Canada
	Switzerland
	Germany
	Spain
	France
	India
	Italy
	Mexico
	Netherlands
	NewZealand
	Poland
	Russia
	Singapore
	SouthAfrica
)

// Code returns the lowercase two-letter code used as the URL path
// segment for the country. Unknown values fall back to "us".
func (c Country) Code() string {
	switch c {
	case UnitedKingdom:
		return "gb"
	case UnitedStates:
		return "us"
	case Austria:
		return "at"
	case Australia:
		return "au"
	case Belgium:
		return "be"
	case Brazil:
		return "br"
	case Canada:
		return "ca"
	case Switzerland:
		return "ch"
	case Germany:
		return "de"
	case Spain:
		return "es"
	case France:
		return "fr"
	case India:
		return "in"
	case Italy:
		return "it"
	case Mexico:
		return "mx"
	case Netherlands:
		return "nl"
	case NewZealand:
		return "nz"
	case Poland:
		return "pl"
	case Russia:
		return "ru"
	case Singapore:
		return "sg"
	case SouthAfrica:
		return "za"
	default:
		return "us"
	}
}

var countryCodes = map[string]Country{
	"gb": UnitedKingdom,
	"us": UnitedStates,
	"at": Austria,
	"au": Australia,
	"be": Belgium,
	"br": Brazil,
	"ca": Canada,
	"ch": Switzerland,
	"de": Germany,
	"es": Spain,
	"fr": France,
	"in": India,
	"it": Italy,
	"mx": Mexico,
	"nl": Netherlands,
	"nz": NewZealand,
	"pl": Poland,
	"ru": Russia,
	"sg": Singapore,
	"za": SouthAfrica,
}

// ParseCountry resolves a two-letter country code into a Country.
func ParseCountry(code string) (Country, error) {
	country, ok := countryCodes[code]
	if !ok {
		return UnitedStates, fmt.Errorf("unsupported country code %q", code)
	}
	return country, nil
}

// SortBy controls the ordering of search results.
type SortBy string

const (
	SortByDefault   SortBy = "default"
	SortByHybrid    SortBy = "hybrid"
	SortByDate      SortBy = "date"
	SortBySalary    SortBy = "salary"
	SortByRelevance SortBy = "relevance"
)

// SortDirection controls whether search results are ordered ascending
// or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "up"
	SortDescending SortDirection = "down"
)
