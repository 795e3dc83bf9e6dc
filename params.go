package adzuna

import (
	"net/url"
	"strconv"
)

// The API encodes a hierarchical location filter as up to eight
// discrete location0..location7 query parameters.
const maxLocationSlots = 8

// Parameters accumulates the optional query-string fields of a request.
// Every field is absent until explicitly set; unset fields never appear
// in the outgoing query.
type Parameters struct {
	values    url.Values
	locations int
}

func (p *Parameters) set(key, value string) {
	if p.values == nil {
		p.values = url.Values{}
	}
	p.values.Set(key, value)
}

func (p *Parameters) setUint(key string, value uint) {
	p.set(key, strconv.FormatUint(uint64(value), 10))
}

// setFlag stores the literal "1" the API expects for boolean filters.
// Flags cannot be unset once stored.
func (p *Parameters) setFlag(key string) {
	p.set(key, "1")
}

// addLocation fills the location0..location7 slots in call order. Once
// all eight slots are taken further calls are dropped silently.
func (p *Parameters) addLocation(location string) {
	if p.locations >= maxLocationSlots {
		return
	}
	p.set("location"+strconv.Itoa(p.locations), location)
	p.locations++
}

// Values returns a copy of the currently set fields.
func (p *Parameters) Values() url.Values {
	out := url.Values{}
	for key, values := range p.values {
		for _, value := range values {
			out.Add(key, value)
		}
	}
	return out
}
