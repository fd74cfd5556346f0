package dto

import (
	"net/url"
	"reflect"
	"testing"
)

func TestNewSearchProfessionalsQueryTrimsValues(t *testing.T) {
	values := url.Values{
		"specialty": {"  Psicologia Clínica "},
		"min_price": {" 100 "},
		"language":  {"   "},
	}

	q := NewSearchProfessionalsQuery(values)
	if q.Specialty != "Psicologia Clínica" {
		t.Fatalf("specialty = %q", q.Specialty)
	}
	if q.MinPrice != "100" {
		t.Fatalf("min_price = %q", q.MinPrice)
	}
	if q.Language != "" {
		t.Fatalf("blank language should read as not supplied, got %q", q.Language)
	}
	if len(q.Unknown) != 0 || len(q.Duplicated) != 0 {
		t.Fatalf("unexpected unknown=%v duplicated=%v", q.Unknown, q.Duplicated)
	}
}

func TestNewSearchProfessionalsQueryTracksUnknownAndDuplicated(t *testing.T) {
	values := url.Values{
		"specialty":   {"Psiquiatria", "Psicologia"},
		"is_verified": {"false"},
		"sort":        {"price"},
		"page":        {"1"},
	}

	q := NewSearchProfessionalsQuery(values)
	if !reflect.DeepEqual(q.Unknown, []string{"is_verified", "sort"}) {
		t.Fatalf("unknown = %v", q.Unknown)
	}
	if !reflect.DeepEqual(q.Duplicated, []string{"specialty"}) {
		t.Fatalf("duplicated = %v", q.Duplicated)
	}
}
