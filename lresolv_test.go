package lresolv_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/entity"
	"github.com/pkg/errors"
)

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []lresolv.Status{lresolv.Unknown, lresolv.Found, lresolv.NotFound, 42} {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			rt := lresolv.ParseStatus(s.String())
			if rt != s && rt != lresolv.Unknown {
				t.Errorf("Roundtrip failed for %s", s)
			}
		})
	}
}

func TestStatusHTTP(t *testing.T) {
	cases := []struct {
		status   lresolv.Status
		expected int
	}{
		{lresolv.Found, http.StatusOK},
		{lresolv.NotFound, http.StatusNotFound},
		{lresolv.Unknown, http.StatusInternalServerError},
	}

	for _, c := range cases {
		c := c
		t.Run(c.status.String(), func(t *testing.T) {
			if got := c.status.HTTPStatus(); got != c.expected {
				t.Errorf("Expected %d for %s, got %d", c.expected, c.status, got)
			}
		})
	}
}

func TestReferentURI(t *testing.T) {
	uri, _ := url.Parse("file:///a/b")

	cases := []struct {
		name      string
		referent  *entity.Entity
		expectErr bool
	}{
		{"pointer", entity.NewReferent(uri), false},
		{"value", entity.NewReferent(*uri), false},
		{"typed slice", entity.NewReferent([]*url.URL{uri, uri}), false},
		{"string", entity.NewReferent("file:///a/b"), true},
		{"integer", entity.NewReferent(1), true},
		{"empty", entity.NewReferent([]interface{}{}), true},
		{"uninitialized", entity.NewReferent(nil), true},
		{"nil", nil, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := lresolv.ReferentURI(c.referent)
			if c.expectErr {
				if errors.Cause(err) != lresolv.ErrContract {
					t.Errorf("Expected a contract error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error %+v", err)
			}
			if got.String() != uri.String() {
				t.Errorf("Expected %s, got %s", uri, got)
			}
		})
	}
}
