package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ngoworks/programhub/internal/app/system/paging"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, paging.DefaultLimit},
		{"explicit", "?page=3&limit=50", 3, 50},
		{"limit clamped", "?limit=500", 1, paging.MaxLimit},
		{"zero values ignored", "?page=0&limit=0", 1, paging.DefaultLimit},
		{"negative ignored", "?page=-2&limit=-5", 1, paging.DefaultLimit},
		{"garbage ignored", "?page=abc&limit=xyz", 1, paging.DefaultLimit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/hubs"+c.query, nil)
			p := paging.Parse(r)
			if p.Page != c.wantPage || p.Limit != c.wantLimit {
				t.Errorf("Parse(%q): got page=%d limit=%d, want page=%d limit=%d",
					c.query, p.Page, p.Limit, c.wantPage, c.wantLimit)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	p := paging.Params{Page: 3, Limit: 10}
	if got := p.Skip(); got != 20 {
		t.Errorf("Skip: got %d, want 20", got)
	}
	p = paging.Params{Page: 1, Limit: 25}
	if got := p.Skip(); got != 0 {
		t.Errorf("Skip on first page: got %d, want 0", got)
	}
}

func TestNewMeta(t *testing.T) {
	cases := []struct {
		total     int64
		limit     int
		wantPages int64
	}{
		{0, 10, 0},
		{10, 10, 1},
		{25, 10, 3},
		{100, 100, 1},
		{101, 100, 2},
	}
	for _, c := range cases {
		m := paging.NewMeta(paging.Params{Page: 1, Limit: c.limit}, c.total)
		if m.Pages != c.wantPages {
			t.Errorf("NewMeta(total=%d, limit=%d): got pages=%d, want %d",
				c.total, c.limit, m.Pages, c.wantPages)
		}
		if m.Total != c.total {
			t.Errorf("NewMeta total: got %d, want %d", m.Total, c.total)
		}
	}
}
