package stream

import (
	"net/url"
	"testing"
)

func TestParseStreamRequest(t *testing.T) {
	const catalogSize = 12

	tests := []struct {
		name    string
		query   string
		want    StreamRequest
		wantErr bool
	}{
		{"defaults", "", StreamRequest{IntervalMS: 1000, Count: catalogSize}, false},
		{"explicit values", "interval=250&count=5", StreamRequest{IntervalMS: 250, Count: 5}, false},
		{"count clamped high", "count=999", StreamRequest{IntervalMS: 1000, Count: catalogSize}, false},
		{"count clamped low", "count=-3", StreamRequest{IntervalMS: 1000, Count: 0}, false},
		{"zero count", "count=0", StreamRequest{IntervalMS: 1000, Count: 0}, false},
		{"malformed interval", "interval=fast", StreamRequest{}, true},
		{"fractional interval", "interval=1.5", StreamRequest{}, true},
		{"zero interval", "interval=0", StreamRequest{}, true},
		{"negative interval", "interval=-10", StreamRequest{}, true},
		{"malformed count", "count=all", StreamRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			got, err := ParseStreamRequest(q, catalogSize)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
