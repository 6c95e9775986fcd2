package stream

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// DefaultIntervalMS is the pacing delay used when no interval query
// parameter is given.
const DefaultIntervalMS = 1000

var validate = validator.New()

// StreamRequest is the per-connection emission plan derived from the
// query string. Count is already clamped to the catalog length; a count
// of zero means "emit only the completion frame".
type StreamRequest struct {
	IntervalMS int `validate:"gt=0"`
	Count      int `validate:"gte=0"`
}

// ParseStreamRequest derives a StreamRequest from query parameters.
// Malformed or non-positive interval values are an error (the caller
// turns it into a 400); count values are clamped into [0, catalogSize].
func ParseStreamRequest(q url.Values, catalogSize int) (StreamRequest, error) {
	req := StreamRequest{IntervalMS: DefaultIntervalMS, Count: catalogSize}

	if raw := q.Get("interval"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return StreamRequest{}, fmt.Errorf("invalid interval %q: expected a positive integer of milliseconds", raw)
		}
		req.IntervalMS = v
	}
	if raw := q.Get("count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return StreamRequest{}, fmt.Errorf("invalid count %q: expected an integer", raw)
		}
		req.Count = v
	}

	if req.Count < 0 {
		req.Count = 0
	}
	if req.Count > catalogSize {
		req.Count = catalogSize
	}

	if err := validate.Struct(req); err != nil {
		return StreamRequest{}, fmt.Errorf("invalid stream request: interval must be a positive integer of milliseconds")
	}
	return req, nil
}
