package domain

// Status is the outcome of a campaign operation. Values equal the HTTP
// status code the transport layer answers with, so callers map them 1:1.
type Status int

const (
	StatusOK          Status = 200
	StatusCreated     Status = 201
	StatusNoContent   Status = 204
	StatusInvalid     Status = 400 // ValidationFailed
	StatusForbidden   Status = 403
	StatusNotFound    Status = 404
	StatusConflict    Status = 409
	StatusStale       Status = 412 // PreconditionFailed
	StatusNotEligible Status = 418 // author is not an influencer of the campaign
)

// OK reports whether s is a success outcome.
func (s Status) OK() bool {
	return s >= 200 && s < 300
}

// Code returns the transport status code.
func (s Status) Code() int {
	return int(s)
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCreated:
		return "created"
	case StatusNoContent:
		return "no content"
	case StatusInvalid:
		return "validation failed"
	case StatusForbidden:
		return "forbidden"
	case StatusNotFound:
		return "not found"
	case StatusConflict:
		return "conflict"
	case StatusStale:
		return "precondition failed"
	case StatusNotEligible:
		return "author not eligible"
	default:
		return "unknown"
	}
}

// FirstFailure returns the first non-success status of a batch, or
// StatusNoContent when every item succeeded.
func FirstFailure(statuses []Status) Status {
	for _, s := range statuses {
		if !s.OK() {
			return s
		}
	}
	return StatusNoContent
}
