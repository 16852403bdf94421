package shift

import "testing"

func TestCanTransitionTo(t *testing.T) {
	allowed := []struct {
		from Status
		to   Status
	}{
		{StatusDraft, StatusOpen},
		{StatusOpen, StatusClosed},
		{StatusOpen, StatusPublished},
		{StatusClosed, StatusCompleted},
		{StatusPublished, StatusCompleted},
	}
	for _, c := range allowed {
		if !c.from.CanTransitionTo(c.to) {
			t.Errorf("CanTransitionTo(%s -> %s) = false, want true", c.from, c.to)
		}
	}

	forbidden := []struct {
		from Status
		to   Status
	}{
		{StatusDraft, StatusClosed},
		{StatusDraft, StatusPublished},
		{StatusDraft, StatusCompleted},
		{StatusOpen, StatusDraft},
		{StatusOpen, StatusCompleted},
		{StatusClosed, StatusOpen},
		{StatusClosed, StatusPublished},
		{StatusPublished, StatusOpen},
		{StatusCompleted, StatusDraft},
		{StatusCompleted, StatusOpen},
		{StatusDraft, StatusDraft},
	}
	for _, c := range forbidden {
		if c.from.CanTransitionTo(c.to) {
			t.Errorf("CanTransitionTo(%s -> %s) = true, want false", c.from, c.to)
		}
	}
}

func TestRequirementsValid(t *testing.T) {
	cases := []struct {
		name string
		req  Requirements
		want bool
	}{
		{"zero value", Requirements{}, true},
		{"min below max", Requirements{MinEmployees: 1, MaxEmployees: 3}, true},
		{"min equals max", Requirements{MinEmployees: 2, MaxEmployees: 2}, true},
		{"min above max", Requirements{MinEmployees: 4, MaxEmployees: 3}, false},
		{"negative min", Requirements{MinEmployees: -1, MaxEmployees: 3}, false},
	}
	for _, c := range cases {
		if got := c.req.Valid(); got != c.want {
			t.Errorf("%s: Valid() = %v, want %v", c.name, got, c.want)
		}
	}
}
