package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"legal-practice-assistant/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	// Built in the local zone so the Local() round-trip is a no-op and the
	// expected string is stable across test runner timezones.
	tm := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got, want := string(b), `"2025-03-10 14:30:00"`; got != want {
		t.Errorf("marshaled DateTime = %s, want %s", got, want)
	}
}
