package usecase

import (
	"context"
	"time"

	"legal-practice-assistant/internal/model"
	"legal-practice-assistant/pkg/gcalendar"
)

// tryCreateCalendarEvent mirrors a stored event record to Google Calendar.
// Returns the event HTML link, or empty string on failure (graceful
// degradation — the record itself is already persisted).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, rec model.Record) string {
	if uc.calendar == nil {
		return ""
	}

	start, ok := fieldTime(rec.Fields, "startTime")
	if !ok {
		return ""
	}
	end, ok := fieldTime(rec.Fields, "endTime")
	if !ok {
		end = start.Add(time.Hour)
	}

	description, _ := rec.Fields["description"].(string)
	location, _ := rec.Fields["location"].(string)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     rec.Title,
		Description: description,
		Location:    location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Apply: calendar event creation failed for %q (non-fatal): %v", rec.Title, err)
		return ""
	}
	return event.HtmlLink
}

// fieldTime reads an RFC3339 timestamp out of a fields map.
func fieldTime(fields map[string]any, key string) (time.Time, bool) {
	s, ok := fields[key].(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
