package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"legal-practice-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestCalendarClient(t *testing.T) {
	t.Run("Initialize with broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from file", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("CreateEvent against fake endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"evt-1","summary":"Hearing","htmlLink":"http://example.com/evt-1"}`))
		}))
		defer server.Close()

		httpClient := &http.Client{Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      server.Listener.Addr().String(),
		}}

		client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
		if err != nil {
			t.Fatalf("NewClientFromHTTP: %v", err)
		}

		start := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Hearing",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Timezone:  "UTC",
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		if event.ID != "evt-1" {
			t.Errorf("event.ID = %q, want evt-1", event.ID)
		}
		if event.HtmlLink == "" {
			t.Errorf("expected htmlLink to be populated")
		}
	})
}
