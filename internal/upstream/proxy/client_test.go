package proxy

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"fixtures-service/internal/upstream"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestTeamScheduleFlattensNestedShape(t *testing.T) {
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		body := `{
			"events": [
				{
					"name": "Arsenal at Chelsea",
					"date": "2024-06-01T19:30Z",
					"competitions": [
						{
							"venue": {"fullName": "Stamford Bridge"},
							"competitors": [
								{"homeAway": "home", "team": {"displayName": "Chelsea", "logos": [{"href": "http://img/che.png"}]}},
								{"homeAway": "away", "team": {"displayName": "Arsenal", "logos": [{"href": "http://img/ars.png"}]}}
							],
							"broadcasts": [{"media": {"shortName": "TNT Sports"}}]
						}
					]
				}
			]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://proxy.internal",
		HTTPClient: &http.Client{Transport: rt},
	})

	events, err := client.TeamSchedule(context.Background(), "arsenal", "eng.1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedPath != "/sports/soccer/eng.1/teams/arsenal/schedule" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}

	event := events[0]
	if event.Shape != upstream.ShapeProxy {
		t.Fatalf("expected proxy shape, got %v", event.Shape)
	}
	if event.Stamp != "2024-06-01T19:30Z" {
		t.Fatalf("unexpected stamp %q", event.Stamp)
	}
	if event.Home != "Chelsea" || event.Away != "Arsenal" {
		t.Fatalf("unexpected teams %q vs %q", event.Home, event.Away)
	}
	if event.HomeBadge != "http://img/che.png" || event.AwayBadge != "http://img/ars.png" {
		t.Fatalf("unexpected badges %q %q", event.HomeBadge, event.AwayBadge)
	}
	if event.Venue != "Stamford Bridge" {
		t.Fatalf("unexpected venue %q", event.Venue)
	}
	if event.Broadcast != "TNT Sports" {
		t.Fatalf("unexpected broadcast %q", event.Broadcast)
	}
}

func TestTeamScheduleWithoutCompetitionsKeepsEventStamp(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		body := `{"events": [{"name": "Arsenal at Chelsea", "date": "2024-06-01T19:30Z", "competitions": []}]}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://proxy.internal", HTTPClient: &http.Client{Transport: rt}})
	events, err := client.TeamSchedule(context.Background(), "arsenal", "eng.1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 1 || events[0].Stamp != "2024-06-01T19:30Z" {
		t.Fatalf("expected stamp preserved, got %+v", events)
	}
}

func TestTeamScheduleErrorCarriesSlug(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream broke")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://proxy.internal", HTTPClient: &http.Client{Transport: rt}})
	_, err := client.TeamSchedule(context.Background(), "arsenal", "eng.1")
	if err == nil {
		t.Fatal("expected an error")
	}
	fe, ok := upstream.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fe.ID != "arsenal" {
		t.Fatalf("expected slug on error, got %q", fe.ID)
	}
}
