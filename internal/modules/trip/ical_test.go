package trip

import (
	"strings"
	"testing"
)

func TestExportICal(t *testing.T) {
	plan := roadTripPlan()
	plan.TransportationLegs = []Leg{
		{Mode: "flight", From: "SFO", To: "LAS"},
		{Mode: "car", From: "LAS", To: "Grand Canyon"},
	}

	out, err := ExportICal(plan)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatal("not a calendar document")
	}
	if !strings.Contains(out, "SFO") || !strings.Contains(out, "Grand Canyon") {
		t.Fatal("leg events missing")
	}
	if !strings.Contains(out, "Stay in LAS") {
		t.Fatal("stay event missing")
	}
}

func TestExportICalOneStayPerCity(t *testing.T) {
	plan := Plan{
		IsValid:           true,
		Origin:            "MAD",
		FinalDestination:  "LIS",
		IntermediateStops: []string{"BCN", "Sintra"},
		TransportationLegs: []Leg{
			{Mode: "train", From: "MAD", To: "BCN"},
			{Mode: "flight", From: "BCN", To: "LIS"},
		},
		Dates: Dates{StartDate: "2030-09-01", EndDate: "2030-09-14"},
	}

	out, err := ExportICal(plan)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Stay in BCN") {
		t.Fatal("intermediate city stay missing")
	}
	if !strings.Contains(out, "Stay in LIS") {
		t.Fatal("final destination stay missing")
	}
	if strings.Contains(out, "Stay in Sintra") {
		t.Fatal("landmark-style stop must not get a stay event")
	}
}

func TestExportICalRejectsInvalidPlan(t *testing.T) {
	if _, err := ExportICal(Plan{}); err == nil {
		t.Fatal("invalid plan must not export")
	}
}
