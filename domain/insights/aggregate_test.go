package insights

import (
	"math"
	"reflect"
	"testing"
)

const scenario = `Page,Sessions,Submissions
/pricing,500,25
/about,1000,5
/contact,20,10
`

func TestAggregateScenario(t *testing.T) {
	summary := Aggregate(Parse(scenario), DefaultConfig())

	if summary.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", summary.RowCount)
	}
	if summary.TotalTraffic != 1520 {
		t.Errorf("TotalTraffic = %v, want 1520", summary.TotalTraffic)
	}
	if summary.TotalConversions != 40 {
		t.Errorf("TotalConversions = %v, want 40", summary.TotalConversions)
	}
	if math.Abs(summary.OverallRate-40.0/1520.0) > 1e-12 {
		t.Errorf("OverallRate = %v, want %v", summary.OverallRate, 40.0/1520.0)
	}

	wantVolume := []string{"/about", "/pricing", "/contact"}
	if got := labels(summary.TopByVolume); !reflect.DeepEqual(got, wantVolume) {
		t.Errorf("TopByVolume labels = %v, want %v", got, wantVolume)
	}

	// /contact has the highest raw rate (0.5) but sits under the 25-traffic
	// floor; /about qualifies with rate 0.005.
	wantRate := []string{"/pricing", "/about"}
	if got := labels(summary.TopByRate); !reflect.DeepEqual(got, wantRate) {
		t.Errorf("TopByRate labels = %v, want %v", got, wantRate)
	}
	if summary.TopByRate[0].Rate != 0.05 {
		t.Errorf("/pricing rate = %v, want 0.05", summary.TopByRate[0].Rate)
	}
}

func TestAggregateRateFloorExcludesAll(t *testing.T) {
	text := "Page,Sessions,Submissions\n/a,10,9\n/b,5,1"
	summary := Aggregate(Parse(text), DefaultConfig())

	if len(summary.TopByRate) != 0 {
		t.Errorf("All rows under floor: TopByRate should be empty, got %d", len(summary.TopByRate))
	}
	if len(summary.TopByVolume) == 0 {
		t.Error("TopByVolume should still be populated")
	}
	// Caller distinguishes "no data" from "all filtered" via RowCount.
	if summary.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", summary.RowCount)
	}
}

func TestAggregateZeroTrafficSafe(t *testing.T) {
	text := "Page,Sessions,Submissions\n/a,0,0\n/b,0,3"
	summary := Aggregate(Parse(text), DefaultConfig())

	if summary.OverallRate != 0 {
		t.Errorf("OverallRate = %v, want 0", summary.OverallRate)
	}
	for _, r := range summary.TopByVolume {
		if math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) {
			t.Errorf("Row %q rate is not finite: %v", r.Label, r.Rate)
		}
	}
}

func TestAggregateEmptyTable(t *testing.T) {
	summary := Aggregate(RawTable{}, DefaultConfig())

	if summary.RowCount != 0 || summary.TotalTraffic != 0 || summary.TotalConversions != 0 {
		t.Errorf("Empty table should yield zero totals, got %+v", summary)
	}
	if len(summary.TopByVolume) != 0 || len(summary.TopByRate) != 0 {
		t.Error("Empty table should yield empty top lists")
	}
}

func TestAggregateNoRecognizableColumns(t *testing.T) {
	text := "Foo,Bar\nx,y\nz,w"
	summary := Aggregate(Parse(text), DefaultConfig())

	if summary.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", summary.RowCount)
	}
	if summary.TotalTraffic != 0 {
		t.Errorf("TotalTraffic = %v, want 0", summary.TotalTraffic)
	}
	// Label falls back to the first column even without a metric column.
	if len(summary.TopByVolume) == 0 || summary.TopByVolume[0].Label != "x" {
		t.Errorf("Expected first-column label fallback, got %+v", summary.TopByVolume)
	}
}

func TestAggregateMissingLabelCell(t *testing.T) {
	text := "Page,Sessions\n,100"
	summary := Aggregate(Parse(text), DefaultConfig())

	if summary.TopByVolume[0].Label != UnknownLabel {
		t.Errorf("Empty label cell should use sentinel, got %q", summary.TopByVolume[0].Label)
	}
}

func TestAggregateUnparseableCells(t *testing.T) {
	text := "Page,Sessions,Submissions\n/a,n/a,5\n/b,$1,200,bad"
	summary := Aggregate(Parse(text), DefaultConfig())

	if summary.RowCount != 2 {
		t.Fatalf("RowCount = %d, want 2", summary.RowCount)
	}
	// Unparseable numbers degrade to zero, never error.
	if summary.TopByVolume[len(summary.TopByVolume)-1].Traffic != 0 {
		t.Errorf("Unparseable traffic should be 0, got %+v", summary.TopByVolume)
	}
}

func TestAggregateStableTieOrder(t *testing.T) {
	text := "Page,Sessions\n/first,100\n/second,100\n/third,100"
	summary := Aggregate(Parse(text), DefaultConfig())

	want := []string{"/first", "/second", "/third"}
	if got := labels(summary.TopByVolume); !reflect.DeepEqual(got, want) {
		t.Errorf("Ties must keep source order, got %v", got)
	}
}

func TestAggregateTopNTruncation(t *testing.T) {
	text := "Page,Sessions\n/a,1\n/b,2\n/c,3\n/d,4\n/e,5\n/f,6\n/g,7"
	summary := Aggregate(Parse(text), DefaultConfig())

	if len(summary.TopByVolume) != 6 {
		t.Fatalf("TopByVolume length = %d, want 6", len(summary.TopByVolume))
	}
	if summary.TopByVolume[0].Label != "/g" {
		t.Errorf("Highest traffic first, got %q", summary.TopByVolume[0].Label)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	first := Aggregate(Parse(scenario), DefaultConfig())
	second := Aggregate(Parse(scenario), DefaultConfig())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate is not deterministic:\n%+v\n%+v", first, second)
	}
}

func labels(rows []EnrichedRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}
