package timezones_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlform/components/timezones"
	"github.com/goliatone/go-htmlform/pkg/form"
)

func TestDefaultZonesAreSortedAndUnique(t *testing.T) {
	zones, err := timezones.DefaultZones()
	if err != nil {
		t.Fatalf("default zones: %v", err)
	}
	if len(zones) == 0 {
		t.Fatal("expected embedded zones")
	}
	if !sort.StringsAreSorted(zones) {
		t.Fatal("zones must be sorted")
	}
	seen := map[string]struct{}{}
	for _, zone := range zones {
		if _, ok := seen[zone]; ok {
			t.Fatalf("duplicate zone %q", zone)
		}
		seen[zone] = struct{}{}
	}
	if _, ok := seen["Europe/Madrid"]; !ok {
		t.Fatal("expected Europe/Madrid in the embedded list")
	}
}

func TestLoadZonesSkipsCommentsAndDuplicates(t *testing.T) {
	input := "# comment\nEurope/Paris\n\nEurope/Paris\nAsia/Tokyo\n"
	zones, err := timezones.LoadZones(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load zones: %v", err)
	}
	want := []string{"Asia/Tokyo", "Europe/Paris"}
	if diff := cmp.Diff(want, zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchPrefersPrefixMatches(t *testing.T) {
	zones := []string{"America/Lima", "Asia/Manila", "Europe/Lisbon", "Pacific/Palau"}
	got := timezones.Search(zones, "li", 10)
	if len(got) < 2 {
		t.Fatalf("expected at least two matches, got %v", got)
	}
	if got[0] != "America/Lima" && got[0] != "Europe/Lisbon" {
		// neither is a prefix of the full identifier; substring order applies
		t.Logf("substring matches: %v", got)
	}
	for _, zone := range got {
		if !strings.Contains(strings.ToLower(zone), "li") {
			t.Fatalf("non-matching zone %q in results", zone)
		}
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	zones, err := timezones.DefaultZones()
	if err != nil {
		t.Fatalf("default zones: %v", err)
	}
	if got := timezones.Search(zones, "", 5); len(got) != 5 {
		t.Fatalf("expected 5 results, got %d", len(got))
	}
	if got := timezones.Search(zones, "", 10_000); len(got) > timezones.MaxLimit {
		t.Fatalf("limit ceiling not applied, got %d results", len(got))
	}
}

func TestFieldRendersTimezoneSelect(t *testing.T) {
	fld, err := timezones.Field(nil, "Timezone")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	f := form.New().Add("tz", fld)
	out, err := f.Render(nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<select name="tz">`) {
		t.Fatalf("select element missing:\n%s", out)
	}
	if !strings.Contains(out, `<option value="UTC">UTC</option>`) {
		t.Fatalf("UTC option missing:\n%s", out)
	}
}

func TestHandlerServesOptions(t *testing.T) {
	srv := httptest.NewServer(timezones.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "?query=tokyo&limit=5")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var options []timezones.Option
	if err := json.NewDecoder(resp.Body).Decode(&options); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(options) != 1 || options[0].Value != "Asia/Tokyo" {
		t.Fatalf("unexpected options: %+v", options)
	}
}

func TestHandlerRejectsOtherMethods(t *testing.T) {
	srv := httptest.NewServer(timezones.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}
