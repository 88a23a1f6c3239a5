package result_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuWang03/cluebench/internal/result"
)

func demoTable() *result.Table {
	tab := result.NewTable("clues", result.Synthetic)
	for _, c := range []float64{2, 3, 4} {
		tab.AddCondition(c)
	}
	tab.Put("GCS", 2, result.Sample{Value: 45.3})
	tab.Put("GCS", 3, result.Sample{Value: 78.2})
	tab.Put("GCS", 4, result.Sample{Value: 125.5})
	tab.Put("CDP", 2, result.Sample{Value: 156.8})
	tab.Put("CDP", 4, result.Sample{Value: 478.3})
	return tab
}

func TestRoundTripPreservesTriples(t *testing.T) {
	orig := demoTable()
	data, err := result.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := result.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Variable != "clues" || got.Provenance != result.Synthetic {
		t.Errorf("header: got %q/%q", got.Variable, got.Provenance)
	}
	for _, algo := range orig.Algorithms() {
		for _, cond := range orig.Conditions() {
			want, wantOK := orig.Get(algo, cond)
			have, haveOK := got.Get(algo, cond)
			if wantOK != haveOK || (wantOK && want.Value != have.Value) {
				t.Errorf("(%s, %v): got (%v, %v), want (%v, %v)",
					algo, cond, have.Value, haveOK, want.Value, wantOK)
			}
		}
	}
}

func TestReserializeIsByteIdentical(t *testing.T) {
	first, err := result.Marshal(demoTable())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	loaded, err := result.Unmarshal(first)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	second, err := result.Marshal(loaded)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("reserialization differs:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestMarshalSectionsAndOrdering(t *testing.T) {
	data, err := result.Marshal(demoTable())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	doc := string(data)

	resultsIdx := strings.Index(doc, `"results"`)
	statsIdx := strings.Index(doc, `"statistics"`)
	if resultsIdx < 0 || statsIdx < 0 || statsIdx < resultsIdx {
		t.Fatalf("expected results before statistics:\n%s", doc)
	}
	if gcs, cdp := strings.Index(doc, `"GCS"`), strings.Index(doc, `"CDP"`); gcs > cdp {
		t.Errorf("algorithm order not preserved:\n%s", doc)
	}
	for _, key := range []string{`"avg"`, `"min"`, `"max"`, `"std"`} {
		if !strings.Contains(doc, key) {
			t.Errorf("missing statistics key %s", key)
		}
	}
}

func TestMarshalPreservesNonASCII(t *testing.T) {
	tab := result.NewTable("線索數", result.Measured)
	tab.Put("BAB (w/ AB-tree)", 2, result.Sample{Value: 87.5})
	data, err := result.Marshal(tab)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "線索數") {
		t.Errorf("non-ASCII escaped:\n%s", data)
	}
}

func TestEmptyRowSerializesAsEmptyObject(t *testing.T) {
	tab := result.NewTable("clues", result.Measured)
	tab.AddAlgorithm("Y")
	data, err := result.Marshal(tab)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"Y": {}`) {
		t.Errorf("expected empty object row:\n%s", data)
	}
	got, err := result.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if algos := got.Algorithms(); len(algos) != 1 || algos[0] != "Y" {
		t.Errorf("empty row lost on load: %v", algos)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clues.json")
	if err := result.Save(demoTable(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := result.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 5 {
		t.Errorf("samples: got %d, want 5", got.Len())
	}
}

func TestSaveReportsAttemptedPath(t *testing.T) {
	err := result.Save(demoTable(), "/no/such/dir/out.json")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "/no/such/dir/out.json") {
		t.Errorf("error does not name the path: %v", err)
	}
}
