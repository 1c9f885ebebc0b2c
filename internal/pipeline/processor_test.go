package pipeline

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/cache"
	"github.com/mbalogun/invoice-pipeline/internal/candidates"
	"github.com/mbalogun/invoice-pipeline/internal/crop"
	"github.com/mbalogun/invoice-pipeline/internal/ingest"
	"github.com/mbalogun/invoice-pipeline/internal/lexicon"
	"github.com/mbalogun/invoice-pipeline/internal/recognize"
)

type fakeIngestor struct {
	result ingest.Result
	err    error
}

func (f *fakeIngestor) IngestFile(context.Context, string) (ingest.Result, error) {
	return f.result, f.err
}

func (f *fakeIngestor) IngestDirectory(context.Context, string, bool) ([]ingest.FileResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

type fakeDetector struct {
	zones []crop.DetectedZone
	err   error
}

func (f *fakeDetector) Detect(context.Context, string) ([]crop.DetectedZone, error) {
	return f.zones, f.err
}

type fakeRecognizer struct {
	result recognize.Result
	err    error
}

func (f *fakeRecognizer) Recognize(context.Context, string) (recognize.Result, error) {
	return f.result, f.err
}

func (f *fakeRecognizer) Profile() string { return "fake/v1" }

func pageFixture(t *testing.T) ingest.Result {
	t.Helper()
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "page.png")
	if err := imaging.Save(image.NewRGBA(image.Rect(0, 0, 400, 400)), imgPath); err != nil {
		t.Fatalf("save page fixture: %v", err)
	}

	input := artifact.Input{ID: uuid.New(), SourcePath: "/in/invoice.png", ContentHash: "abc", FileSize: 10}
	return ingest.Result{
		Input: input,
		Pages: []artifact.Page{{
			ID: uuid.New(), InputID: input.ID, PageNumber: 1, Score: 1.0, ImagePath: imgPath,
		}},
	}
}

func newTestProcessor(t *testing.T, ing ingest.Ingestor, det ZoneDetector, rec recognize.Recognizer) *Processor {
	t.Helper()
	storage := t.TempDir()

	c, err := cache.New(cache.Config{Dir: t.TempDir(), MaxBytes: 1 << 20}, nil)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	lex, err := lexicon.Parse([]byte(`{
	  "fields": {"total": {"synonyms": ["total"]}},
	  "zone_priors": {"header": ["total"]}
	}`))
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}

	return NewProcessor(
		nil,
		ing,
		c,
		crop.NewCropper(crop.Config{OutDir: storage}, nil, nil),
		det,
		rec,
		candidates.NewGenerator(lex, nil),
		storage,
	)
}

func TestProcessFileEndToEnd(t *testing.T) {
	res := pageFixture(t)
	det := &fakeDetector{zones: []crop.DetectedZone{{
		Type:       constants.ZoneHeader,
		Box:        artifact.BoundingBox{X: 10, Y: 10, Width: 200, Height: 80},
		Confidence: 0.9,
	}}}
	rec := &fakeRecognizer{result: recognize.Result{
		Text: "Total: 99.00",
		Words: []artifact.Word{
			{Text: "Total:", Box: artifact.BoundingBox{X: 0, Y: 0, Width: 60, Height: 12}, Confidence: 0.98},
			{Text: "99.00", Box: artifact.BoundingBox{X: 70, Y: 0, Width: 50, Height: 12}, Confidence: 0.97},
		},
		AvgConfidence: 0.975,
	}}

	p := newTestProcessor(t, &fakeIngestor{result: res}, det, rec)
	summary, err := p.ProcessFile(context.Background(), "/in/invoice.png", "")
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}

	if summary.Pages != 1 || summary.Zones != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.InputHash == "" || len(summary.PageHashes) != 1 {
		t.Fatalf("hashes missing from summary: %+v", summary)
	}
	if !p.Cache.Contains(summary.InputHash) {
		t.Fatal("input artifact not cached")
	}

	cands := summary.Fields["total"]
	if len(cands) == 0 {
		t.Fatal("no field candidates produced")
	}
	if cands[0].Normalized != "99.00" {
		t.Fatalf("top candidate = %+v", cands[0])
	}
}

func TestProcessFileMergedFieldsStayRankedAndDeduped(t *testing.T) {
	res := pageFixture(t)
	// Both zone types carry the same field, so the per-zone generator
	// output overlaps and the merged list must be re-ranked.
	det := &fakeDetector{zones: []crop.DetectedZone{
		{Type: constants.ZoneHeader, Box: artifact.BoundingBox{X: 0, Y: 0, Width: 200, Height: 80}},
		{Type: constants.ZoneTotals, Box: artifact.BoundingBox{X: 0, Y: 200, Width: 200, Height: 80}},
	}}
	rec := &fakeRecognizer{result: recognize.Result{
		Text: "Total: 149.99",
		Words: []artifact.Word{
			{Text: "Total:", Box: artifact.BoundingBox{X: 0, Y: 0, Width: 60, Height: 12}, Confidence: 0.98},
			{Text: "149.99", Box: artifact.BoundingBox{X: 70, Y: 0, Width: 50, Height: 12}, Confidence: 0.97},
		},
		AvgConfidence: 0.975,
	}}

	storage := t.TempDir()
	c, err := cache.New(cache.Config{Dir: t.TempDir(), MaxBytes: 1 << 20}, nil)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	lex, err := lexicon.Parse([]byte(`{
	  "fields": {"total": {"synonyms": ["total"]}},
	  "zone_priors": {"header": ["total"], "totals": ["total"]}
	}`))
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	p := NewProcessor(nil, &fakeIngestor{result: res}, c,
		crop.NewCropper(crop.Config{OutDir: storage}, nil, nil),
		det, rec, candidates.NewGenerator(lex, nil), storage)

	summary, err := p.ProcessFile(context.Background(), "/in/invoice.png", "")
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if summary.Zones != 2 {
		t.Fatalf("summary = %+v", summary)
	}

	cands := summary.Fields["total"]
	if len(cands) == 0 {
		t.Fatal("no field candidates produced")
	}
	seen := map[string]bool{}
	for i, c := range cands {
		if seen[c.Normalized] {
			t.Fatalf("normalized value %q appears twice in %+v", c.Normalized, cands)
		}
		seen[c.Normalized] = true
		if i > 0 && cands[i-1].Score < c.Score {
			t.Fatalf("candidates out of order: %+v", cands)
		}
	}
	if cands[0].Normalized != "149.99" {
		t.Fatalf("top candidate = %+v", cands[0])
	}
}

func TestProcessFileSkipsUnrasterizedPages(t *testing.T) {
	input := artifact.Input{ID: uuid.New(), SourcePath: "/in/doc.pdf"}
	res := ingest.Result{
		Input: input,
		Pages: []artifact.Page{
			{ID: uuid.New(), InputID: input.ID, PageNumber: 1, Text: "text layer only"},
			{ID: uuid.New(), InputID: input.ID, PageNumber: 2, Text: "still no image"},
		},
	}

	p := newTestProcessor(t, &fakeIngestor{result: res}, &fakeDetector{}, &fakeRecognizer{})
	summary, err := p.ProcessFile(context.Background(), "/in/doc.pdf", "")
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if summary.Pages != 2 || summary.Zones != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.PageHashes) != 2 {
		t.Fatalf("pages not cached: %+v", summary)
	}
}

func TestProcessFileDetectorFailureDegrades(t *testing.T) {
	res := pageFixture(t)
	p := newTestProcessor(t, &fakeIngestor{result: res},
		&fakeDetector{err: errors.New("layout service down")}, &fakeRecognizer{})

	summary, err := p.ProcessFile(context.Background(), "/in/invoice.png", "")
	if err != nil {
		t.Fatalf("detector failure aborted the document: %v", err)
	}
	if summary.Zones != 0 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestProcessFileRecognizerFailureSkipsZone(t *testing.T) {
	res := pageFixture(t)
	det := &fakeDetector{zones: []crop.DetectedZone{{
		Type: constants.ZoneHeader,
		Box:  artifact.BoundingBox{X: 0, Y: 0, Width: 100, Height: 50},
	}}}
	p := newTestProcessor(t, &fakeIngestor{result: res}, det,
		&fakeRecognizer{err: errors.New("engine crashed")})

	summary, err := p.ProcessFile(context.Background(), "/in/invoice.png", "")
	if err != nil {
		t.Fatalf("recognizer failure aborted the document: %v", err)
	}
	if summary.Zones != 1 {
		t.Fatalf("zone not counted: %+v", summary)
	}
	if len(summary.Fields["total"]) != 0 {
		t.Fatalf("candidates produced without recognition: %+v", summary.Fields)
	}
}

func TestProcessFileIngestFailurePropagates(t *testing.T) {
	p := newTestProcessor(t, &fakeIngestor{err: ingest.ErrUnsupportedFormat},
		&fakeDetector{}, &fakeRecognizer{})
	if _, err := p.ProcessFile(context.Background(), "/in/notes.txt", ""); !errors.Is(err, ingest.ErrUnsupportedFormat) {
		t.Fatalf("expected ingest error, got %v", err)
	}
}
