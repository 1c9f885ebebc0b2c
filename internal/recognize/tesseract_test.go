package recognize

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvRow(lineNum, left, top, width, height int, conf, text string) string {
	return strings.Join([]string{
		"5", "1", "1", "1",
		strconv.Itoa(lineNum), "1",
		strconv.Itoa(left), strconv.Itoa(top), strconv.Itoa(width), strconv.Itoa(height),
		conf, text,
	}, "\t")
}

func TestParseTSV(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvRow(1, 10, 10, 60, 12, "96", "Total:"),
		tsvRow(1, 80, 10, 50, 12, "92", "99.00"),
		tsvRow(2, 10, 30, 40, 12, "88", "Tax:"),
		// structural rows carry conf -1 and no text; both get skipped
		tsvRow(2, 0, 0, 0, 0, "-1", ""),
		tsvRow(2, 5, 30, 1, 1, "95", " "),
	}, "\n")

	res := parseTSV(tsv)

	if len(res.Words) != 3 {
		t.Fatalf("got %d words, want 3: %+v", len(res.Words), res.Words)
	}
	if res.Text != "Total: 99.00\nTax:" {
		t.Fatalf("text = %q", res.Text)
	}

	w := res.Words[0]
	if w.Text != "Total:" {
		t.Fatalf("word = %+v", w)
	}
	if w.Box.X != 10 || w.Box.Y != 10 || w.Box.Width != 60 || w.Box.Height != 12 {
		t.Fatalf("box = %+v", w.Box)
	}
	if math.Abs(w.Confidence-0.96) > 1e-9 {
		t.Fatalf("confidence = %v", w.Confidence)
	}

	wantAvg := (0.96 + 0.92 + 0.88) / 3
	if math.Abs(res.AvgConfidence-wantAvg) > 1e-9 {
		t.Fatalf("avg confidence = %v, want %v", res.AvgConfidence, wantAvg)
	}
}

func TestParseTSVEmpty(t *testing.T) {
	res := parseTSV(tsvHeader + "\n")
	if len(res.Words) != 0 || res.Text != "" || res.AvgConfidence != 0 {
		t.Fatalf("empty tsv produced %+v", res)
	}
}

func TestRecognizeArgs(t *testing.T) {
	stub := &stubRunner{stdout: []byte(tsvHeader + "\n")}
	rec := NewTesseract(Config{Lang: "deu", PSM: 6, OEM: 1, TessdataDir: "/opt/tessdata"}, nil)
	rec.runner = stub

	if _, err := rec.Recognize(context.Background(), "/tmp/zone.png"); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if stub.gotName != "tesseract" {
		t.Fatalf("ran %q", stub.gotName)
	}
	got := strings.Join(stub.gotArgs, " ")
	want := "/tmp/zone.png stdout -l deu --psm 6 --oem 1 --tessdata-dir /opt/tessdata tsv"
	if got != want {
		t.Fatalf("args = %q, want %q", got, want)
	}
}

func TestRecognizeFailureIncludesStderr(t *testing.T) {
	rec := NewTesseract(Config{}, nil)
	rec.runner = &stubRunner{stderr: []byte("could not load language"), err: errors.New("exit status 1")}

	_, err := rec.Recognize(context.Background(), "/tmp/zone.png")
	if err == nil || !strings.Contains(err.Error(), "could not load language") {
		t.Fatalf("error does not surface stderr: %v", err)
	}
}

func TestProfile(t *testing.T) {
	rec := NewTesseract(Config{PSM: 6}, nil)
	if got := rec.Profile(); got != "tesseract-eng-psm6" {
		t.Fatalf("profile = %q", got)
	}
}
