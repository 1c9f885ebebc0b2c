package recognize

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Config for the tesseract adapter.
type Config struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	TessdataDir string
	PSM         int // e.g., 6 is good for uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use default
}

// Tesseract runs the tesseract binary in TSV mode and parses word-level
// text, bounding boxes and confidences.
type Tesseract struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTesseract(cfg Config, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &Tesseract{cfg: cfg, runner: execRunner{}, logger: logger}
}

func (t *Tesseract) Profile() string {
	return fmt.Sprintf("tesseract-%s-psm%d", t.cfg.Lang, t.cfg.PSM)
}

// Recognize OCRs one image. TSV columns: level, page_num, block_num,
// par_num, line_num, word_num, left, top, width, height, conf, text.
func (t *Tesseract) Recognize(ctx context.Context, imagePath string) (Result, error) {
	args := []string{imagePath, "stdout", "-l", t.cfg.Lang}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(t.cfg.OEM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, args...)
	if err != nil {
		return Result{}, fmt.Errorf("tesseract: %s: %w", truncate(string(errb), 512), err)
	}
	return parseTSV(string(out)), nil
}

func parseTSV(tsv string) Result {
	var res Result
	var sum float64
	var lines []string
	var cur strings.Builder
	lastLine := -1

	for i, ln := range strings.Split(tsv, "\n") {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[10]
		text := strings.TrimSpace(cols[11])
		if text == "" || confStr == "" || confStr == "-1" {
			continue
		}
		conf, err := strconv.ParseFloat(confStr, 64)
		if err != nil {
			continue
		}
		left, _ := strconv.Atoi(cols[6])
		top, _ := strconv.Atoi(cols[7])
		width, _ := strconv.Atoi(cols[8])
		height, _ := strconv.Atoi(cols[9])
		lineNum, _ := strconv.Atoi(cols[4])

		res.Words = append(res.Words, artifact.Word{
			Text: text,
			Box: artifact.BoundingBox{
				X: left, Y: top, Width: width, Height: height,
			},
			Confidence: conf / 100.0,
		})
		sum += conf / 100.0

		if lineNum != lastLine {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lastLine = lineNum
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(text)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}

	res.Text = strings.Join(lines, "\n")
	if n := len(res.Words); n > 0 {
		res.AvgConfidence = sum / float64(n)
	}
	return res
}
