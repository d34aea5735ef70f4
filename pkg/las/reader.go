package las

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	encoding string
	logger   *zap.Logger
}

// WithEncoding sets the text encoding of the file (utf-8, latin1, windows-1252).
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithLogger sets the logger used for recoverable parse warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Read opens and parses a LAS file.
func Read(ctx context.Context, path string, opts ...Option) (*Well, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening LAS file %s: %w", path, err)
	}
	defer f.Close()

	w, err := Parse(ctx, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return w, nil
}

// Parse reads a LAS document from r.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Well, error) {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	src, err := decodeReader(r, o.encoding)
	if err != nil {
		return nil, err
	}

	p := &parser{
		well:   &Well{Null: DefaultNull},
		logger: o.logger,
	}
	if err := p.run(ctx, src); err != nil {
		return nil, err
	}
	return p.well, nil
}

type parser struct {
	well    *Well
	logger  *zap.Logger
	section byte
	other   strings.Builder
	tokens  []string
	lineNum int
}

func (p *parser) run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	for scanner.Scan() {
		p.lineNum++
		if p.lineNum%4096 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		line := scanner.Text()
		if p.lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if err := p.line(line); err != nil {
			return fmt.Errorf("line %d: %w", p.lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	return p.finish()
}

func (p *parser) line(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "~") {
		return p.startSection(trimmed)
	}
	if strings.HasPrefix(trimmed, "#") {
		return nil
	}

	switch p.section {
	case 'V', 'W', 'C', 'P':
		item, err := parseHeaderLine(trimmed)
		if err != nil {
			p.logger.Warn("skipping malformed header line",
				zap.Int("line", p.lineNum),
				zap.String("section", string(p.section)),
				zap.Error(err),
			)
			return nil
		}
		return p.headerItem(item)
	case 'O':
		p.other.WriteString(line)
		p.other.WriteByte('\n')
	case 'A':
		return p.dataLine(trimmed)
	}
	return nil
}

func (p *parser) startSection(header string) error {
	if len(header) < 2 {
		return fmt.Errorf("empty section header")
	}
	p.section = strings.ToUpper(header[1:2])[0]
	if p.section == 'A' {
		if len(p.well.Curves) == 0 {
			return ErrNoCurves
		}
		p.prepareColumns()
	}
	return nil
}

func (p *parser) headerItem(item HeaderItem) error {
	switch p.section {
	case 'V':
		p.well.Version = append(p.well.Version, item)
		switch strings.ToUpper(item.Mnemonic) {
		case "VERS":
			return checkVersion(item.Value)
		case "WRAP":
			p.well.Wrapped = strings.EqualFold(item.Value, "YES")
		}
	case 'W':
		if p.legacyHeader() {
			item = swapLegacyValue(item)
		}
		p.well.Header = append(p.well.Header, item)
		if strings.EqualFold(item.Mnemonic, "NULL") {
			null, err := strconv.ParseFloat(item.Value, 64)
			if err != nil {
				p.logger.Warn("invalid NULL value, using default",
					zap.String("value", item.Value),
					zap.Float64("default", DefaultNull),
				)
				return nil
			}
			p.well.Null = null
		}
	case 'C':
		p.well.Curves = append(p.well.Curves, item)
	case 'P':
		p.well.Params = append(p.well.Params, item)
	}
	return nil
}

// legacyHeader reports whether ~W values sit in the description field, as
// LAS 1.2 files write them.
func (p *parser) legacyHeader() bool {
	v := p.well.VersionString()
	return strings.HasPrefix(v, "1")
}

func swapLegacyValue(item HeaderItem) HeaderItem {
	switch strings.ToUpper(item.Mnemonic) {
	case "STRT", "STOP", "STEP", "NULL":
		return item
	}
	if item.Description != "" {
		item.Value, item.Description = item.Description, item.Value
	}
	return item
}

func checkVersion(v string) error {
	f, err := strconv.ParseFloat(strings.Fields(v + " 0")[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	if f < 1 || f >= 3 {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
	return nil
}

func (p *parser) prepareColumns() {
	counts := make(map[string]int, len(p.well.Curves))
	for _, c := range p.well.Curves {
		counts[c.Mnemonic]++
	}
	seen := make(map[string]int, len(p.well.Curves))
	p.well.index = make(map[string]int, len(p.well.Curves))
	for i := range p.well.Curves {
		m := p.well.Curves[i].Mnemonic
		if counts[m] > 1 {
			seen[m]++
			m = fmt.Sprintf("%s:%d", m, seen[m])
			p.well.Curves[i].Mnemonic = m
		}
		p.well.index[m] = i
	}
	p.well.columns = make([][]float64, len(p.well.Curves))
}

func (p *parser) dataLine(line string) error {
	fields := strings.Fields(line)
	if p.well.Wrapped {
		p.tokens = append(p.tokens, fields...)
		return nil
	}
	if len(fields) != len(p.well.columns) {
		p.well.DroppedRows++
		p.logger.Warn("skipping data row with wrong number of values",
			zap.Int("line", p.lineNum),
			zap.Int("values", len(fields)),
			zap.Int("curves", len(p.well.columns)),
		)
		return nil
	}
	p.appendRow(fields)
	return nil
}

func (p *parser) appendRow(fields []string) {
	for i, f := range fields {
		p.well.columns[i] = append(p.well.columns[i], p.value(f))
	}
}

func (p *parser) value(field string) float64 {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || v == p.well.Null {
		return math.NaN()
	}
	return v
}

func (p *parser) finish() error {
	if len(p.well.Curves) == 0 {
		return ErrNoCurves
	}
	if p.well.columns == nil {
		return ErrNoData
	}

	if p.well.Wrapped {
		n := len(p.well.columns)
		full := len(p.tokens) / n * n
		for i := 0; i < full; i += n {
			p.appendRow(p.tokens[i : i+n])
		}
		if rest := len(p.tokens) - full; rest > 0 {
			p.well.DroppedRows++
			p.logger.Warn("discarding incomplete trailing data row", zap.Int("values", rest))
		}
		p.tokens = nil
	}

	if p.well.Rows() == 0 {
		return ErrNoData
	}
	p.well.Other = p.other.String()
	return nil
}

// parseHeaderLine splits `MNEM.UNIT VALUE : DESCRIPTION`. The unit ends at
// the first space after the period and the description begins after the
// last colon. A colon inside the unit (HH:MM) only ends it when the rest of
// the line has no colon of its own.
func parseHeaderLine(line string) (HeaderItem, error) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return HeaderItem{}, fmt.Errorf("missing '.' after mnemonic")
	}
	item := HeaderItem{Mnemonic: normalize(line[:dot])}
	if item.Mnemonic == "" {
		return HeaderItem{}, fmt.Errorf("empty mnemonic")
	}

	rest := line[dot+1:]
	unit := rest
	if end := strings.IndexAny(rest, " \t"); end >= 0 {
		unit, rest = rest[:end], rest[end:]
	} else {
		rest = ""
	}
	if c := strings.LastIndex(unit, ":"); c >= 0 && !strings.Contains(rest, ":") {
		unit, rest = unit[:c], unit[c:]+rest
	}
	item.Unit = unit

	colon := strings.LastIndex(rest, ":")
	if colon < 0 {
		item.Value = normalize(rest)
		return item, nil
	}
	item.Value = normalize(rest[:colon])
	item.Description = normalize(rest[colon+1:])
	return item, nil
}
