// Package parser turns lines of the form [xxxxx,yyyyy] into zip code
// intervals.
package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/henderiw/zipcondense/pkg/interval"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type Option func(*Parser)

// WithLogger sets the logger used for per line diagnostics. Accepted lines
// are reported at V(1), rejected lines at V(0).
func WithLogger(log logr.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type Parser struct {
	log logr.Logger
}

func New(opts ...Option) *Parser {
	p := &Parser{log: logr.Discard()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse converts one line into an interval. The first '[', ',' and ']' of
// the line delimit the two zip codes, whatever else the line holds.
func (p *Parser) Parse(line string, lineNumber int) (interval.Interval, error) {
	open := strings.IndexByte(line, '[')
	comma := strings.IndexByte(line, ',')
	closing := strings.IndexByte(line, ']')

	if open == -1 || comma == -1 || closing == -1 {
		return interval.Interval{}, reject(line, lineNumber, MalformedBrackets, nil)
	}
	if comma < open || closing < comma || closing < open {
		return interval.Interval{}, reject(line, lineNumber, MalformedBrackets, nil)
	}

	first := strings.TrimSpace(line[open+1 : comma])
	second := strings.TrimSpace(line[comma+1 : closing])

	low, err := parseZip(first)
	if err != nil {
		return interval.Interval{}, reject(line, lineNumber, reasonFor(err), err)
	}
	high, err := parseZip(second)
	if err != nil {
		return interval.Interval{}, reject(line, lineNumber, reasonFor(err), err)
	}

	r, err := interval.New(low, high)
	if err != nil {
		return interval.Interval{}, reject(line, lineNumber, reasonFor(err), err)
	}
	return r, nil
}

// ReadFrom parses every line of rd. Rejected lines are skipped and returned
// as an aggregate next to the accepted intervals, which keep input order.
// The returned error is only set when rd itself fails.
func (p *Parser) ReadFrom(rd io.Reader) ([]interval.Interval, utilerrors.Aggregate, error) {
	var (
		rr      []interval.Interval
		rejects []error
	)
	scanner := bufio.NewScanner(rd)
	// lines are not length limited, an overlong line is rejected like any
	// other malformed one
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	scanner.Split(scanLines)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		r, err := p.Parse(line, lineNumber)
		if err != nil {
			p.log.Info("skipping line", "line", lineNumber, "reason", reasonString(err), "input", line)
			rejects = append(rejects, err)
			continue
		}
		p.log.V(1).Info(fmt.Sprintf("Line %d: %d:%d", lineNumber, r.From(), r.To()))
		rr = append(rr, r)
	}
	if err := scanner.Err(); err != nil {
		return rr, utilerrors.NewAggregate(rejects), fmt.Errorf("read failed after line %d: %w", lineNumber, err)
	}
	return rr, utilerrors.NewAggregate(rejects), nil
}

// scanLines splits on "\n", "\r\n" and a lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data):
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		case atEOF:
			return i + 1, data[:i], nil
		}
		// a '\r' at the end of the buffer may be followed by '\n'
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// parseZip accepts base 10 integers with an optional leading sign that
// fit in 32 bits; anything else is not a number.
func parseZip(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func reasonFor(err error) Reason {
	var (
		numErr *strconv.NumError
		bndErr *interval.BoundsError
		invErr *interval.InvertedError
	)
	switch {
	case errors.As(err, &numErr):
		return NonNumeric
	case errors.As(err, &bndErr):
		return OutOfBounds
	case errors.As(err, &invErr):
		return Inverted
	default:
		return NonNumeric
	}
}

func reject(line string, lineNumber int, reason Reason, err error) *RejectError {
	return &RejectError{
		Line:   lineNumber,
		Reason: reason,
		Input:  line,
		Err:    err,
	}
}

func reasonString(err error) string {
	if reason, ok := ReasonOf(err); ok {
		return reason.String()
	}
	return err.Error()
}
