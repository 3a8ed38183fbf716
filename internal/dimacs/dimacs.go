// Package dimacs reads and writes CNF formulas in the DIMACS text format.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/cnfunify/internal/cnf"
)

// Maximum size of a line. Clause lines of industrial instances can be much
// longer than bufio's default.
const maxLineSize = 16 << 20

// ParseFile parses the DIMACS file with the given name. If gzipped is true,
// the file is decompressed while being read.
func ParseFile(filename string, gzipped bool) (*cnf.CNF, error) {
	rc, err := openReader(filename, gzipped)
	if err != nil {
		return nil, &FormatError{Kind: ReadError, Err: err}
	}
	defer rc.Close()

	return Parse(rc)
}

// Parse reads a CNF formula in DIMACS format from r.
//
// Comment lines are stored without their "c" marker. The clause count of the
// problem line is only indicative: NumClauses is always set to the number of
// clauses actually read. Parsing stops at the end of the input or at a line
// containing a single "%".
func Parse(r io.Reader) (*cnf.CNF, error) {
	p := &parser{f: &cnf.CNF{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	stop := false
	for !stop && scanner.Scan() {
		p.lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var err error
		switch line[0] {
		case '%': // end of instance
			stop = true
		case 'c':
			p.parseCommentLine(line)
		case 'p':
			err = p.parseHeaderLine(line)
		default:
			err = p.parseClauseLine(line)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{Kind: ReadError, Line: p.lineNum + 1, Err: err}
	}

	p.f.NumClauses = len(p.f.Clauses)
	return p.f, nil
}

type parser struct {
	f         *cnf.CNF
	lineNum   int
	hasHeader bool
}

func (p *parser) errorf(kind Kind, line string, format string, args ...any) error {
	return &FormatError{
		Kind: kind,
		Line: p.lineNum,
		Text: line,
		Err:  fmt.Errorf(format, args...),
	}
}

func (p *parser) parseCommentLine(line string) {
	p.f.Comments = append(p.f.Comments, strings.TrimSpace(line[1:]))
}

func (p *parser) parseHeaderLine(line string) error {
	if p.hasHeader {
		return p.errorf(HeaderError, line, "found a second header line")
	}
	parts := strings.Fields(line)
	if len(parts) != 4 || parts[0] != "p" {
		return p.errorf(HeaderError, line, "want \"p cnf <variables> <clauses>\"")
	}
	if parts[1] != "cnf" {
		return p.errorf(HeaderError, line, "instance of type %q are not supported", parts[1])
	}
	nVars, err := parseCount(parts[2])
	if err != nil {
		return p.errorf(HeaderError, line, "could not parse number of variables: %w", err)
	}
	nClauses, err := parseCount(parts[3])
	if err != nil {
		return p.errorf(HeaderError, line, "could not parse number of clauses: %w", err)
	}

	p.hasHeader = true
	p.f.NumVars = nVars
	p.f.NumClauses = nClauses
	if p.f.Clauses == nil {
		p.f.Clauses = make([][]int, 0, nClauses)
	}
	return nil
}

func (p *parser) parseClauseLine(line string) error {
	c, err := parseClause(line)
	if err != nil {
		return p.errorf(ClauseError, line, "%w", err)
	}
	p.f.Clauses = append(p.f.Clauses, c)
	return nil
}

// parseClause returns the literals of the given line up to the first zero.
// Tokens after the zero are ignored.
func parseClause(line string) ([]int, error) {
	parts := strings.Fields(line)
	literals := make([]int, 0, len(parts))
	for _, p := range parts {
		l, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		if l == 0 {
			break
		}
		literals = append(literals, l)
	}
	return literals, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// openReader opens the given file, decompressing it on the fly if gzipped is
// true.
func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return file, nil
	}
	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("error reading gzip file %q: %w", filename, err)
	}
	return &gzipReadCloser{Reader: zr, file: file}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (rc *gzipReadCloser) Close() error {
	err := rc.Reader.Close()
	if ferr := rc.file.Close(); err == nil {
		err = ferr
	}
	return err
}
