package dimacs

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"

	"github.com/rhartert/cnfunify/internal/cnf"
)

// Serialize writes f to w in DIMACS format: the comments first, then the
// problem line, then one clause per line. The problem line always reports the
// actual number of clauses of f.
func Serialize(w io.Writer, f *cnf.CNF) error {
	bw := bufio.NewWriter(w)

	for _, c := range f.Comments {
		bw.WriteString("c ")
		bw.WriteString(c)
		bw.WriteByte('\n')
	}

	buf := make([]byte, 0, 64)
	buf = append(buf, "p cnf "...)
	buf = strconv.AppendInt(buf, int64(f.NumVars), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(f.Clauses)), 10)
	buf = append(buf, '\n')
	bw.Write(buf)

	for _, c := range f.Clauses {
		buf = buf[:0]
		for _, l := range c {
			buf = strconv.AppendInt(buf, int64(l), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0', '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes f in DIMACS format to the file with the given name,
// compressing it if gzipped is true. The file is created or truncated.
func WriteFile(filename string, f *cnf.CNF, gzipped bool) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if !gzipped {
		return Serialize(file, f)
	}

	zw := gzip.NewWriter(file)
	if err := Serialize(zw, f); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
