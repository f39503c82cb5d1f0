package plasmid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// fieldSep separates the fields of a line in a design file
const fieldSep = ", "

// Request is a single line of a design file. Only the first field, the
// feature's name, is used during assembly.
type Request struct {
	// Token is the first field of the line, as written
	Token string

	// Name is Token without "_site" or "_gene"
	Name string

	// Fields are all of the line's fields, including Token
	Fields []string

	// Line is the 1-based line number in the design file (0 if unknown)
	Line int
}

// Normalize removes "_site" and then "_gene" from a feature token so
// "EcoRI_site" and "EcoRI" are the same feature.
func Normalize(token string) string {
	token = strings.ReplaceAll(token, "_site", "")
	return strings.ReplaceAll(token, "_gene", "")
}

// ParseRequest splits a design line on ", " and normalizes its first field.
func ParseRequest(line string) Request {
	fields := strings.Split(strings.TrimSpace(line), fieldSep)
	return Request{
		Token:  fields[0],
		Name:   Normalize(fields[0]),
		Fields: fields,
	}
}

// ParseDesign reads one Request per line of r. Blank lines are kept (with an
// empty Name) so line numbers stay aligned with the file.
func ParseDesign(r io.Reader) (reqs []Request, err error) {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		req := ParseRequest(sc.Text())
		req.Line = n
		reqs = append(reqs, req)
	}

	if err = sc.Err(); err != nil {
		return nil, err
	}

	return reqs, nil
}

// ReadDesign reads the feature requests in a design file.
func ReadDesign(path string) ([]Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open design file: %w", err)
	}
	defer f.Close()

	reqs, err := ParseDesign(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read design file %s: %w", path, err)
	}

	return reqs, nil
}
