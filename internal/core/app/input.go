package app

import (
	"bufio"
	"io"

	domainerr "jsdeps/internal/core/errors"
	"jsdeps/internal/shared/util"
)

// ReadSpecifiers reads one specifier per line. Blank lines and "# " comments
// are skipped; everything else, subpath imports like "#internal/x" included,
// is kept verbatim after trimming.
func ReadSpecifiers(r io.Reader) ([]string, error) {
	var specs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := util.NormalizeLine(scanner.Text())
		if util.IsCommentOrBlank(line) {
			continue
		}
		specs = append(specs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, domainerr.AddContext(domainerr.Wrap(err, domainerr.CodeInvalidInput, "read specifiers"), domainerr.CtxOperation, "read_specifiers")
	}
	return specs, nil
}
