package rtf

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cdvelop/rtftranslate/errs"
)

// placeholderPattern matches the `{#<id>#}` markers a Sunderer leaves in a template.
var placeholderPattern = regexp.MustCompile(`\{#(\d+)#\}`)

// Stuffer streams a template back out with every placeholder replaced by the
// translated content of the cell it names.
type Stuffer struct {
	cells *CellSet
}

// NewStuffer binds a Stuffer to the CellSet it will pull translated content from.
func NewStuffer(cells *CellSet) *Stuffer {
	return &Stuffer{cells: cells}
}

// Stuff reads templatePath line by line and writes destinationPath with every
// placeholder expanded per spec.md §4.7: a general cell's outer braces are
// added back exactly once around its joined translated lines plus styles;
// a footnote's translated bytes are substituted verbatim, unbraced.
func (s *Stuffer) Stuff(templatePath, destinationPath string) error {
	in, err := os.Open(templatePath)
	if err != nil {
		return errs.New(errs.IOFailure, err)
	}
	defer in.Close()

	out, err := os.Create(destinationPath)
	if err != nil {
		return errs.New(errs.IOFailure, err)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	reader := bufio.NewReader(in)

	for {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			expanded, err := s.expandLine(line)
			if err != nil {
				return err
			}
			if _, err := writer.WriteString(expanded); err != nil {
				return errs.New(errs.IOFailure, err)
			}
		}
		if readErr != nil {
			break
		}
	}
	return writer.Flush()
}

func (s *Stuffer) expandLine(line string) (string, error) {
	var rerr error
	expanded := placeholderPattern.ReplaceAllStringFunc(line, func(token string) string {
		if rerr != nil {
			return token
		}
		m := placeholderPattern.FindStringSubmatch(token)
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return token
		}
		cell, ok := s.cells.Find(id)
		if !ok {
			return token
		}
		if cell.IsFootnote {
			return cell.Footnote
		}
		return "{" + strings.Join(cell.General.TranslatedLines, LineToken) + cell.General.Styles + "}"
	})
	return expanded, rerr
}
