package textfsm

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/sirikothe/gotextfsm"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
)

//go:embed templates/*.textfsm
var templateFS embed.FS

// Record is one flat record extracted from raw command output: field
// name (lower-cased) to raw text value. Unmatched fields are empty.
type Record map[string]string

// Extractor turns raw device output into ordered flat records using the
// named template.
type Extractor interface {
	Extract(raw, templateID string) ([]Record, error)
}

type template struct {
	source string
	// filldown lists the fields that persist across records; such
	// fields do not count when deciding whether a record is empty.
	filldown map[string]bool
}

// TemplateExtractor extracts records with the embedded TextFSM
// templates. The zero value is not usable; call New.
type TemplateExtractor struct {
	mu        sync.Mutex
	templates map[string]*template
}

// New returns an extractor backed by the embedded template set.
func New() *TemplateExtractor {
	return &TemplateExtractor{templates: make(map[string]*template)}
}

func (e *TemplateExtractor) load(templateID string) (*template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t, ok := e.templates[templateID]; ok {
		return t, nil
	}

	raw, err := templateFS.ReadFile("templates/" + templateID + ".textfsm")
	if err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeNotFound,
			fmt.Sprintf("unknown template %q", templateID), err)
	}

	t := &template{
		source:   string(raw),
		filldown: filldownFields(string(raw)),
	}
	e.templates[templateID] = t
	return t, nil
}

// Extract parses raw text with the named template and returns the
// cleaned record sequence. Records in which every non-filldown field is
// empty after trimming are discarded; the extractor emits such spurious
// records at block boundaries.
func (e *TemplateExtractor) Extract(raw, templateID string) ([]Record, error) {
	t, err := e.load(templateID)
	if err != nil {
		return nil, err
	}

	fsm := gotextfsm.TextFSM{}
	if err := fsm.ParseString(t.source); err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeInternal,
			fmt.Sprintf("template %q does not parse", templateID), err)
	}

	parser := gotextfsm.ParserOutput{}
	if err := parser.ParseTextString(raw, fsm, true); err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeInternal,
			fmt.Sprintf("template %q failed on input", templateID), err)
	}

	records := make([]Record, 0, len(parser.Dict))
	for _, row := range parser.Dict {
		rec := make(Record, len(row))
		for name, val := range row {
			rec[strings.ToLower(name)] = asString(val)
		}
		if empty(rec, t.filldown) {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// empty reports whether every non-filldown field of the record is blank.
func empty(rec Record, filldown map[string]bool) bool {
	for name, val := range rec {
		if filldown[name] {
			continue
		}
		if strings.TrimSpace(val) != "" {
			return false
		}
	}
	return true
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []string:
		return strings.Join(s, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// filldownFields scans template source for Value definitions carrying
// the Filldown option.
func filldownFields(source string) map[string]bool {
	fields := make(map[string]bool)
	for _, line := range strings.Split(source, "\n") {
		if !strings.HasPrefix(line, "Value ") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		// Value [options] NAME regexp
		if strings.Contains(parts[1], "Filldown") {
			fields[strings.ToLower(parts[2])] = true
		}
	}
	return fields
}
