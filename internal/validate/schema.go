// Package validate holds the offline knowledge-base checks run by faqlint:
// entry schema validation and source-domain whitelisting. These run against
// the data files independently of request serving.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// EntryReport lists the problems found in one knowledge-base entry.
// Warnings do not fail validation.
type EntryReport struct {
	Key      string
	Errors   []string
	Warnings []string
}

// Schema validates every entry of a knowledge-base JSON document: required
// fields present with the right types, source parseable as a URL, and
// last_updated a real YYYY-MM-DD date. Returns one report per entry that
// has errors or warnings, in document order.
func Schema(data []byte) ([]EntryReport, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("document must be a JSON object")
	}

	var reports []EntryReport
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		var fields map[string]json.RawMessage
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("entry %q is not an object: %w", key, err)
		}

		report := checkEntry(key, fields)
		if len(report.Errors) > 0 || len(report.Warnings) > 0 {
			reports = append(reports, report)
		}
	}

	return reports, nil
}

func checkEntry(key string, fields map[string]json.RawMessage) EntryReport {
	report := EntryReport{Key: key}
	fail := func(format string, args ...any) {
		report.Errors = append(report.Errors, fmt.Sprintf(format, args...))
	}

	if raw, ok := fields["question_variants"]; !ok {
		fail("missing 'question_variants' field")
	} else {
		var variants []string
		if err := json.Unmarshal(raw, &variants); err != nil {
			fail("'question_variants' must be a list of strings")
		} else if len(variants) == 0 {
			fail("'question_variants' is empty")
		}
	}

	if answer, ok := stringField(fields, "answer", fail); ok && strings.TrimSpace(answer) == "" {
		fail("'answer' is empty")
	}

	if source, ok := stringField(fields, "source", fail); ok && !validURL(source) {
		fail("'source' is not a valid URL: %s", source)
	}

	if date, ok := stringField(fields, "last_updated", fail); ok && !validISODate(date) {
		fail("'last_updated' is not a valid ISO date (YYYY-MM-DD): %s", date)
	}

	// Optional but recommended fields
	for _, name := range []string{"scheme_name", "category"} {
		if _, ok := fields[name]; !ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("missing %q field (optional but recommended)", name))
		}
	}

	return report
}

func stringField(fields map[string]json.RawMessage, name string, fail func(string, ...any)) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		fail("missing '%s' field", name)
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		fail("'%s' must be a string", name)
		return "", false
	}
	return s, true
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func validISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
