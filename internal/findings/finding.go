// Package findings loads the diff scan findings file and normalizes it for rendering.
package findings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Document is the on-disk findings file. Every field is optional and scalar fields
// accept loosely typed values, so only malformed JSON fails the decode.
type Document struct {
	Summary        Summary        `json:"summary"`
	Metadata       Metadata       `json:"metadata"`
	DetailedIssues DetailedIssues `json:"detailedIssues"`
}

// Summary carries the issue counters computed by the upstream scan step.
type Summary struct {
	TotalNewIssues      Count          `json:"totalNewIssues"`
	TotalExistingIssues Count          `json:"totalExistingIssues"`
	NewIssuesBySeverity SeverityCounts `json:"newIssuesBySeverity"`
	OldIssuesBySeverity SeverityCounts `json:"oldIssuesBySeverity"`
	BuildStatus         Text           `json:"buildStatus"`
}

// Metadata describes the scan run. Only InterruptForOldIssues affects the comment,
// the rest is shown by the artifact report.
type Metadata struct {
	InterruptForOldIssues Flag `json:"interruptForOldIssues"`
	Timestamp             Text `json:"timestamp"`
	CurrentBranch         Text `json:"currentBranch"`
	BaseBranch            Text `json:"baseBranch"`
	InterruptCondition    Text `json:"interruptCondition"`
}

// DetailedIssues lists issues in the order produced by the scanner.
type DetailedIssues struct {
	NewIssues      []IssueRecord `json:"newIssues"`
	ExistingIssues []IssueRecord `json:"existingIssues"`
}

// IssueRecord is a single finding as stored in the file.
type IssueRecord struct {
	Severity       Text `json:"severity"`
	DatasourceTool Text `json:"datasourceTool"`
	AlertTitle     Text `json:"alertTitle"`
}

// Text is a display-only string field that also accepts JSON numbers and booleans,
// so an unexpected timestamp encoding does not fail the whole document.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	v, err := scalar(data, reflect.TypeOf(*t))
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		*t = Text(x)
	case float64:
		*t = Text(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		*t = Text(strconv.FormatBool(x))
	}
	return nil
}

// Count is a non-negative counter. It accepts integral JSON numbers, numeric strings,
// booleans and null; fractions are truncated and unparsable strings count as zero.
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	v, err := scalar(data, reflect.TypeOf(*c))
	if err != nil {
		return err
	}
	*c = 0
	switch x := v.(type) {
	case float64:
		*c = countOf(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			*c = countOf(f)
		}
	case bool:
		if x {
			*c = 1
		}
	}
	return nil
}

func countOf(f float64) Count {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Count(math.Trunc(f))
}

// Flag is a boolean with JavaScript truthiness: non-zero numbers, non-empty strings,
// objects and arrays are true; null, false, 0 and "" are false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(x)
	case float64:
		*f = x != 0
	case string:
		*f = x != ""
	default:
		*f = true
	}
	return nil
}

// SeverityCount is one entry of a severity breakdown.
type SeverityCount struct {
	Severity string
	Count    int
}

// SeverityCounts is a severity breakdown in the key order of the findings file.
type SeverityCounts []SeverityCount

// UnmarshalJSON implements json.Unmarshaler. A repeated key keeps its first position
// and its last value.
func (s *SeverityCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: fmt.Sprintf("%v", tok), Type: reflect.TypeOf(*s)}
	}

	out := SeverityCounts{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var c Count
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("severity %q: %w", key, err)
		}
		if i, seen := index[key]; seen {
			out[i].Count = int(c)
			continue
		}
		index[key] = len(out)
		out = append(out, SeverityCount{Severity: key, Count: int(c)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// scalar decodes data and rejects arrays and objects with a type error naming typ.
func scalar(data []byte, typ reflect.Type) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	switch v.(type) {
	case []interface{}:
		return nil, &json.UnmarshalTypeError{Value: "array", Type: typ}
	case map[string]interface{}:
		return nil, &json.UnmarshalTypeError{Value: "object", Type: typ}
	}
	return v, nil
}
