package dashboard

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

// Violation describes one field of a decoded snapshot that breaks its contract.
type Violation struct {
	Path   string
	Reason string
}

func (v Violation) String() string { return v.Path + ": " + v.Reason }

// Check validates a snapshot decoded into generic JSON values (as produced by
// json.Unmarshal into map[string]any) against the entry's bounds, choices
// and envelope. Violations are sorted by path.
func (e Entry) Check(doc map[string]any) []Violation {
	var out []Violation
	add := func(path, format string, args ...any) {
		out = append(out, Violation{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	if doc["status"] != StatusSuccess {
		add("status", "want %q, got %v", StatusSuccess, doc["status"])
	}
	if ts, _ := doc["timestamp"].(string); ts == "" {
		add("timestamp", "missing")
	} else if _, err := time.ParseInLocation(TimestampLayout, ts, time.Local); err != nil {
		add("timestamp", "unparseable %q", ts)
	}

	for path, r := range e.Bounds {
		v, found := lookup(doc, path)
		if !found {
			add(path, "missing")
			continue
		}
		if list, ok := v.([]any); ok && len(list) != seriesLength {
			add(path, "want %d points, got %d", seriesLength, len(list))
		}
		for _, n := range numbers(v) {
			if n == nil {
				add(path, "not a number: %v", v)
				continue
			}
			if !r.Contains(*n) {
				add(path, "%v outside [%v, %v]", *n, r.Lo, r.Hi)
			}
			if !r.Decimal && *n != float64(int64(*n)) {
				add(path, "%v is not an integer", *n)
			}
		}
	}

	for path, set := range e.Choices {
		v, found := lookup(doc, path)
		s, isString := v.(string)
		switch {
		case !found:
			add(path, "missing")
		case !isString || !slices.Contains(set, s):
			add(path, "%v not in %v", v, set)
		}
	}

	if pov, ok := doc["purchaseOrderVelocity"].(map[string]any); ok {
		if cur, ok := pov["current"].(float64); ok && pov["trend"] != VelocityTrend(int(cur)) {
			add("purchaseOrderVelocity.trend", "%v does not match current %v", pov["trend"], cur)
		}
	}
	if ds, ok := doc["dataStream"]; ok {
		if reason := checkDataStream(ds); reason != "" {
			add("dataStream", "%s", reason)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func checkDataStream(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("not a string: %v", v)
	}
	msgs, ok := SplitDataStream(s)
	if !ok {
		return "missing trailing " + dataStreamSuffix
	}
	if len(msgs) != dataStreamMessages {
		return fmt.Sprintf("want %d messages, got %d", dataStreamMessages, len(msgs))
	}
	seen := make(map[string]bool, len(msgs))
	for _, m := range msgs {
		if !slices.Contains(dataStreamFeed, m) {
			return fmt.Sprintf("unknown message %q", m)
		}
		if seen[m] {
			return fmt.Sprintf("repeated message %q", m)
		}
		seen[m] = true
	}
	return ""
}

func lookup(doc map[string]any, path string) (any, bool) {
	var cur any = doc
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// numbers flattens a scalar or list into number pointers; nil marks a non-number.
func numbers(v any) []*float64 {
	switch t := v.(type) {
	case float64:
		return []*float64{&t}
	case []any:
		out := make([]*float64, 0, len(t))
		for _, item := range t {
			if f, ok := item.(float64); ok {
				out = append(out, &f)
			} else {
				out = append(out, nil)
			}
		}
		return out
	default:
		return []*float64{nil}
	}
}
