package result

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Marshal renders the table as the durable result document: two top-level
// sections, "results" (algorithm → condition → value) and "statistics"
// (algorithm → avg/min/max/std), with keys in table order. The output is
// stable: marshal, unmarshal, and marshal again yields identical bytes.
func Marshal(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	writeKey(&buf, 1, "variable")
	writeString(&buf, t.Variable)
	buf.WriteString(",\n")
	writeKey(&buf, 1, "provenance")
	writeString(&buf, string(t.Provenance))
	buf.WriteString(",\n")

	writeKey(&buf, 1, "results")
	buf.WriteString("{\n")
	algos := t.Algorithms()
	for i, algo := range algos {
		writeKey(&buf, 2, algo)
		var cells [][2]string
		for _, c := range t.Conditions() {
			if s, ok := t.Get(algo, c); ok {
				cells = append(cells, [2]string{Label(c), Label(s.Value)})
			}
		}
		if len(cells) == 0 {
			buf.WriteString("{}")
		} else {
			buf.WriteString("{\n")
			for j, cell := range cells {
				writeKey(&buf, 3, cell[0])
				buf.WriteString(cell[1])
				if j < len(cells)-1 {
					buf.WriteString(",")
				}
				buf.WriteString("\n")
			}
			writeIndent(&buf, 2)
			buf.WriteString("}")
		}
		if i < len(algos)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	writeIndent(&buf, 1)
	buf.WriteString("},\n")

	writeKey(&buf, 1, "statistics")
	buf.WriteString("{\n")
	var withStats []string
	for _, algo := range algos {
		if _, ok := t.RowStats(algo); ok {
			withStats = append(withStats, algo)
		}
	}
	for i, algo := range withStats {
		st, _ := t.RowStats(algo)
		writeKey(&buf, 2, algo)
		buf.WriteString("{\n")
		fields := [][2]string{
			{"avg", Label(st.Avg)},
			{"min", Label(st.Min)},
			{"max", Label(st.Max)},
			{"std", Label(st.Std)},
		}
		for j, f := range fields {
			writeKey(&buf, 3, f[0])
			buf.WriteString(f[1])
			if j < len(fields)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		writeIndent(&buf, 2)
		buf.WriteString("}")
		if i < len(withStats)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	writeIndent(&buf, 1)
	buf.WriteString("}\n")

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

func writeKey(buf *bytes.Buffer, depth int, key string) {
	writeIndent(buf, depth)
	writeString(buf, key)
	buf.WriteString(": ")
}

// writeString emits a JSON string without escaping non-ASCII characters,
// so labels like 執行時間 survive as-is in the document.
func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode appends a newline; trim it back off.
	if err := enc.Encode(s); err == nil {
		buf.Truncate(buf.Len() - 1)
	}
}

// Unmarshal parses a result document back into a table, preserving the key
// order found in the document. Statistics are derived data and are
// recomputed on the next Marshal rather than read back.
func Unmarshal(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	t := NewTable("", Measured)
	for dec.More() {
		key, err := nextString(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "variable":
			if t.Variable, err = nextString(dec); err != nil {
				return nil, err
			}
		case "provenance":
			s, err := nextString(dec)
			if err != nil {
				return nil, err
			}
			t.Provenance = Provenance(s)
		case "results":
			if err := parseResults(dec, t); err != nil {
				return nil, err
			}
		default:
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return t, nil
}

func parseResults(dec *json.Decoder, t *Table) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		algo, err := nextString(dec)
		if err != nil {
			return err
		}
		t.AddAlgorithm(algo)
		if err := expectDelim(dec, '{'); err != nil {
			return err
		}
		for dec.More() {
			label, err := nextString(dec)
			if err != nil {
				return err
			}
			cond, err := strconv.ParseFloat(label, 64)
			if err != nil {
				return fmt.Errorf("condition key %q: %w", label, err)
			}
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			num, ok := tok.(json.Number)
			if !ok {
				return fmt.Errorf("value for %s/%s: expected number, got %v", algo, label, tok)
			}
			v, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return fmt.Errorf("value for %s/%s: %w", algo, label, err)
			}
			t.Put(algo, cond, Sample{Value: v})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return err
		}
	}
	return expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || rune(d) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func nextString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}

func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

// Save writes the result document. A failure here is the one unrecoverable
// error in a run, so the message names the attempted path.
func Save(t *Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("serializing results to %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results %s: %w", path, err)
	}
	t, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing results %s: %w", path, err)
	}
	return t, nil
}
