package track

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// LoadFile reads a three-line-element file (name line followed by the two
// TLE lines, repeated) and registers every spacecraft in the tracker. The
// NORAD catalog number from line 1 becomes the id. Blank lines between
// groups are tolerated.
func (t *Tracker) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("track: open TLE file: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("track: read TLE file: %w", err)
	}

	added := 0
	for i := 0; i < len(lines); {
		name := ""
		if !strings.HasPrefix(lines[i], "1 ") {
			name = strings.TrimSpace(lines[i])
			i++
		}
		if i+1 >= len(lines) || !strings.HasPrefix(lines[i], "1 ") || !strings.HasPrefix(lines[i+1], "2 ") {
			return added, fmt.Errorf("track: malformed TLE group near line %d of %s", i+1, path)
		}
		line1, line2 := lines[i], lines[i+1]
		i += 2

		id := catalogNumber(line1)
		if name == "" {
			name = id
		}
		if err := t.Add(id, name, line1, line2); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// catalogNumber extracts the NORAD catalog number from TLE line 1.
func catalogNumber(line1 string) string {
	fields := strings.Fields(line1)
	if len(fields) < 2 {
		return line1
	}
	return strings.TrimRightFunc(fields[1], unicode.IsLetter)
}
