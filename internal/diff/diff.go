// Package diff summarizes how a file changed between two loads.
package diff

import "fmt"

// Stats counts the lines a reload added and removed.
type Stats struct {
	Added   int
	Removed int
	// FirstChanged is the zero-based line of the first difference in the
	// new text, or -1 when nothing changed.
	FirstChanged int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Lines compares old and new line by line.
func Lines(old, new string) Stats {
	a := splitLines(old)
	b := splitLines(new)

	pre := 0
	for pre < len(a) && pre < len(b) && a[pre] == b[pre] {
		pre++
	}
	a, b = a[pre:], b[pre:]
	suf := 0
	for suf < len(a) && suf < len(b) && a[len(a)-1-suf] == b[len(b)-1-suf] {
		suf++
	}
	a, b = a[:len(a)-suf], b[:len(b)-suf]

	if len(a) == 0 && len(b) == 0 {
		return Stats{FirstChanged: -1}
	}

	// An edit script of length d with i inserts and r removals has
	// i+r == d and i-r == len(b)-len(a).
	d := editDistance(a, b)
	grow := len(b) - len(a)
	return Stats{
		Added:        (d + grow) / 2,
		Removed:      (d - grow) / 2,
		FirstChanged: pre,
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// editDistance returns the length of the shortest insert/delete script
// turning a into b, using the greedy forward pass of Myers' algorithm.
func editDistance(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return n + m
	}

	max := n + m
	v := make([]int, 2*max+1)
	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			idx := k + max
			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1]
			} else {
				x = v[idx-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[idx] = x
			if x >= n && y >= m {
				return d
			}
		}
	}
	return max
}
