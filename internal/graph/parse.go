package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseEdgeList reads the plain-text edge-list format: one edge per
// line as "i j w" with zero-based node indices. Lines starting with
// '#' and blank lines are ignored. The node count is the largest
// index seen plus one.
func ParseEdgeList(r io.Reader) (*Weighted, error) {
	var edges []Edge
	maxNode := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, errors.Errorf("graph: line %d: want \"i j w\", got %q", lineNo, line)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "graph: line %d: bad node index", lineNo)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "graph: line %d: bad node index", lineNo)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "graph: line %d: bad weight", lineNo)
		}
		if i < 0 || j < 0 {
			return nil, errors.Errorf("graph: line %d: negative node index", lineNo)
		}
		if i == j {
			return nil, errors.Errorf("graph: line %d: self loop on node %d", lineNo, i)
		}

		if i > maxNode {
			maxNode = i
		}
		if j > maxNode {
			maxNode = j
		}
		edges = append(edges, Edge{I: min(i, j), J: max(i, j), Weight: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "graph: reading edge list")
	}
	if maxNode < 0 {
		return nil, errors.New("graph: edge list is empty")
	}

	return FromEdges(maxNode+1, edges)
}
