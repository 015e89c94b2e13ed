package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parsed is a decoded generator spec.
type parsed struct {
	kind string
	n    int // node count, or rows for grid
	cols int
	p    float64
}

// Parse turns a compact generator spec into a Constructor:
//
//	path:N  cycle:N  star:N  wheel:N  complete:N  grid:RxC  random:N:P
//
// Size checks are left to the constructor.
func Parse(spec string) (Constructor, error) {
	ps, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	switch ps.kind {
	case "path":
		return Path(ps.n), nil
	case "cycle":
		return Cycle(ps.n), nil
	case "star":
		return Star(ps.n), nil
	case "wheel":
		return Wheel(ps.n), nil
	case "complete":
		return Complete(ps.n), nil
	case "grid":
		return Grid(ps.n, ps.cols), nil
	default:
		return RandomSparse(ps.n, ps.p), nil
	}
}

// NodeCount returns how many nodes spec would emit, without building it.
// Callers use it to bound work before Generate. Negative sizes count as 0.
func NodeCount(spec string) (int, error) {
	ps, err := parseSpec(spec)
	if err != nil {
		return 0, err
	}
	if ps.kind == "grid" {
		if ps.n <= 0 || ps.cols <= 0 {
			return 0, nil
		}
		if ps.n > math.MaxInt/ps.cols {
			return math.MaxInt, nil
		}
		return ps.n * ps.cols, nil
	}

	return max(ps.n, 0), nil
}

func parseSpec(spec string) (parsed, error) {
	kind, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	kind = strings.ToLower(kind)
	bad := func() (parsed, error) {
		return parsed{}, fmt.Errorf("%w: %q", ErrUnknownTopology, spec)
	}

	switch kind {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return bad()
		}
		return parsed{kind: kind, n: n}, nil

	case "grid":
		rs, cs, ok := strings.Cut(strings.ToLower(args), "x")
		if !ok {
			return bad()
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return parsed{kind: kind, n: rows, cols: cols}, nil

	case "random":
		ns, pstr, ok := strings.Cut(args, ":")
		if !ok {
			return bad()
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(pstr, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return parsed{kind: kind, n: n, p: p}, nil

	default:
		return bad()
	}
}
