package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseVec parses "x,y,z". Two components are accepted with z = 0.
func parseVec(s string) (r3.Vec, error) {
	if strings.Count(s, ",") == 1 {
		s += ",0"
	}
	f, err := parseFloats(s, 3)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Vec{X: f[0], Y: f[1], Z: f[2]}, nil
}

// parseSphere parses "cx,cy,cz,r".
func parseSphere(s string) (r3.Vec, float64, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return r3.Vec{}, 0, err
	}
	if f[3] < 0 {
		return r3.Vec{}, 0, fmt.Errorf("negative radius %v", f[3])
	}
	return r3.Vec{X: f[0], Y: f[1], Z: f[2]}, f[3], nil
}
