// Command trimesh builds a constrained Delaunay triangulation from a
// simple point file and optionally renders it as an SVG for visual
// debugging.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wrenfield/trimesh/mesh"
	"github.com/wrenfield/trimesh/types"
)

func main() {
	pointsPath := flag.String("points", "", "path to a points file (one \"x,y\" pair per line)")
	constraintsPath := flag.String("constraints", "", "path to a constraints file (one \"i,j\" vertex-index pair per line)")
	svgPath := flag.String("svg", "", "if set, render the triangulation to this SVG file")
	budget := flag.Int("budget", 4096, "step budget for legalization and carving")
	debugInvariants := flag.Bool("debug-invariants", false, "run the invariant sweep (I1, I2, I5) after every mutation")
	flag.Parse()

	if err := run(*pointsPath, *constraintsPath, *svgPath, *budget, *debugInvariants); err != nil {
		fmt.Fprintf(os.Stderr, "trimesh: %v\n", err)
		os.Exit(1)
	}
}

func run(pointsPath, constraintsPath, svgPath string, budgetSize int, debugInvariants bool) error {
	if pointsPath == "" {
		return fmt.Errorf("-points is required")
	}

	points, err := readPoints(pointsPath)
	if err != nil {
		return fmt.Errorf("reading points: %w", err)
	}
	if len(points) < 3 {
		return fmt.Errorf("need at least 3 points, got %d", len(points))
	}

	bound := boundingSuperTriangle(points)
	opts := []mesh.Option{mesh.WithStepBudget(budgetSize)}
	if debugInvariants {
		opts = append(opts, mesh.WithDebugInvariants(true))
	}
	m, err := mesh.NewMesh(bound[0], bound[1], bound[2], opts...)
	if err != nil {
		return fmt.Errorf("bootstrapping super-triangle: %w", err)
	}

	budget := m.DefaultBudget()
	vertexIDs := make([]types.V, len(points))
	for i, p := range points {
		v, err := m.Insert(p, budget)
		if err != nil {
			return fmt.Errorf("inserting point %d (%v): %w", i, p, err)
		}
		vertexIDs[i] = v
	}

	constraints := mesh.NewEdgeSet()
	if constraintsPath != "" {
		pairs, err := readIndexPairs(constraintsPath)
		if err != nil {
			return fmt.Errorf("reading constraints: %w", err)
		}
		for _, pair := range pairs {
			from, to := vertexIDs[pair[0]], vertexIDs[pair[1]]
			if err := m.ConstrainEdge(from, to, budget); err != nil {
				return fmt.Errorf("constraining edge %v: %w", pair, err)
			}
			constraints.Add(from, to)
		}
	}

	fmt.Fprintf(os.Stdout, "vertices=%d triangles=%d budget_remaining=%d\n",
		m.NumVertices(), m.NumTriangles(), budget.Remaining)

	if svgPath != "" {
		if err := renderSVG(m, constraints, svgPath); err != nil {
			return fmt.Errorf("rendering svg: %w", err)
		}
	}
	return nil
}

func readPoints(path string) ([]types.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var points []types.Point
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, err
		}
		points = append(points, types.Point{X: x, Y: y})
	}
	return points, scanner.Err()
}

func readIndexPairs(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs [][2]int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}
		j, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]int{i, j})
	}
	return pairs, scanner.Err()
}

// boundingSuperTriangle returns a triangle generous enough to contain
// every point with room to spare, CCW ordered.
func boundingSuperTriangle(points []types.Point) [3]types.Point {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	dx := maxX - minX
	dy := maxY - minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	margin := 4.0
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	size := (dx + dy) * margin

	return [3]types.Point{
		{X: cx - size, Y: cy - size},
		{X: cx + size, Y: cy - size},
		{X: cx, Y: cy + size},
	}
}
