package main

import (
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/wrenfield/trimesh/mesh"
	"github.com/wrenfield/trimesh/types"
)

const (
	svgMargin = 20
	svgScale  = 40.0

	triStyle        = "fill:rgb(245,245,245);stroke:rgb(170,170,170);stroke-width:1"
	constraintStyle = "stroke:rgb(200,30,30);stroke-width:2"
	vertexStyle     = "fill:rgb(30,30,200)"
)

func renderSVG(m *mesh.Mesh, constraints mesh.EdgeSet, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	minX, minY, maxX, maxY := boundsOf(m)
	width := int((maxX-minX)*svgScale) + 2*svgMargin
	height := int((maxY-minY)*svgScale) + 2*svgMargin

	toScreen := func(p types.Point) (int, int) {
		x := int((p.X-minX)*svgScale) + svgMargin
		y := int((maxY-p.Y)*svgScale) + svgMargin
		return x, y
	}

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	xs := make([]int, 3)
	ys := make([]int, 3)
	for t := types.T(0); t < types.T(m.NumTriangles()); t++ {
		tri := m.Tri(t)
		if tri.V[0].IsSuper() || tri.V[1].IsSuper() || tri.V[2].IsSuper() {
			continue
		}
		for i := 0; i < 3; i++ {
			xs[i], ys[i] = toScreen(m.Vert(tri.V[i]))
		}
		canvas.Polygon(xs, ys, triStyle)
	}

	for key := range constraints {
		a, b := m.Vert(key[0]), m.Vert(key[1])
		ax, ay := toScreen(a)
		bx, by := toScreen(b)
		canvas.Line(ax, ay, bx, by, constraintStyle)
	}

	for v := types.V(3); v < types.V(m.NumVertices()); v++ {
		x, y := toScreen(m.Vert(v))
		canvas.Circle(x, y, 3, vertexStyle)
	}

	canvas.End()
	return nil
}

func boundsOf(m *mesh.Mesh) (minX, minY, maxX, maxY float64) {
	minX, minY = m.Vert(3).X, m.Vert(3).Y
	maxX, maxY = minX, minY
	for v := types.V(3); v < types.V(m.NumVertices()); v++ {
		p := m.Vert(v)
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
	return
}
