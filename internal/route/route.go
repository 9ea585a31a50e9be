// Package route resolves the delivery route drawn on the map screen.
//
// There is no mapping provider behind it. StaticResolver derives a stable
// polyline on a small grid from the order id and address so that the same
// order always renders the same route.
package route

import (
	"context"
	"errors"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/ukm/parcel/internal/orders"
)

// Point is a cell on the map grid.
type Point struct {
	X, Y int
}

// Route is the geometry and metadata for one order's delivery.
type Route struct {
	OrderID     string
	Origin      string
	Destination string
	Width       int
	Height      int
	Points      []Point
	DistanceKm  float64
	Courier     string
	// Position is the index in Points where the parcel currently is.
	Position int
}

// Resolver looks up the route of an order.
type Resolver interface {
	ResolveRoute(ctx context.Context, o orders.Order) (Route, error)
}

const (
	defaultWidth  = 36
	defaultHeight = 10
	defaultOrigin = "Centro de distribución UKM"
	kmPerCell     = 0.4
)

var couriers = []string{"John Doe", "María Soto", "Pedro Rojas", "Camila Díaz"}

// StaticResolver builds deterministic routes without any external service.
type StaticResolver struct {
	Width  int
	Height int
	Origin string
}

// ResolveRoute implements Resolver.
func (r StaticResolver) ResolveRoute(ctx context.Context, o orders.Order) (Route, error) {
	if err := ctx.Err(); err != nil {
		return Route{}, err
	}
	if strings.TrimSpace(o.ID) == "" {
		return Route{}, errors.New("order has no id")
	}

	width, height := r.Width, r.Height
	if width < 8 {
		width = defaultWidth
	}
	if height < 4 {
		height = defaultHeight
	}
	origin := r.Origin
	if strings.TrimSpace(origin) == "" {
		origin = defaultOrigin
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(o.ID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(o.Address))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>17|1))

	start := Point{X: 1, Y: 1 + rng.IntN(height-2)}
	end := Point{X: width - 2, Y: 1 + rng.IntN(height-2)}
	points := walk(rng, start, end, height)

	return Route{
		OrderID:     o.ID,
		Origin:      origin,
		Destination: o.Address,
		Width:       width,
		Height:      height,
		Points:      points,
		DistanceKm:  float64(len(points)-1) * kmPerCell,
		Courier:     couriers[rng.IntN(len(couriers))],
		Position:    position(o.Status, len(points)),
	}, nil
}

// walk steps right towards end, drifting vertically, then settles on end's row.
func walk(rng *rand.Rand, start, end Point, height int) []Point {
	points := []Point{start}
	cur := start
	for cur.X < end.X {
		cur.X++
		points = append(points, cur)
		remaining := end.X - cur.X
		dy := end.Y - cur.Y
		switch {
		case abs(dy) >= remaining && dy != 0:
			cur.Y += sign(dy)
		case rng.IntN(4) == 0:
			next := cur.Y + []int{-1, 1}[rng.IntN(2)]
			if next <= 0 || next >= height-1 {
				continue
			}
			cur.Y = next
		default:
			continue
		}
		points = append(points, cur)
	}
	for cur.Y != end.Y {
		cur.Y += sign(end.Y - cur.Y)
		points = append(points, cur)
	}
	return points
}

func position(status orders.Status, n int) int {
	if n == 0 {
		return 0
	}
	switch status {
	case orders.StatusInTransit:
		return (n - 1) * 3 / 5
	case orders.StatusReceived:
		return n - 1
	default:
		return 0
	}
}

// Cell kinds returned by Grid.
const (
	CellEmpty       = '.'
	CellPath        = '·'
	CellOrigin      = 'A'
	CellDestination = 'B'
	CellParcel      = '●'
)

// Grid rasterizes the route into Height rows of Width runes.
func (r Route) Grid() [][]rune {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	grid := make([][]rune, r.Height)
	for y := range grid {
		row := make([]rune, r.Width)
		for x := range row {
			row[x] = CellEmpty
		}
		grid[y] = row
	}
	set := func(p Point, c rune) {
		if p.Y >= 0 && p.Y < r.Height && p.X >= 0 && p.X < r.Width {
			grid[p.Y][p.X] = c
		}
	}
	for _, p := range r.Points {
		set(p, CellPath)
	}
	if len(r.Points) > 0 {
		set(r.Points[0], CellOrigin)
		set(r.Points[len(r.Points)-1], CellDestination)
		if r.Position >= 0 && r.Position < len(r.Points) {
			set(r.Points[r.Position], CellParcel)
		}
	}
	return grid
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
