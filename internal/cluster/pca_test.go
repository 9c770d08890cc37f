package cluster

import (
	"math"
	"math/rand"
	"testing"
)

func TestProjectShape(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	X := make([][]float64, 30)
	for i := range X {
		row := make([]float64, 10)
		for j := range row {
			row[j] = rng.Float64()
		}
		X[i] = row
	}

	coords, explained, err := Project(X)
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 30 {
		t.Fatalf("expected 30 coordinate pairs, got %d", len(coords))
	}
	if explained[0] < explained[1] {
		t.Errorf("components must come in decreasing variance order: %v", explained)
	}
	if explained[0] <= 0 || explained[0] > 1 || explained[1] < 0 {
		t.Errorf("explained variance fractions out of range: %v", explained)
	}
}

func TestProjectAnisotropic(t *testing.T) {
	// Points spread along one axis with small noise elsewhere: the first
	// component should carry most of the variance.
	rng := rand.New(rand.NewSource(9))
	X := make([][]float64, 50)
	for i := range X {
		row := make([]float64, 4)
		row[0] = float64(i)
		for j := 1; j < 4; j++ {
			row[j] = rng.NormFloat64() * 0.01
		}
		X[i] = row
	}

	_, explained, err := Project(X)
	if err != nil {
		t.Fatal(err)
	}
	if explained[0] < 0.2 {
		t.Errorf("dominant axis should explain a sizable share, got %v", explained[0])
	}
	if explained[0] <= explained[1] {
		t.Errorf("first component should dominate: %v", explained)
	}
}

func TestProjectConstantColumn(t *testing.T) {
	X := [][]float64{
		{1, 5, 0.1},
		{2, 5, 0.2},
		{3, 5, 0.15},
		{4, 5, 0.05},
	}
	coords, _, err := Project(X)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range coords {
		if math.IsNaN(c[0]) || math.IsNaN(c[1]) {
			t.Fatalf("constant column produced NaN coordinates: %v", coords)
		}
	}
}

func TestProjectErrors(t *testing.T) {
	if _, _, err := Project([][]float64{{1, 2}}); err == nil {
		t.Error("one row should fail")
	}
	if _, _, err := Project([][]float64{{1}, {2}, {3}}); err == nil {
		t.Error("one column should fail")
	}
}
