package cluster

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

// blob draws n points around a center with the given spread.
func blob(rng *rand.Rand, center []float64, n int, spread float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, len(center))
		for j, c := range center {
			row[j] = c + rng.NormFloat64()*spread
		}
		out[i] = row
	}
	return out
}

func TestKMeansDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	X := blob(rng, []float64{0, 0}, 20, 1)
	X = append(X, blob(rng, []float64{10, 10}, 20, 1)...)

	a, err := KMeans(X, 3, 22, 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := KMeans(X, 3, 22, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Assignments, b.Assignments) {
		t.Error("same seed and restarts must give identical assignments")
	}
	if a.WSS != b.WSS {
		t.Errorf("same seed and restarts must give identical WSS: %v vs %v", a.WSS, b.WSS)
	}
}

func TestKMeansSeparatedClusters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	X := blob(rng, []float64{0, 0}, 15, 0.3)
	X = append(X, blob(rng, []float64{20, 0}, 15, 0.3)...)
	X = append(X, blob(rng, []float64{0, 20}, 15, 0.3)...)

	res, err := KMeans(X, 3, 22, 50)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Error("well-separated blobs should converge")
	}

	// Every blob must land in a single cluster, and the three clusters
	// must be distinct.
	seen := map[int]bool{}
	for b := 0; b < 3; b++ {
		first := res.Assignments[b*15]
		for i := b * 15; i < (b+1)*15; i++ {
			if res.Assignments[i] != first {
				t.Fatalf("blob %d split across clusters", b)
			}
		}
		if seen[first] {
			t.Fatalf("two blobs merged into cluster %d", first)
		}
		seen[first] = true
	}
}

func TestKMeansSingleClusterCentroidIsMean(t *testing.T) {
	X := [][]float64{{1, 0}, {3, 0}, {5, 6}}
	res, err := KMeans(X, 1, 22, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{3, 2}
	for j := range want {
		if math.Abs(res.Centroids[0][j]-want[j]) > 1e-12 {
			t.Fatalf("k=1 centroid should be the data mean, got %v", res.Centroids[0])
		}
	}
}

func TestKMeansErrors(t *testing.T) {
	X := [][]float64{{1}, {2}}
	if _, err := KMeans(X, 0, 22, 1); err == nil {
		t.Error("k=0 should fail")
	}
	if _, err := KMeans(X, 3, 22, 1); err == nil {
		t.Error("more clusters than rows should fail")
	}
}

func TestElbowSeriesNonIncreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	X := blob(rng, []float64{0, 0, 0}, 10, 1)
	X = append(X, blob(rng, []float64{8, 8, 8}, 10, 1)...)
	X = append(X, blob(rng, []float64{0, 8, 0}, 10, 1)...)

	wss, err := ElbowSeries(X, 8, 22, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(wss) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(wss))
	}
	for k := 1; k < len(wss); k++ {
		if wss[k] > wss[k-1]+1e-9 {
			t.Errorf("WSS increased from k=%d (%.4f) to k=%d (%.4f)", k, wss[k-1], k+1, wss[k])
		}
	}
}

func TestElbowSeriesClampsToRows(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}}
	wss, err := ElbowSeries(X, 10, 22, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(wss) != 3 {
		t.Fatalf("kmax should clamp to row count, got %d entries", len(wss))
	}
	if wss[2] != 0 {
		t.Errorf("k == n should give zero WSS, got %v", wss[2])
	}
}

func TestRoleTableLookup(t *testing.T) {
	if got := DefaultRoles.Role(4); got != "Big Man Post Up" {
		t.Errorf("cluster 4: want %q, got %q", "Big Man Post Up", got)
	}
	if got := DefaultRoles.Role(1); got != "Big Man Shooter" {
		t.Errorf("cluster 1: want %q, got %q", "Big Man Shooter", got)
	}
	if got := DefaultRoles.Role(9); got != "Cluster 9" {
		t.Errorf("out-of-table cluster: want fallback, got %q", got)
	}
	var none RoleTable
	if got := none.Role(2); got != "Cluster 2" {
		t.Errorf("nil table: want fallback, got %q", got)
	}
}

func TestValidateRolesConsistent(t *testing.T) {
	// Seven centroids where each checked signature holds: cluster 4
	// dominates post-ups, cluster 3 pick-and-roll handling, cluster 5
	// spot-ups.
	centroids := make([][]float64, 7)
	for i := range centroids {
		centroids[i] = make([]float64, 10)
	}
	centroids[3][4] = 0.40 // Postup
	centroids[2][2] = 0.45 // PRBallHandler
	centroids[4][5] = 0.50 // Spotup

	if warnings := ValidateRoles(centroids, DefaultRoles); len(warnings) != 0 {
		t.Errorf("consistent mapping should produce no warnings, got %v", warnings)
	}
}

func TestValidateRolesMismatch(t *testing.T) {
	centroids := make([][]float64, 7)
	for i := range centroids {
		centroids[i] = make([]float64, 10)
	}
	// Cluster 1 has the highest post-up share, but the table says
	// cluster 4 is the post-up role.
	centroids[0][4] = 0.40
	centroids[3][4] = 0.10
	centroids[2][2] = 0.45
	centroids[4][5] = 0.50

	warnings := ValidateRoles(centroids, DefaultRoles)
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", warnings)
	}
}
