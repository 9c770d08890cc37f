package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Project returns the first two principal component coordinates of X
// after centering each column and scaling it to unit variance, plus the
// fraction of total variance each component explains. Presentation
// transform only: nothing downstream of the clustering depends on it.
func Project(X [][]float64) (coords [][2]float64, explained [2]float64, err error) {
	n := len(X)
	if n < 2 {
		return nil, explained, fmt.Errorf("need at least 2 rows for PCA, got %d", n)
	}
	dim := len(X[0])
	if dim < 2 {
		return nil, explained, fmt.Errorf("need at least 2 columns for PCA, got %d", dim)
	}

	m := mat.NewDense(n, dim, nil)
	col := make([]float64, n)
	for j := 0; j < dim; j++ {
		for i := 0; i < n; i++ {
			col[i] = X[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1 // constant column: center only
		}
		for i := 0; i < n; i++ {
			m.Set(i, j, (col[i]-mean)/std)
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, explained, fmt.Errorf("principal component decomposition failed")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	var proj mat.Dense
	proj.Mul(m, vecs.Slice(0, dim, 0, 2))

	coords = make([][2]float64, n)
	for i := 0; i < n; i++ {
		coords[i][0] = proj.At(i, 0)
		coords[i][1] = proj.At(i, 1)
	}

	vars := pc.VarsTo(nil)
	total := 0.0
	for _, v := range vars {
		total += v
	}
	if total > 0 {
		explained[0] = vars[0] / total
		explained[1] = vars[1] / total
	}
	return coords, explained, nil
}
