package cluster

import (
	"fmt"

	"github.com/courtvision/nbaroles/internal/model"
)

// RoleTable maps 1-based cluster numbers to role names. The ordering is
// post-hoc annotation, not something the algorithm derives: it was fixed
// by inspecting centroid profiles of the reference fit, so it only holds
// for the seed and restart count it was derived under. ValidateRoles
// checks the mapping against a fresh fit's centroids.
type RoleTable []string

// DefaultRoles is the seven-role table for the reference configuration.
var DefaultRoles = RoleTable{
	"Big Man Shooter",
	"Dynamic Shooter",
	"Primary Ball Handler",
	"Big Man Post Up",
	"Static Shooter",
	"Secondary Ball Handler",
	"Big Man Rim Runner",
}

// Role returns the name for a 1-based cluster number, falling back to a
// numeric label when the table does not cover it.
func (t RoleTable) Role(cluster int) string {
	if cluster >= 1 && cluster <= len(t) {
		return t[cluster-1]
	}
	return fmt.Sprintf("Cluster %d", cluster)
}

// roleSignatures ties roles to the play-frequency feature their centroid
// should dominate. Only roles with an unambiguous signature are checked.
var roleSignatures = []struct {
	role    string
	feature int
}{
	{"Big Man Post Up", model.FreqPostUp},
	{"Primary Ball Handler", model.FreqPRBallHandler},
	{"Static Shooter", model.FreqSpotUp},
}

// ValidateRoles compares the label table against centroid profiles and
// returns a warning per signature that does not hold, e.g. when the
// cluster labeled "Big Man Post Up" is not the one with the highest
// post-up share. An empty result means the mapping is consistent with
// this fit.
func ValidateRoles(centroids [][]float64, table RoleTable) []string {
	var warnings []string
	for _, sig := range roleSignatures {
		labeled := -1
		for i := range centroids {
			if table.Role(i+1) == sig.role {
				labeled = i
				break
			}
		}
		if labeled < 0 {
			continue
		}
		dominant := 0
		for i := range centroids {
			if centroids[i][sig.feature] > centroids[dominant][sig.feature] {
				dominant = i
			}
		}
		if dominant != labeled {
			warnings = append(warnings, fmt.Sprintf(
				"%q is cluster %d but cluster %d has the highest %s share (%.1f%% vs %.1f%%)",
				sig.role, labeled+1, dominant+1, model.FreqLabels[sig.feature],
				centroids[labeled][sig.feature]*100, centroids[dominant][sig.feature]*100))
		}
	}
	return warnings
}
