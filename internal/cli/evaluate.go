package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/coulomb3d/align"
	"github.com/katalvlaran/coulomb3d/coulomb"
	"github.com/katalvlaran/coulomb3d/dataset"
	"github.com/katalvlaran/coulomb3d/matrix"
	"github.com/katalvlaran/coulomb3d/mds"
)

// xyzCols selects the three coordinate columns.
var xyzCols = []int{0, 1, 2}

// Score is the evaluation of one reconstructed molecule.
//
// Fields:
//   - Atoms        — number of real (non-padding) atoms.
//   - DistanceRMSD — RMS error of the reconstructed pairwise distances
//     against the distances recovered from the Coulomb matrix.
//   - Stress       — raw stress ½·Σ_{i≠j}(‖x_i − x_j‖ − d_ij)² of the same comparison.
//   - KabschRMSD   — RMSD after superposition onto the reference geometry,
//     reflection allowed; valid only when HasReference.
type Score struct {
	Name         string
	Atoms        int
	DistanceRMSD float64
	Stress       float64
	KabschRMSD   float64
	HasReference bool
}

// score evaluates f over its real atoms.
func score(m dataset.Molecule, f frame) (Score, error) {
	s := Score{Name: m.Name}
	idx := coulomb.ValidIndices(f.z)
	s.Atoms = len(idx)
	if len(idx) == 0 {
		return s, nil
	}

	cv, err := matrix.Induced(f.c, idx, idx)
	if err != nil {
		return s, err
	}
	d, err := coulomb.Distances(cv, coulomb.Select(f.z, idx))
	if err != nil {
		return s, err
	}
	xv, err := matrix.Induced(f.x, idx, xyzCols)
	if err != nil {
		return s, err
	}
	if s.DistanceRMSD, err = align.DistanceRMSD(xv, d); err != nil {
		return s, err
	}
	if s.Stress, err = mds.Stress(xv, d, mds.DefaultOptions().SymTol); err != nil {
		return s, err
	}

	if len(m.Coordinates) == 0 {
		return s, nil
	}
	r, err := m.CoordinateMatrix()
	if err != nil {
		return s, err
	}
	rv, err := matrix.Induced(r, idx, xyzCols)
	if err != nil {
		return s, err
	}
	if _, s.KabschRMSD, err = align.Superpose(xv, rv, true); err != nil {
		return s, err
	}
	s.HasReference = true

	return s, nil
}

// writeScores prints scores as an aligned table.
func writeScores(w io.Writer, scores []Score) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MOLECULE\tATOMS\tDIST_RMSD\tSTRESS\tKABSCH_RMSD")
	for _, s := range scores {
		kabsch := "-"
		if s.HasReference {
			kabsch = fmt.Sprintf("%.4f", s.KabschRMSD)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%s\n", s.Name, s.Atoms, s.DistanceRMSD, s.Stress, kabsch)
	}

	return tw.Flush()
}

func newEvaluateCmd() *cobra.Command {
	var (
		input  string
		method string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score reconstructions of a dataset",
		Long: `Reconstruct every molecule of a dataset and report how well the recovered
coordinates reproduce the pairwise distances, as RMSD and as raw stress. Molecules carrying reference
coordinates are also superposed onto them (reflection allowed) and scored by RMSD.

Examples:
  coulomb3d evaluate -i molecules.yaml
  coulomb3d evaluate -i molecules.yaml --method simple`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if err = methodFlag(cmd, cc, method); err != nil {
				return err
			}
			cc.Config.Verbose = false

			mols, frames, err := loadBatch(cc, input)
			if err != nil {
				return err
			}

			scores := make([]Score, 0, len(frames))
			for k, f := range frames {
				s, err := score(mols[k], f)
				if err != nil {
					cc.Logger.Warn("molecule not scored",
						zap.Int("molecule", k),
						zap.Error(err),
					)
					continue
				}
				if s.Name == "" {
					s.Name = moleculeName(mols[k], k)
				}
				scores = append(scores, s)
			}

			return writeScores(cmd.OutOrStdout(), scores)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "dataset file (YAML or JSON)")
	cmd.Flags().StringVar(&method, "method", "", "reconstruction method (mds, simple)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
