package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/dataset"
	"github.com/katalvlaran/coulomb3d/reconstruct"
)

// methodFlag applies --method on top of the configured method.
func methodFlag(cmd *cobra.Command, cc *CLIContext, method string) error {
	if !cmd.Flags().Changed("method") {
		return nil
	}
	cc.Config.Method = method
	if err := cc.Config.Validate(); err != nil {
		return fmt.Errorf("--method: %w", err)
	}

	return nil
}

// moleculeName labels molecule k, falling back to its index.
func moleculeName(m dataset.Molecule, k int) string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("molecule %d", k)
}

// frame is one reconstructed molecule with its inputs.
type frame struct {
	c mat.Matrix
	z []float64
	x *mat.Dense
}

// loadBatch reads a dataset and returns the configured reconstructions.
func loadBatch(cc *CLIContext, input string) ([]dataset.Molecule, []frame, error) {
	mols, err := dataset.Read(input)
	if err != nil {
		return nil, nil, err
	}
	cs, zs, err := dataset.Inputs(mols)
	if err != nil {
		cc.Logger.Warn("dataset has molecules without a usable coulomb matrix",
			zap.String("path", input),
			zap.Error(err),
		)
	}
	cc.Logger.Info("dataset loaded",
		zap.String("path", input),
		zap.Int("molecules", len(mols)),
		zap.String("method", cc.Config.Method),
	)

	xs := reconstruct.Batch(cs, zs, cc.Config.ReconstructOptions(cc.Logger)...)
	out := make([]frame, len(xs))
	for k := range xs {
		out[k] = frame{c: cs[k], z: zs[k], x: xs[k]}
	}

	return mols, out, nil
}

func newReconstructCmd() *cobra.Command {
	var (
		input  string
		output string
		method string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstruct coordinates from a Coulomb-matrix dataset",
		Long: `Reconstruct Cartesian coordinates for every molecule of a dataset file and
write them as a multi-frame XYZ file. Padding atoms are omitted.

Examples:
  coulomb3d reconstruct -i molecules.yaml -o molecules.xyz
  coulomb3d reconstruct -i molecules.yaml --method simple --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if err = methodFlag(cmd, cc, method); err != nil {
				return err
			}
			if quiet {
				cc.Config.Verbose = false
			}

			mols, results, err := loadBatch(cc, input)
			if err != nil {
				return err
			}

			w, closeFn, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			for k, res := range results {
				if err = dataset.WriteXYZ(w, moleculeName(mols[k], k), res.z, res.x); err != nil {
					_ = closeFn()
					return fmt.Errorf("molecule %d: %w", k, err)
				}
			}

			return closeFn()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "dataset file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "XYZ output file (default: stdout)")
	cmd.Flags().StringVar(&method, "method", "", "reconstruction method (mds, simple)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress logging")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
