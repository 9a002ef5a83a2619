package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/coulomb3d/coulomb"
	"github.com/katalvlaran/coulomb3d/dataset"
)

// encodeMolecules fills in the Coulomb matrix of every molecule from its
// coordinates. Reference coordinates are kept.
func encodeMolecules(mols []dataset.Molecule) error {
	for k := range mols {
		r, err := mols[k].CoordinateMatrix()
		if err != nil {
			return fmt.Errorf("molecule %d: %w", k, err)
		}
		c, err := coulomb.Encode(r, mols[k].Charges)
		if err != nil {
			return fmt.Errorf("molecule %d: %w", k, err)
		}
		mols[k].Coulomb = dataset.Rows(c)
	}

	return nil
}

func newEncodeCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compute Coulomb matrices from geometries",
		Long: `Read a dataset whose molecules carry charges and coordinates, compute each
Coulomb matrix and write the completed dataset.

Examples:
  coulomb3d encode -i geometries.yaml -o molecules.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			mols, err := dataset.Read(input)
			if err != nil {
				return err
			}
			if err = encodeMolecules(mols); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			cc.Logger.Info("dataset encoded",
				zap.String("path", input),
				zap.Int("molecules", len(mols)),
			)

			w, closeFn, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err = dataset.Encode(w, mols); err != nil {
				_ = closeFn()
				return err
			}

			return closeFn()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "dataset file with charges and coordinates")
	cmd.Flags().StringVarP(&output, "output", "o", "", "dataset output file (default: stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
