package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spendsense/backend/internal/categorizer"
	"github.com/spendsense/backend/internal/trainer"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:          "train",
	Short:        "Train the categorizer from a labelled CSV dataset",
	Long:         "Reads a CSV file with the columns description and category, fits the classifier and writes the artifacts the server loads.",
	RunE:         trainCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(trainCmd)

	trainCmd.Flags().String("data", "dataset.csv", "CSV dataset with the columns description and category")
	trainCmd.Flags().String("strategy", categorizer.StrategyLinear, "Strategy to train, linear or bayes")
	trainCmd.Flags().String("out", "data", "Directory to write the artifacts to")
	trainCmd.Flags().Float64("test-size", 0.2, "Fraction of the samples held out for evaluation")
	trainCmd.Flags().Int64("seed", 42, "Seed for the train/test split")
	trainCmd.Flags().Int("iterations", trainer.DefaultLinearOptions.Iterations, "Gradient descent iterations for the linear strategy")
}

func trainCmdF(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	data, _ := flags.GetString("data")
	strategy, _ := flags.GetString("strategy")
	out, _ := flags.GetString("out")
	testSize, _ := flags.GetFloat64("test-size")
	seed, _ := flags.GetInt64("seed")
	iterations, _ := flags.GetInt("iterations")

	linear := trainer.DefaultLinearOptions
	linear.Iterations = iterations

	report, err := trainer.Train(trainer.Options{
		Strategy:       strategy,
		DataPath:       data,
		VectorizerPath: filepath.Join(out, filepath.Base(c.Categorizer.Vectorizer)),
		ModelPath:      filepath.Join(out, filepath.Base(c.Categorizer.Model)),
		BayesPath:      filepath.Join(out, filepath.Base(c.Categorizer.BayesModel)),
		TestSize:       testSize,
		Seed:           seed,
		Linear:         linear,
	})
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

// printReport writes a human readable summary of the training run.
func printReport(w io.Writer, r trainer.Report) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	accuracy := color.New(color.FgGreen)
	switch {
	case r.TestSize == 0:
		accuracy = faint
	case r.Accuracy < 0.5:
		accuracy = color.New(color.FgRed)
	case r.Accuracy < 0.8:
		accuracy = color.New(color.FgYellow)
	}

	bold.Fprintf(w, "Trained %s categorizer\n", r.Strategy)
	fmt.Fprintf(w, "  samples:  %d (%d train, %d test)\n", r.Samples, r.TrainSize, r.TestSize)
	fmt.Fprintf(w, "  classes:  %s\n", strings.Join(r.Classes, ", "))

	fmt.Fprint(w, "  accuracy: ")
	if r.TestSize == 0 {
		accuracy.Fprintln(w, "n/a, no held out samples")
	} else {
		accuracy.Fprintf(w, "%.1f%%\n", r.Accuracy*100)
	}

	for _, a := range r.Artifacts {
		faint.Fprintf(w, "  wrote %s", a)
		if sum, ok := r.Checksums[a]; ok {
			faint.Fprintf(w, " (sha256 %s)", sum)
		}
		fmt.Fprintln(w)
	}
}
