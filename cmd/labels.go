package cmd

import (
	"fmt"

	"inventory-manager/core/storage"
	"inventory-manager/feature/labels"

	"github.com/spf13/cobra"
)

// labelsCmd represents the labels command
var labelsCmd = &cobra.Command{
	Use:   "labels [model]",
	Short: "Export barcode labels of a model to storage",
	Long:  `Generates the internal barcode of every record of a model and uploads the manifest to labels/<model>/ in the storage bucket.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(true)
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		reg, err := env.registry()
		if err != nil {
			return err
		}

		store, err := storage.NewClient(env.cfg.Storage)
		if err != nil {
			return err
		}

		svc := labels.NewService(store, env.cfg.Storage, reg, env.cfg.Barcode, env.logger)
		result, err := svc.Export(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d labels to %s/%s\n", result.Count, env.cfg.Storage.Bucket, result.Key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(labelsCmd)
}
