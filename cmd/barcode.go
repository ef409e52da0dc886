package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	corebarcode "inventory-manager/core/barcode"
	"inventory-manager/feature/barcode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var formatFlag string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [barcode]",
	Short: "Resolve barcode data to an inventory item",
	Long:  `Matches barcode data against internal short codes, JSON references and linked third-party barcodes, in that order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, env, err := barcodeService()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		resp, err := svc.Scan(cmd.Context(), corebarcode.TextPayload(args[0]))
		if err != nil {
			return err
		}
		if resp == nil {
			return fmt.Errorf("%s (hash %s)", barcode.MsgNoMatch, corebarcode.Hash(corebarcode.TextPayload(args[0])))
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [model] [pk]",
	Short: "Print the internal barcode of an inventory item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid primary key %q", args[1])
		}

		svc, env, err := barcodeService()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		data, err := svc.Generate(cmd.Context(), args[0], pk)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	},
}

// linkCmd represents the link command
var linkCmd = &cobra.Command{
	Use:   "link [barcode] [model] [pk]",
	Short: "Link a third-party barcode to an inventory item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid primary key %q", args[2])
		}

		svc, env, err := barcodeService()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		hash, err := svc.Link(cmd.Context(), corebarcode.TextPayload(args[0]), args[1], pk)
		if err != nil {
			return err
		}
		fmt.Printf("Assigned barcode to %s %d (hash %s)\n", args[1], pk, hash)
		return nil
	},
}

// unlinkCmd represents the unlink command
var unlinkCmd = &cobra.Command{
	Use:   "unlink [model] [pk]",
	Short: "Remove the linked barcode of an inventory item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid primary key %q", args[1])
		}

		svc, env, err := barcodeService()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		if err := svc.Unlink(cmd.Context(), args[0], pk); err != nil {
			return err
		}
		fmt.Printf("Unassigned barcode from %s %d\n", args[0], pk)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scanCmd, generateCmd, linkCmd, unlinkCmd)
	generateCmd.Flags().StringVar(&formatFlag, "format", "", "Override the barcode format (json, short)")
}

// barcodeService builds the barcode service over the configured database.
func barcodeService() (*barcode.Service, *environment, error) {
	env, err := loadEnvironment(true)
	if err != nil {
		return nil, nil, err
	}

	cfg := env.cfg.Barcode
	if formatFlag != "" {
		cfg.Format = formatFlag
		if !cfg.IsValidFormat() {
			return nil, nil, fmt.Errorf("invalid barcode format %q", formatFlag)
		}
	}

	reg, err := env.registry()
	if err != nil {
		return nil, nil, err
	}

	env.logger.Debug("Barcode service ready", zap.Strings("models", reg.Labels()), zap.String("format", cfg.Format))
	return barcode.NewService(reg, cfg, env.logger), env, nil
}
