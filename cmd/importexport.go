package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var importMode string

// exportCmd dumps every table in storage.ExportDocument's generic shape.
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full database to a JSON document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}

		doc, err := store.Export(context.Background())
		if err != nil {
			log.Fatal("export failed", zap.Error(err))
		}

		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Fatal("failed to marshal export document", zap.Error(err))
		}

		if err := os.WriteFile(args[0], b, 0o644); err != nil {
			log.Fatal("failed to write export file", zap.Error(err))
		}

		log.Infow("export complete", "file", args[0], "tables", len(doc.Data))
	},
}

// importCmd loads a previously exported document back into storage,
// either replacing or merging with what's already there.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON document produced by export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}

		b, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal("failed to read import file", zap.Error(err))
		}

		var doc storage.ExportDocument
		if err := json.Unmarshal(b, &doc); err != nil {
			log.Fatal("failed to unmarshal import document", zap.Error(err))
		}

		mode := storage.ImportMode(importMode)
		if mode != storage.ImportOverwrite && mode != storage.ImportMerge {
			log.Fatal("invalid import mode, expected overwrite or merge", zap.String("mode", importMode))
		}

		if err := store.Import(context.Background(), doc, mode); err != nil {
			log.Fatal("import failed", zap.Error(err))
		}

		log.Infow("import complete", "file", args[0], "mode", mode)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importMode, "mode", string(storage.ImportMerge), "import mode: overwrite or merge")
}
