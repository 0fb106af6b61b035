package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"extref/models"
	"extref/service"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve local files against the repository catalog",
	Long: `Resolve local files against the configured repository catalog.
	For example:
	extref resolve -t input -c extref.yml data/saxs.dat scripts/model.py
	will print archive-relative records for both files as JSON.`,
	Run: resolveFiles,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("type", "t", "input", "Content type of the files (input, output, workflow, visualization)")
}

func resolveFiles(cmd *cobra.Command, args []string) {
	cfgFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		fmt.Println(err)
		return
	}
	contentName, err := cmd.Flags().GetString("type")
	if err != nil {
		fmt.Println(err)
		return
	}
	configObj, err := service.GetConfig(cfgFilePath)
	if err != nil {
		fmt.Println(err)
		return
	}
	logger, closer, err := newLogger(configObj.Log)
	if err != nil {
		log.Fatalf("cannot create logger: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	if len(args) == 0 {
		logger.Error().Msgf("You should specify at least one file to resolve")
		return
	}
	catalog, err := service.BuildCatalog(configObj)
	if err != nil {
		logger.Error().Msgf("cannot build repository catalog: %v", err)
		return
	}
	locations, err := service.ResolveFiles(args, contentName, catalog)
	if err != nil {
		logger.Error().Msgf("cannot resolve files: %v", err)
		return
	}
	asLocations := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Repo == nil {
			logger.Debug().Msgf("%s matches no repository, keeping local path", loc.Path)
		}
		asLocations = append(asLocations, loc)
	}
	records := service.BuildRecords(asLocations)
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Error().Msgf("cannot marshal records: %v", err)
		return
	}
	fmt.Println(string(out))
}
