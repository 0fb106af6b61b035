package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"extref/models"
	"extref/service"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory and resolve every file",
	Long: `Scan a directory tree, build a location for every regular file and
	resolve each against the configured repository catalog.
	For example:
	extref scan -p ./study -t input -c extref.yml
	will report how many files of the study are covered by archived repositories.`,
	Run: scanDirectory,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("path", "p", "", "Path to folder to scan")
	scanCmd.Flags().StringP("type", "t", "input", "Content type of the files (input, output, workflow, visualization)")
	scanCmd.Flags().BoolP("json", "j", false, "Print the resulting records as JSON")
	scanCmd.Flags().BoolP("quiet", "q", false, "The process information should not be showed")
}

func scanDirectory(cmd *cobra.Command, args []string) {
	cfgFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		fmt.Println(err)
		return
	}
	dirPath, err := cmd.Flags().GetString("path")
	if err != nil {
		fmt.Println(err)
		return
	}
	contentName, err := cmd.Flags().GetString("type")
	if err != nil {
		fmt.Println(err)
		return
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		fmt.Println(err)
		return
	}
	quiet, err := cmd.Flags().GetBool("quiet")
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
	if dirPath == "" {
		logger.Error().Msgf("You should specify path")
		return
	}
	catalog, err := service.BuildCatalog(configObj)
	if err != nil {
		logger.Error().Msgf("cannot build repository catalog: %v", err)
		return
	}

	paths := []string{}
	err = filepath.WalkDir(filepath.Clean(dirPath), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error().Msgf("cannot walk %s: %v", dirPath, err)
		return
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetDescription("resolving"),
			progressbar.OptionSetWriter(os.Stdout),
			progressbar.OptionSetWidth(10),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stdout, "\n")
			}),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	bound := 0
	asLocations := make([]models.Location, 0, len(paths))
	for _, path := range paths {
		resolved, err := service.ResolveFiles([]string{path}, contentName, catalog)
		if err != nil {
			logger.Error().Msgf("cannot resolve %s: %v", path, err)
			return
		}
		if resolved[0].Repo != nil {
			bound++
		}
		asLocations = append(asLocations, resolved[0])
		if bar != nil {
			bar.Add(1)
		}
	}

	fmt.Printf("Scanned %v files, %v covered by archived repositories, %v local only\n",
		len(paths), bound, len(paths)-bound)
	if asJSON {
		out, err := json.MarshalIndent(service.BuildRecords(asLocations), "", "  ")
		if err != nil {
			logger.Error().Msgf("cannot marshal records: %v", err)
			return
		}
		fmt.Println(string(out))
	}
}
