package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"extref/service"
)

const colorGreen = "\033[1;32m"
const colorNone = "\033[0m"

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the configured repositories",
	Long: `List the configured repositories with their derived reference provider
	and what their download URL refers to.
	For example:
	extref catalog -c extref.yml
	`,
	Run: showCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func showCatalog(cmd *cobra.Command, args []string) {
	cfgFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		fmt.Println(err)
		return
	}
	configObj, err := service.GetConfig(cfgFilePath)
	if err != nil {
		fmt.Println(err)
		return
	}
	catalog, err := service.BuildCatalog(configObj)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(catalog) == 0 {
		fmt.Println("No repositories configured")
		return
	}
	for _, repo := range catalog {
		provider := repo.ReferenceProvider()
		if provider == "" {
			provider = "unknown provider"
		}
		checkout := "not checked out"
		if repo.Root() != "" {
			checkout = colorGreen + repo.Root() + colorNone
		}
		fmt.Printf("%s %s (%s, %s, %s)\n", repo.Reference(), repo.RefersTo(), provider, repo.URL, checkout)
	}
}
