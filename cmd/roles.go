package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the role categories and roles available in the catalog",
	Run: func(_ *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %v", err)
		}

		cat, err := loadCatalog(config)
		if err != nil {
			log.Fatalf("loading the role catalog: %v", err)
		}

		for _, categoryName := range cat.Categories() {
			fmt.Println(categoryName)

			roles, err := cat.Roles(categoryName)
			if err != nil {
				log.Fatalf("listing roles for %q: %v", categoryName, err)
			}

			for _, role := range roles {
				fmt.Printf("  %s\n", role)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
