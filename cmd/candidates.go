package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rsharan/talentscout/internal/candidate"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List candidates saved from past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		fs := candidate.NewFileStore(resolveStorePath(cmd))
		profiles, err := fs.All()
		if err != nil {
			return fmt.Errorf("read candidates: %w", err)
		}

		if len(profiles) == 0 {
			fmt.Println("No candidates recorded.")
			return nil
		}

		if asJSON {
			out, err := json.MarshalIndent(profiles, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%-24s  %-28s  %-4s  %-20s  %s\n",
			"Name", "Email", "Exp", "Position", "Tech Stack")
		fmt.Println(strings.Repeat("─", 100))
		for _, p := range profiles {
			stack := p.TechStack
			if len(stack) > 32 {
				stack = stack[:32] + "…"
			}
			fmt.Printf("%-24s  %-28s  %-4d  %-20s  %s\n",
				p.Name, p.Email, p.Experience, p.Position, stack)
		}
		return nil
	},
}

func init() {
	candidatesCmd.Flags().Bool("json", false, "Print raw JSON")
}
