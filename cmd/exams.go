package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

var examsCmd = &cobra.Command{
	Use:   "exams [exam]",
	Short: "List known exams, or show one exam's blueprint",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			cat, err := reg.Catalog(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s — %s\n", cat.Exam, cat.Name)
			fmt.Printf("Pass mark: %.0f%%   Question bank: %d\n", cat.PassMarkPct, cat.BankSize())
			fmt.Println(strings.Repeat("─", 56))
			for _, d := range cat.Domains {
				fmt.Printf("%-32s  %-14s  %4.0f%%\n", d.Name, d.ID, d.Weight*100)
			}
			for _, p := range cat.Prerequisites {
				label := "recommended"
				if p.Strength == syllabus.PrereqRequired {
					label = "required"
				}
				fmt.Printf("Prerequisite: %s (%s)\n", p.Cert, label)
			}
			return nil
		}

		fmt.Printf("%-18s  %-40s  %s\n", "Code", "Name", "Domains")
		fmt.Println(strings.Repeat("─", 68))
		for _, exam := range reg.Exams() {
			cat, err := reg.Catalog(exam)
			if err != nil {
				return err
			}
			fmt.Printf("%-18s  %-40s  %d\n", cat.Exam, cat.Name, len(cat.Domains))
		}
		return nil
	},
}
