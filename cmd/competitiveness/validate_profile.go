package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/competitiveness/internal/observability"
	"github.com/jonathan/competitiveness/internal/schemas"
	"github.com/spf13/cobra"
)

var validateProfileCmd = &cobra.Command{
	Use:   "validate-profile",
	Short: "Validate a profile JSON file against the profile schema",
	Long:  "Validates a profile JSON file against schemas/profile.schema.json. Exits non-zero when the file does not conform.",
	RunE:  runValidateProfile,
}

var (
	validateProfilePath string
	validateSchemaPath  string
)

func init() {
	validateProfileCmd.Flags().StringVarP(&validateProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	validateProfileCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to the profile schema (default schemas/profile.schema.json)")

	if err := validateProfileCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(validateProfileCmd)
}

func runValidateProfile(_ *cobra.Command, _ []string) error {
	schemaPath := validateSchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ProfileSchema)
		if schemaPath == "" {
			return fmt.Errorf("profile schema not found: %s", schemas.ProfileSchema)
		}
	}

	err := schemas.ValidateJSON(schemaPath, validateProfilePath)
	observability.NewPrinter(os.Stdout).PrintValidation(filepath.Base(validateProfilePath), err)
	if err != nil {
		return fmt.Errorf("profile validation failed")
	}
	return nil
}
