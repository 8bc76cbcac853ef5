package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/nikogura/jd-agent/pkg/roles"
	"github.com/nikogura/jd-agent/pkg/source"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//nolint:gochecknoglobals // Cobra boilerplate
var assumeYes bool

//nolint:gochecknoglobals // Cobra boilerplate
var showJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations in the knowledge base",
}

//nolint:gochecknoglobals // Cobra boilerplate
var orgsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored organization ids",
	Args:  cobra.NoArgs,
	RunE:  runOrgsList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var orgsShowCmd = &cobra.Command{
	Use:   "show <org-id>",
	Short: "Show a stored organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgsShow,
}

//nolint:gochecknoglobals // Cobra boilerplate
var orgsImportCmd = &cobra.Command{
	Use:   "import <org-id> <file-or-url>",
	Short: "Import an organization from a JSON or YAML document",
	Long: `Import an organization record from a JSON or YAML document, replacing any record
already stored under the same id.

Example:
  jd-agent orgs import acme ./acme.yaml
  jd-agent orgs import acme https://example.com/orgs/acme.json`,
	Args: cobra.ExactArgs(2),
	RunE: runOrgsImport,
}

//nolint:gochecknoglobals // Cobra boilerplate
var orgsExportCmd = &cobra.Command{
	Use:   "export <org-id> <path>",
	Short: "Export an organization as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrgsExport,
}

//nolint:gochecknoglobals // Cobra boilerplate
var orgsDeleteCmd = &cobra.Command{
	Use:   "delete <org-id>",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgsDelete,
}

//nolint:gochecknoglobals // Cobra boilerplate
var orgsSetCmd = &cobra.Command{
	Use:   "set <org-id> <field> <json-value>",
	Short: "Replace one top-level field of an organization",
	Long: `Replace one top-level field of a stored organization with a JSON value.

Fields: company_info, culture, benefits, salary_ranges, departments, tech_stack,
tools_platforms, certifications_preferred.

Example:
  jd-agent orgs set acme tech_stack '["Go", "PostgreSQL", "Kafka"]'`,
	Args: cobra.ExactArgs(3),
	RunE: runOrgsSet,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(orgsCmd)
	orgsCmd.AddCommand(orgsListCmd, orgsShowCmd, orgsImportCmd, orgsExportCmd, orgsDeleteCmd, orgsSetCmd)
	orgsShowCmd.Flags().BoolVar(&showJSON, "json", false, "Print the stored JSON record")
	orgsDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

func runOrgsList(cmd *cobra.Command, args []string) (err error) {
	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	var ids []string
	ids, err = store.ListIDs()
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		printInfo("No organizations stored in %s", store.Path())
		return err
	}

	for _, id := range ids {
		fmt.Println(id)
	}
	return err
}

func runOrgsShow(cmd *cobra.Command, args []string) (err error) {
	id := args[0]

	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	var org knowledge.Organization
	var found bool
	org, found, err = store.Get(id)
	if err != nil {
		return err
	}
	if !found {
		err = errors.Errorf("organization not found: %s", id)
		return err
	}

	if showJSON {
		var data []byte
		data, err = json.MarshalIndent(org, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to encode organization")
			return err
		}
		fmt.Println(string(data))
		return err
	}

	fmt.Print(describeOrganization(id, org))
	return err
}

// describeOrganization renders a human-readable summary of a stored organization.
func describeOrganization(id string, org knowledge.Organization) (text string) {
	var b strings.Builder
	info := org.CompanyInfo

	fmt.Fprintf(&b, "%s (%s)\n", info.Name, id)
	fmt.Fprintf(&b, "  Industry: %s\n", info.Industry)
	fmt.Fprintf(&b, "  Size:     %s\n", info.Size)
	fmt.Fprintf(&b, "  Location: %s\n", info.Location)
	if info.FoundedYear != 0 {
		fmt.Fprintf(&b, "  Founded:  %d\n", info.FoundedYear)
	}
	if org.Culture.Mission != "" {
		fmt.Fprintf(&b, "  Mission:  %s\n", org.Culture.Mission)
	}
	if len(org.Culture.Values) > 0 {
		fmt.Fprintf(&b, "  Values:   %s\n", strings.Join(org.Culture.Values, ", "))
	}

	titleCaser := cases.Title(language.English)
	b.WriteString("  Salary ranges:\n")
	for _, level := range roles.Levels() {
		table := org.SalaryRanges.ForLevel(string(level))
		label := titleCaser.String(strings.ReplaceAll(level.SalaryKey(), "_", " "))
		if len(table) == 0 {
			fmt.Fprintf(&b, "    %s: none\n", label)
			continue
		}
		keys := make([]string, 0, len(table))
		for role := range table {
			keys = append(keys, role)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, role := range keys {
			parts = append(parts, role+" "+table[role])
		}
		fmt.Fprintf(&b, "    %s: %s\n", label, strings.Join(parts, "; "))
	}

	if len(org.Departments) > 0 {
		b.WriteString("  Departments:\n")
		for _, d := range org.Departments {
			fmt.Fprintf(&b, "    %s: %s\n", d.Name, strings.Join(d.TypicalRoles, ", "))
		}
	}

	if len(org.TechStack) > 0 {
		fmt.Fprintf(&b, "  Tech stack: %s\n", strings.Join(org.TechStack, ", "))
	}
	if org.LastUpdated != "" {
		fmt.Fprintf(&b, "  Last updated: %s\n", org.LastUpdated)
	}

	text = b.String()
	return text
}

func runOrgsImport(cmd *cobra.Command, args []string) (err error) {
	id, input := args[0], args[1]

	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	var data []byte
	data, err = source.Fetch(context.Background(), input)
	if err != nil {
		err = errors.Wrapf(err, "could not read organization document %s", input)
		return err
	}

	var org knowledge.Organization
	org, err = store.Import(id, data)
	if err != nil {
		return err
	}

	printSuccess("Imported %s (%s)", id, org.CompanyInfo.Name)
	return err
}

func runOrgsExport(cmd *cobra.Command, args []string) (err error) {
	id, path := args[0], args[1]

	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	var found bool
	found, err = store.Export(id, path)
	if err != nil {
		return err
	}
	if !found {
		err = errors.Errorf("organization not found: %s", id)
		return err
	}

	printSuccess("Exported %s to %s", id, path)
	return err
}

func runOrgsDelete(cmd *cobra.Command, args []string) (err error) {
	id := args[0]

	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	if !assumeYes && !confirm(bufio.NewScanner(os.Stdin), fmt.Sprintf("Delete %s? (y/n): ", id)) {
		fmt.Println("Cancelled.")
		return err
	}

	var deleted bool
	deleted, err = store.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		err = errors.Errorf("organization not found: %s", id)
		return err
	}

	printSuccess("Deleted %s", id)
	return err
}

func runOrgsSet(cmd *cobra.Command, args []string) (err error) {
	id, field, value := args[0], args[1], args[2]

	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	var updated bool
	updated, err = store.UpdateField(id, field, []byte(value))
	if err != nil {
		return err
	}
	if !updated {
		err = errors.Errorf("organization not found: %s", id)
		return err
	}

	printSuccess("Updated %s.%s", id, field)
	return err
}
