package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/homedoc/homedoc/internal/storagepath"
	"github.com/homedoc/homedoc/internal/survey"
	"github.com/homedoc/homedoc/internal/tenant"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// displayURL rewrites a stored image reference into its download form.
// The marker requirement keeps already-plain references untouched; pass
// --legacy-url-encoding to reproduce the old behavior that encoded
// everything.
func displayURL(ref string) string {
	codec := storagepath.Codec{RequireMarker: !flagLegacyURLs}
	return codec.Encode(ref)
}

// printSurveySummary prints a single committed survey in text format.
func printSurveySummary(s *survey.Stored) {
	fmt.Printf("Survey %s\n", s.Key)
	addr := s.Survey.Address
	fmt.Printf("  Address:   %s %s, %s, %s", addr.Street, addr.HouseNumber, addr.City, addr.State)
	if addr.ApartmentEntry != "" {
		fmt.Printf(" (entry %s)", addr.ApartmentEntry)
	}
	fmt.Println()
	fmt.Printf("  Committed: %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Updated:   %s\n", s.UpdatedAt.Format("2006-01-02 15:04"))

	for _, c := range survey.Categories {
		entries := s.Survey.Entries(c)
		if len(entries) == 0 {
			continue
		}
		fmt.Printf("  %s:\n", c.Title())
		for _, e := range entries {
			fmt.Printf("    %s (%d images)\n", e.Name, len(e.Images))
			for _, img := range e.Images {
				fmt.Printf("      %s\n", displayURL(img))
			}
		}
	}

	v := s.Survey.Verification
	fmt.Println("  Verification:")
	fmt.Printf("    ID:        %s\n", orDash(displayURL(v.IDImage)))
	fmt.Printf("    Ownership: %s\n", orDash(displayURL(v.OwnershipImage)))
	fmt.Printf("    House:     %s\n", orDash(displayURL(v.HouseImage)))

	if s.Landlord != "" {
		fmt.Printf("  Landlord:  %s\n", s.Landlord)
	}
	if s.Survey.TenantInfo != nil {
		fmt.Printf("  Tenant:    %s (%s)\n", s.Survey.TenantInfo.Name, s.Survey.TenantInfo.PhoneNumber)
	}
}

// printSurveyTable prints a list of committed surveys as a table.
func printSurveyTable(surveys []*survey.Stored) error {
	if len(surveys) == 0 {
		fmt.Println("No surveys found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "KEY\tROOMS\tTENANT\tUPDATED"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "---\t-----\t------\t-------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, s := range surveys {
		rooms := 0
		for _, c := range survey.Categories {
			rooms += len(s.Survey.Entries(c))
		}
		tenantName := "-"
		if s.Survey.TenantInfo != nil {
			tenantName = s.Survey.TenantInfo.Name
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			truncate(s.Key, 50), rooms, tenantName, s.UpdatedAt.Format("2006-01-02 15:04")); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d surveys\n", len(surveys))
	return nil
}

// printTenantSummary prints a single tenant record in text format.
func printTenantSummary(info *tenant.Info) {
	fmt.Printf("Tenant %s\n", info.Name)
	fmt.Printf("  Phone:   %s\n", info.PhoneNumber)
	if info.SurveyKey != "" {
		fmt.Printf("  Survey:  %s\n", info.SurveyKey)
	}

	for _, c := range survey.Categories {
		corners := info.HouseImages.Corners(c)
		if len(corners) == 0 {
			continue
		}
		fmt.Printf("  %s corners:\n", c.Title())
		for _, corner := range corners {
			ref := "-"
			if len(corner.Room.Images) > 0 {
				ref = displayURL(corner.Room.Images[0])
			}
			fmt.Printf("    #%d [%s] %s\n", corner.Side, corner.CapturedAt.Format("2006-01-02 15:04"), ref)
		}
	}

	if len(info.Problems) > 0 {
		fmt.Printf("  Problems (%d):\n", len(info.Problems))
		for _, p := range info.Problems {
			fmt.Printf("    %s\n      %s\n", p.Description, displayURL(p.ImageURL))
		}
	}
}

// printTenantTable prints tenant records as a table.
func printTenantTable(tenants []*tenant.Info) error {
	if len(tenants) == 0 {
		fmt.Println("No tenants found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "NAME\tPHONE\tSURVEY\tPROBLEMS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "----\t-----\t------\t--------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, info := range tenants {
		key := "-"
		if info.SurveyKey != "" {
			key = truncate(info.SurveyKey, 40)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			info.Name, info.PhoneNumber, key, len(info.Problems)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d tenants\n", len(tenants))
	return nil
}

// orDash returns "-" for an empty string.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
