package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	packageurl "github.com/package-url/packageurl-go"

	"github.com/matzehuels/libyear/internal/config"
	"github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/libyear"
)

// ageColumn is the index of the "Libyears Behind" column.
const ageColumn = 3

var tableHeaders = []string{"Name", "Current Version", "Latest Version", "Libyears Behind"}

// renderReport writes the report to w in the given format.
func renderReport(w io.Writer, r libyear.Report, format string) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, r)
	case config.FormatTable, "":
		return renderTable(w, r)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q", format)
	}
}

// renderTable prints one row per entry followed by the total.
func renderTable(w io.Writer, r libyear.Report) error {
	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []string{e.Name, e.CurrentVersion, e.LatestVersion, formatLibyears(e.Libyears)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == ageColumn && row >= 0 && row < len(r.Entries) {
				return ageStyle(r.Entries[row].Libyears).Padding(0, 1).Align(lipgloss.Right)
			}
			return styleCell
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Your system is %s libyears behind\n",
		StyleNumber.Render(formatLibyears(r.TotalLibyears)))
	return err
}

// formatLibyears prints two decimals. Values that round to zero print as
// 0.00 rather than -0.00.
func formatLibyears(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

type jsonReport struct {
	Dependencies  []jsonEntry `json:"dependencies"`
	TotalLibyears float64     `json:"total_libyears"`
}

type jsonEntry struct {
	Name               string    `json:"name"`
	CurrentVersion     string    `json:"current_version"`
	CurrentPublishedAt time.Time `json:"current_published_at"`
	LatestVersion      string    `json:"latest_version"`
	LatestPublishedAt  time.Time `json:"latest_published_at"`
	Libyears           float64   `json:"libyears"`
	PURL               string    `json:"purl"`
}

// renderJSON writes the report as an indented JSON document.
func renderJSON(w io.Writer, r libyear.Report) error {
	out := jsonReport{
		Dependencies:  make([]jsonEntry, len(r.Entries)),
		TotalLibyears: r.TotalLibyears,
	}
	for i, e := range r.Entries {
		out.Dependencies[i] = jsonEntry{
			Name:               e.Name,
			CurrentVersion:     e.CurrentVersion,
			CurrentPublishedAt: e.CurrentPublishedAt,
			LatestVersion:      e.LatestVersion,
			LatestPublishedAt:  e.LatestPublishedAt,
			Libyears:           e.Libyears,
			PURL:               cratePURL(e.Name, e.CurrentVersion),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// cratePURL returns the package URL of a crate version, e.g.
// "pkg:cargo/serde@1.0.193".
func cratePURL(name, version string) string {
	return packageurl.NewPackageURL(packageurl.TypeCargo, "", name, version, nil, "").ToString()
}
