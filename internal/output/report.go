package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddcalc/investment-calculator/internal/domain"
)

// GenerateReport renders proj in the named format and writes it to w.
func GenerateReport(w io.Writer, proj *domain.Projection, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(proj)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFile renders proj into a timestamped file in dir.
func GenerateReportFile(dir string, proj *domain.Projection, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return WriteFormatted(f, proj, dir, Extension(f))
}
