package service

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/version"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// Catalog integrity (errors)
	CodeUnreadableCatalog = "UNREADABLE_CATALOG"
	CodeInvalidColor      = "INVALID_COLOR"
	CodeDanglingRelated   = "DANGLING_RELATED"

	// Catalog quality (warnings)
	CodeAsymmetricRelated = "ASYMMETRIC_RELATED"
	CodeSelfRelated       = "SELF_RELATED"
	CodeDuplicateHex      = "DUPLICATE_HEX"

	// Config (warnings)
	CodeMalformedConfig = "MALFORMED_CONFIG"
	CodeSchemaOutdated  = "SCHEMA_OUTDATED"
	CodeInvalidRoomHex  = "INVALID_ROOM_HEX"
	CodeInvalidSetting  = "INVALID_SETTING"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity IssueSeverity `json:"severity"`
	Code     string        `json:"code"`
	Color    string        `json:"color,omitempty"`
	Message  string        `json:"message"`
	Hint     string        `json:"hint,omitempty"`
}

// CatalogDiagnostic describes the catalog that was checked.
type CatalogDiagnostic struct {
	Source     string `json:"source"`
	Colors     int    `json:"colors"`
	Categories int    `json:"categories"`
}

// ReportSummary summarizes the diagnostic results.
type ReportSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	ConfigPath string            `json:"config_path"`
	Catalog    CatalogDiagnostic `json:"catalog"`
	Issues     []Issue           `json:"issues"`
	Summary    ReportSummary     `json:"summary"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

func (r *DiagnosticReport) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == SeverityError {
		r.Summary.Errors++
	} else {
		r.Summary.Warnings++
	}
}

// BuiltinSource is the catalog source reported when no catalog file is configured.
const BuiltinSource = "built-in"

// DoctorService checks the config file and the catalog it points at.
type DoctorService struct {
	paths *config.Paths
}

// NewDoctorService creates a new diagnostic service.
func NewDoctorService(paths *config.Paths) *DoctorService {
	return &DoctorService{paths: paths}
}

// Diagnose reads the config and catalog from disk and reports every problem found.
// Unlike normal startup it keeps going past the first error.
func (s *DoctorService) Diagnose() *DiagnosticReport {
	report := &DiagnosticReport{
		ConfigPath: s.paths.ConfigPath(),
		Issues:     []Issue{},
	}

	cfg := s.checkConfig(report)

	source := s.paths.CatalogPath(cfg.Catalog)
	if source == "" {
		report.Catalog.Source = BuiltinSource
		s.checkColors(report, catalog.Default().All())
		return report
	}

	report.Catalog.Source = source
	colors, err := store.NewCatalogStore(source).Load()
	if err != nil {
		report.add(Issue{
			Severity: SeverityError,
			Code:     CodeUnreadableCatalog,
			Message:  err.Error(),
		})
		return report
	}
	s.checkColors(report, colors)
	return report
}

// checkConfig validates the config file loosely and returns whatever could be parsed.
func (s *DoctorService) checkConfig(report *DiagnosticReport) *model.Config {
	cfg := &model.Config{}
	path := s.paths.ConfigPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg // No config is fine
		}
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedConfig,
			Message:  fmt.Sprintf("Cannot read config: %v", err),
		})
		return cfg
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedConfig,
			Message:  fmt.Sprintf("Invalid TOML in config: %v", err),
		})
		return &model.Config{}
	}

	// Check schema version
	switch {
	case cfg.SwatchSchema == "":
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeSchemaOutdated,
			Message:  fmt.Sprintf("Config missing schema version, current is %s", version.CurrentConfigSchema()),
			Hint:     fmt.Sprintf("Add swatch_schema = %q", version.CurrentConfigSchema()),
		})
	case cfg.SwatchSchema != version.CurrentConfigSchema():
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeSchemaOutdated,
			Message:  version.InvalidConfigSchema(path, cfg.SwatchSchema).Error(),
		})
	}

	for _, slot := range model.WallSlots {
		hex := cfg.Room.Get(slot)
		if hex != "" && !catalog.IsHex(hex) {
			report.add(Issue{
				Severity: SeverityWarning,
				Code:     CodeInvalidRoomHex,
				Message:  fmt.Sprintf("Default %s color %q is not #RRGGBB", slot.DisplayName(), hex),
			})
		}
	}

	if cfg.SearchDelayMillis < 0 {
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeInvalidSetting,
			Message:  fmt.Sprintf("search_delay_ms is negative (%d); treated as 0", cfg.SearchDelayMillis),
		})
	}
	if cfg.Serve.Port < 0 || cfg.Serve.Port > 65535 {
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeInvalidSetting,
			Message:  fmt.Sprintf("serve.port %d is out of range", cfg.Serve.Port),
			Hint:     fmt.Sprintf("Remove it to use the default (%d)", model.DefaultServePort),
		})
	}

	return cfg
}

// checkColors validates the records, then looks at relations and hex values.
func (s *DoctorService) checkColors(report *DiagnosticReport, colors []model.Color) {
	cat, err := catalog.NewLenient(colors)
	if err != nil {
		for _, e := range splitJoined(err) {
			report.add(Issue{
				Severity: SeverityError,
				Code:     CodeInvalidColor,
				Message:  e.Error(),
			})
		}
		return
	}

	report.Catalog.Colors = cat.Len()
	report.Catalog.Categories = len(cat.Categories())

	for _, d := range cat.Dangling() {
		report.add(Issue{
			Severity: SeverityError,
			Code:     CodeDanglingRelated,
			Color:    d.Code,
			Message:  fmt.Sprintf("Related code %s does not exist", d.Related),
			Hint:     "Remove it from the related list or add the missing color",
		})
	}

	hexOwners := make(map[string][]string)
	for _, c := range cat.All() {
		hexOwners[strings.ToUpper(c.Hex)] = append(hexOwners[strings.ToUpper(c.Hex)], c.Code)

		for _, rel := range c.RelatedCodes {
			if rel == c.Code {
				report.add(Issue{
					Severity: SeverityWarning,
					Code:     CodeSelfRelated,
					Color:    c.Code,
					Message:  "Color lists itself as related",
				})
				continue
			}
			other, ok := cat.FindByCode(rel)
			if !ok {
				continue // reported as dangling
			}
			if !containsCode(other.RelatedCodes, c.Code) {
				report.add(Issue{
					Severity: SeverityWarning,
					Code:     CodeAsymmetricRelated,
					Color:    c.Code,
					Message:  fmt.Sprintf("Relates to %s, but %s does not relate back", rel, rel),
				})
			}
		}
	}

	for _, c := range cat.All() {
		owners := hexOwners[strings.ToUpper(c.Hex)]
		if len(owners) > 1 && owners[0] == c.Code {
			report.add(Issue{
				Severity: SeverityWarning,
				Code:     CodeDuplicateHex,
				Color:    c.Code,
				Message:  fmt.Sprintf("Hex %s is shared by %s", c.Hex, strings.Join(owners, ", ")),
			})
		}
	}
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// splitJoined unpacks an errors.Join result into its parts.
func splitJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
