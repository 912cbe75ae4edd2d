package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/service"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check the config and catalog for problems. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(jsonOutput bool) {
	report := service.NewDoctorService(config.DefaultPaths()).Diagnose()

	if jsonOutput {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
	} else {
		printDoctorReport(report)
	}

	// Exit with status 1 if there are errors
	if report.HasErrors() {
		os.Exit(1)
	}
}

func printDoctorReport(report *service.DiagnosticReport) {
	configPath := report.ConfigPath
	if configPath == "" {
		configPath = "(none)"
	}
	fmt.Printf("Config:  %s\n", RenderMuted(configPath))
	fmt.Printf("Catalog: %s\n", RenderMuted(report.Catalog.Source))
	fmt.Printf("  Colors: %d\n", report.Catalog.Colors)
	fmt.Printf("  Categories: %d\n", report.Catalog.Categories)
	fmt.Println()

	if len(report.Issues) == 0 {
		PrintSuccess("No issues found")
		return
	}

	// Errors first, then warnings
	var errors, warnings []service.Issue
	for _, issue := range report.Issues {
		if issue.Severity == service.SeverityError {
			errors = append(errors, issue)
		} else {
			warnings = append(warnings, issue)
		}
	}
	for _, issue := range errors {
		printIssue(issue)
	}
	for _, issue := range warnings {
		printIssue(issue)
	}

	fmt.Println()
	var summaryParts []string
	if report.Summary.Errors > 0 {
		summaryParts = append(summaryParts, StyleError.Render(fmt.Sprintf("%d error(s)", report.Summary.Errors)))
	}
	if report.Summary.Warnings > 0 {
		summaryParts = append(summaryParts, StyleWarning.Render(fmt.Sprintf("%d warning(s)", report.Summary.Warnings)))
	}
	fmt.Printf("Summary: %s\n", strings.Join(summaryParts, ", "))
}

func printIssue(issue service.Issue) {
	var icon, code string
	if issue.Severity == service.SeverityError {
		icon = StyleError.Render(IconError)
		code = StyleError.Render(fmt.Sprintf("[%s]", issue.Code))
	} else {
		icon = StyleWarning.Render(IconWarning)
		code = StyleWarning.Render(fmt.Sprintf("[%s]", issue.Code))
	}

	location := ""
	if issue.Color != "" {
		location = " " + RenderCode(issue.Color)
	}

	fmt.Printf("%s %s%s %s\n", icon, code, location, issue.Message)

	if issue.Hint != "" {
		fmt.Printf("  %s %s\n", RenderMuted(IconInfo), issue.Hint)
	}
}
