package cmd

import (
	"fmt"
	"os"

	"kotc/common"
	"kotc/lower"
	"kotc/phases"
	"kotc/report"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"
)

// Execute is the main entry point for the `kotc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("kotc", "kotc is the pre-serialization lowering toolchain", true)
	cli.AddSelectorArg("loglevel", "ll", "the lowering log level", false, logLevels)

	phasesCmd := cli.AddSubcommand("phases", "print the resolved phase execution order", true)
	phasesCmd.AddStringArg("profile-dir", "p", "the directory containing the lowering profile", false)

	cli.AddSubcommand("version", "print the kotc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		reportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "phases":
		loglevel := ""
		if lvl, ok := result.Arguments["loglevel"]; ok {
			loglevel = lvl.(string)
		}
		execPhasesCommand(subResult, loglevel)
	case "version":
		report.DisplayInfoMessage("Kotc Version", common.KotcVersion)
	}
}

// execPhasesCommand executes the phases subcommand and handles all errors.
func execPhasesCommand(result *olive.ArgParseResult, loglevel string) {
	profileDir := "."
	if dir, ok := result.Arguments["profile-dir"]; ok {
		profileDir = dir.(string)
	}

	prof, err := LoadProfile(profileDir)
	if err != nil {
		reportFatal(err.Error())
	}

	// a log level given on the command line overrides the profile
	if loglevel != "" {
		prof.LogLevel = loglevel
	}

	pipeline, err := phases.NewPipeline(lower.PreSerializationPhases())
	if err != nil {
		reportFatal(err.Error())
	}

	// a silent profile suppresses the plan display entirely
	if report.LogLevelFromString(prof.LogLevel) == report.LogLevelSilent {
		return
	}

	displayPhasePlan(pipeline, prof)
}

// displayPhasePlan renders the pipeline's execution order to the console.
func displayPhasePlan(pipeline *phases.Pipeline, prof *Profile) {
	report.DisplayInfoMessage("Profile", prof.Name)

	rows := pterm.TableData{{"#", "Phase", "Description"}}
	for i, ph := range pipeline.Phases() {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), ph.Name, ph.Desc})
	}

	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// reportFatal displays a fatal error and aborts.
func reportFatal(msg string) {
	report.DisplayErrorMessage("Fatal", msg)
	os.Exit(1)
}
