package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"crate-setup/internal/cargo"
	"crate-setup/internal/config"
	"crate-setup/internal/deps"
	"crate-setup/internal/logger"
	"crate-setup/internal/manifest"
	"crate-setup/internal/platform"
)

// runSetup is the whole run, sequenced as:
// platform check -> project name -> scaffold -> read deps -> merge -> build.
// Fatal conditions (no project name, failed scaffolding, unreadable manifest)
// exit with code 1; a failed build is reported but the run still ends with
// exit code 0 and the re-run reminder.
func runSetup(cmd *cobra.Command, args []string) {
	logger.Info("[info] Detected OS: %s\n", platform.OSName())

	if !platform.ToolchainReady() {
		logger.Warn("[warning] 'cargo' or 'rustc' not found in PATH.\n")
		fmt.Println(platform.InstallHint)
		// Not a hard stop: the project and manifest can still be set up,
		// only the build step needs cargo.
	}

	name := projectName(args)
	if name == "" {
		logger.Error("[error] No project name provided. Exiting.\n")
		os.Exit(1)
	}

	workDir, err := os.Getwd()
	if err != nil {
		logger.Error("[error] Failed to resolve working directory: %v\n", err)
		os.Exit(1)
	}
	projectDir := filepath.Join(workDir, name)

	settings, err := config.Load(filepath.Join(workDir, config.FileName))
	if err != nil {
		logger.Warn("[warning] %v; continuing with default settings\n", err)
	}

	tool := cargo.New()
	if err := tool.EnsureProject(workDir, name, settings.ProjectKind); err != nil {
		logger.Error("[error] %v\n", err)
		os.Exit(1)
	}

	depsPath := deps.Discover(settings.DependenciesFile, projectDir, workDir)
	decls, err := deps.ReadFile(depsPath)
	if err != nil {
		logger.Error("[error] %v\n", err)
		os.Exit(1)
	}
	if len(decls) == 0 {
		logger.Info("[info] No dependencies found in %s. If you want, create it with one crate per line.\n", depsPath)
	} else {
		logger.Info("[info] Found %d dependency(ies) in %s\n", len(decls), depsPath)
	}

	added, err := manifest.Merge(filepath.Join(projectDir, cargo.ManifestName), decls)
	if err != nil {
		logger.Error("[error] %v\n", err)
		os.Exit(1)
	}
	if len(added) > 0 {
		logger.Info("[ok] Added dependencies to Cargo.toml: %s\n", strings.Join(added, ", "))
	} else {
		logger.Info("[ok] No new dependencies to add in Cargo.toml.\n")
	}

	if platform.HasTool("cargo") {
		if !tool.Build(projectDir, settings.BuildArgv()) {
			logger.Warn("[warning] build failed; try running `%s` manually to see details.\n", settings.BuildCommand)
		}
	} else {
		logger.Error("[error] cargo not available; cannot fetch crates.\n")
	}

	logger.Done("[done] Run crate-setup again to re-check and fetch any remaining missing crates.\n")
}

// projectName resolves the project name from the positional argument, or
// prompts for it on standard input when none was given.
func projectName(args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}

	var name string
	prompt := &survey.Input{Message: "Project name (folder) to create/use:"}
	if err := survey.AskOne(prompt, &name); err != nil {
		logger.Error("[error] Failed to read project name: %v\n", err)
		return ""
	}
	return strings.TrimSpace(name)
}
