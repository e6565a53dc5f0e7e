// Package main provides the CLI entrypoint for staging-generator.
//
// staging-generator is a Go codegen tool that:
//   - Parses Go packages (go/types) to extract record field lists
//   - Derives a staging companion type per record, every field wrapped
//     in an outcome container
//   - Generates a conversion that reports all field failures at once
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"staging-generator/internal/analyze"
	"staging-generator/internal/config"
	"staging-generator/internal/gen"
	"staging-generator/internal/stage"
)

func main() {
	app := &cli.App{
		Name:  "staging-generator",
		Usage: "generate staging companion types with aggregating conversions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
		Commands: []*cli.Command{
			genCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func genCommand() *cli.Command {
	return &cli.Command{
		Name:  "gen",
		Usage: "generate staging types and conversions for one unit",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "output",
				Usage: "override the output directory from the config",
			},
			&cli.BoolFlag{
				Name:  "no-comments",
				Usage: "omit explanatory comments in generated code",
			},
		},
		Action: func(c *cli.Context) error {
			uf, unit, err := buildUnit(c.String("config"))
			if err != nil {
				return err
			}

			outDir := uf.Output.Dir
			if c.String("output") != "" {
				outDir = c.String("output")
			}

			g := gen.NewGenerator(gen.GeneratorConfig{
				OutputDir:        outDir,
				GenerateComments: !c.Bool("no-comments"),
			})

			files, err := g.Generate(unit)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files, outDir); err != nil {
				return err
			}

			logrus.Infof("generated %d file(s) in %s", len(files), outDir)

			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "run the pipeline without writing files and report diagnostics",
		Flags: []cli.Flag{configFlag()},
		Action: func(c *cli.Context) error {
			_, unit, err := buildUnit(c.String("config"))
			if err != nil {
				return err
			}

			logrus.Infof("%d record(s) staged cleanly", len(unit.Records))

			return nil
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "staging.yaml",
		Usage:   "generation unit config file",
	}
}

// buildUnit runs config loading, package analysis, and the staging
// core for one generation unit.
func buildUnit(cfgPath string) (*config.UnitFile, *stage.Unit, error) {
	uf, err := config.LoadFile(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	logrus.Debugf("analyzing packages: %v", []string(uf.Packages))

	loader := analyze.NewLoader()

	set, err := loader.LoadPackages(uf.Packages...)
	if err != nil {
		return nil, nil, err
	}

	logrus.Debugf("extracted %d record schema(s)", set.Len())

	errorType, err := loader.ResolveType(uf.ErrorType)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving error_type: %w", err)
	}

	unit := stage.BuildUnit(set, errorType, uf)

	for _, w := range unit.Diagnostics.Warnings {
		logrus.Warn(w.String())
	}

	for _, e := range unit.Diagnostics.Errors {
		logrus.Error(e.String())
	}

	if unit.Diagnostics.HasErrors() {
		return nil, nil, fmt.Errorf("staging failed: %w", unit.Diagnostics.Error())
	}

	return uf, unit, nil
}
