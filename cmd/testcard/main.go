package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/johanns/testcard"
	"github.com/urfave/cli/v2"
)

const defaultDB = "testcard.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

var fontFlag = &cli.StringFlag{
	Name:    "font",
	EnvVars: []string{"TESTCARD_FONT"},
	Usage:   "TrueType font used for text labels",
}

func main() {
	app := cli.NewApp()

	app.Name = "testcard"
	app.Usage = "deterministic test image generator"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TESTCARD_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Generate the test image set",
			ArgsUsage: "DIRECTORY",
			Flags:     []cli.Flag{fontFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := testcard.NewCatalogDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				t := testcard.New(db, newLogger(c))
				t.Font = c.String("font")

				if err := t.Generate(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "report",
			Usage: "List the catalogued images",
			Action: func(c *cli.Context) error {
				db, err := testcard.NewCatalogDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				t := testcard.New(db, newLogger(c))

				if err := t.Report(os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "verify",
			Usage: "Re-render every image and compare against the catalog",
			Flags: []cli.Flag{fontFlag},
			Action: func(c *cli.Context) error {
				db, err := testcard.NewCatalogDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				t := testcard.New(db, newLogger(c))
				t.Font = c.String("font")

				if err := t.Verify(); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
