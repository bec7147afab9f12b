package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/bmp2mif"
	"github.com/bodgit/bmp2mif/mif"
	"github.com/urfave/cli/v2"
)

const defaultWorkers = 4

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func canvasFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "cols",
			Aliases: []string{"c"},
			EnvVars: []string{"BMP2MIF_COLS"},
			Value:   mif.DefaultCols,
			Usage:   "canvas width in words",
		},
		&cli.IntFlag{
			Name:    "rows",
			Aliases: []string{"r"},
			EnvVars: []string{"BMP2MIF_ROWS"},
			Value:   mif.DefaultRows,
			Usage:   "canvas height in words",
		},
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			EnvVars: []string{"BMP2MIF_DEPTH"},
			Value:   mif.DefaultDepth,
			Usage:   "color depth in bits, one of 3, 6, or 9",
		},
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newConverter(c *cli.Context) (*bmp2mif.Converter, func(), error) {
	var db *bmp2mif.ConversionDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = bmp2mif.NewConversionDB(file); err != nil {
			return nil, nil, err
		}
	}

	closeFunc := func() {
		if db != nil {
			db.Close()
		}
	}

	canvas := mif.Canvas{
		Cols:  c.Int("cols"),
		Rows:  c.Int("rows"),
		Depth: c.Int("depth"),
	}

	conv, err := bmp2mif.New(canvas, db, newLogger(c))
	if err != nil {
		closeFunc()
		return nil, nil, err
	}

	return conv, closeFunc, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "bmp2mif"
	app.Usage = "24-bit bitmap to MIF memory initialization file converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BMP2MIF_DB"},
			Usage:   "path to optional conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a bitmap to a MIF file",
			Description: "The bitmap is scaled down, never up, to fit the canvas and centered horizontally if narrower.",
			ArgsUsage:   "FILE",
			Flags: append(canvasFlags(), &cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, defaults to FILE_COLS_DEPTH.mif",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closeFunc, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer closeFunc()

				if _, err := conv.ConvertFile(c.Args().First(), c.String("output")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every bitmap in a directory",
			Description: "Each MIF file is written alongside its bitmap as NAME_COLS_DEPTH.mif.",
			ArgsUsage:   "DIRECTORY",
			Flags: append(canvasFlags(), &cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   defaultWorkers,
				Usage:   "number of bitmaps to convert at once",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closeFunc, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer closeFunc()

				if err := conv.ConvertDir(c.Args().First(), c.Int("workers")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render a MIF file as a PNG",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "cols",
					Aliases: []string{"c"},
					EnvVars: []string{"BMP2MIF_COLS"},
					Value:   mif.DefaultCols,
					Usage:   "canvas width in words",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file, defaults to FILE with a .png extension",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if _, err := bmp2mif.Preview(c.Args().First(), c.String("output"), c.Int("cols"), newLogger(c)); err != nil {
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
