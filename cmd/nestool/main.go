package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/nestool"
	"github.com/bodgit/nestool/chr"
	"github.com/bodgit/nestool/palette"
	"github.com/urfave/cli/v2"
)

const defaultDB = "nestool.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newEditor(c *cli.Context, file string) (*nestool.Editor, error) {
	e := nestool.New(newLogger(c))

	var err error
	if strings.EqualFold(filepath.Ext(file), ".nes") {
		err = e.LoadROM(file)
	} else {
		err = e.LoadFile(file)
	}
	if err != nil {
		return nil, err
	}

	if samples := c.String("samples"); samples != "" {
		if err := e.LoadSamples(samples); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func openLibrary(c *cli.Context) (*nestool.Library, error) {
	db, err := nestool.NewSheetDB(c.String("db"))
	if err != nil {
		return nil, err
	}
	return nestool.NewLibrary(db, newLogger(c)), nil
}

// colors returns the four sample colors starting at slot
func colors(s *palette.Samples, slot int) (color.Palette, error) {
	if slot < 0 || slot+4 > palette.Slots {
		return nil, palette.ErrIndexOutOfRange
	}
	return s.Palette()[slot : slot+4], nil
}

func printPalette(st styles) {
	fmt.Println(st.heading.Render("Palette"))
	cols, _ := palette.Dimensions()
	var cells []string
	for i, c := range palette.Table() {
		cells = append(cells, swatch(c, fmt.Sprintf(" %02X ", i)))
	}
	fmt.Println(grid(cells, cols))
}

func printSamples(st styles, s *palette.Samples) {
	fmt.Println(st.heading.Render("Samples"))
	cols, _ := palette.SampleDimensions()
	var cells []string
	for slot := 0; slot < palette.Slots; slot++ {
		i, _ := s.Index(slot)
		c, _ := s.ColorOf(slot)
		cells = append(cells, swatch(c, fmt.Sprintf(" %02X ", i)))
	}
	fmt.Println(grid(cells, cols))
}

func printTile(st styles, g *chr.Grid, tile int, p color.Palette) {
	x, y := chr.TileOrigin(tile)
	fmt.Println(st.heading.Render(fmt.Sprintf("Tile %d", tile)), st.label.Render(fmt.Sprintf("(%d, %d)", x, y)))
	var cells []string
	for _, index := range g.Tile(tile) {
		cells = append(cells, swatch(p[index], fmt.Sprintf("%d ", index)))
	}
	fmt.Println(grid(cells, 8))
}

func parseFloat(c *cli.Context, n int) (float32, error) {
	f, err := strconv.ParseFloat(c.Args().Get(n), 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

func main() {
	app := cli.NewApp()

	app.Name = "nestool"
	app.Usage = "NES graphics asset utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	st := newStyles()

	samplesFlag := &cli.StringFlag{
		Name:  "samples",
		Usage: "load sample set from `FILE`",
	}
	slotFlag := &cli.IntFlag{
		Name:  "slot",
		Value: 0,
		Usage: "first of the four sample slots used to color the sheet",
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"NESTOOL_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "export",
			Usage:     "Export a CHR sheet as a PNG image",
			ArgsUsage: "CHR PNG",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "scale the image up by `N`",
				},
				&cli.BoolFlag{
					Name:  "gray",
					Usage: "use grayscale rather than the sample colors",
				},
				samplesFlag,
				slotFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newEditor(c, c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				var p color.Palette
				if !c.Bool("gray") {
					if p, err = colors(e.Samples(), c.Int("slot")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				f, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := e.ExportPNG(f, c.Int("scale"), p); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "tile",
			Usage:     "Print the pixels of a tile",
			ArgsUsage: "CHR",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "index",
					Value: 0,
					Usage: "tile `N` to print, 0-511",
				},
				samplesFlag,
				slotFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				tile := c.Int("index")
				if tile < 0 || tile >= chr.Tiles {
					return cli.NewExitError(fmt.Sprintf("tile %d out of range", tile), 1)
				}

				e, err := newEditor(c, c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p, err := colors(e.Samples(), c.Int("slot"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				printTile(st, e.Grid(), tile, p)

				return nil
			},
		},
		{
			Name:  "palette",
			Usage: "Print the NES palette",
			Action: func(c *cli.Context) error {
				printPalette(st)
				return nil
			},
		},
		{
			Name:      "samples",
			Usage:     "Print a sample set",
			ArgsUsage: "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "from",
					Usage: "build the sample set from the colors in `IMAGE`",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "write the sample set to `FILE`",
				},
				&cli.Int64Flag{
					Name:  "sheet",
					Usage: "store the sample set with library sheet `ID`",
				},
			},
			Action: func(c *cli.Context) error {
				s := palette.NewSamples()

				switch {
				case c.String("from") != "":
					f, err := os.Open(c.String("from"))
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer f.Close()

					m, _, err := image.Decode(f)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					s = palette.Quantize(m)
				case c.NArg() > 0:
					f, err := os.Open(c.Args().First())
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer f.Close()

					if s, err = palette.ReadSamples(f); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				printSamples(st, s)

				if out := c.String("out"); out != "" {
					b, err := s.MarshalBinary()
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					if err := ioutil.WriteFile(out, b, 0644); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if c.IsSet("sheet") {
					l, err := openLibrary(c)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer l.DB().Close()

					if err := l.DB().SetSamples(c.Int64("sheet"), s); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "pick",
			Usage:       "Report what is under the cursor",
			Description: "Maps a cursor position in window pixels through the camera and reports the panel, position and cell under it.",
			ArgsUsage:   "CHR X Y",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Value: 1600,
					Usage: "window width in pixels",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: 900,
					Usage: "window height in pixels",
				},
				&cli.Float64Flag{
					Name:  "zoom",
					Value: 1,
					Usage: "zoom factor, 1-4",
				},
				samplesFlag,
				slotFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				x, err := parseFloat(c, 1)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				y, err := parseFloat(c, 2)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				e, err := newEditor(c, c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				e.Resize(c.Int("width"), c.Int("height"))
				e.Scroll(float32(c.Float64("zoom")) - e.View().Zoom)
				e.CursorMoved(x, y)

				h := e.Hover()
				w := e.Mouse().Position
				fmt.Println(st.label.Render("world"), fmt.Sprintf("(%.3f, %.3f)", w.X(), w.Y()))
				fmt.Println(st.label.Render("panel"), h.Panel)
				if h.Panel == nestool.PanelNone {
					return nil
				}
				fmt.Println(st.label.Render("uv"), fmt.Sprintf("(%.4f, %.4f)", h.UV.X(), h.UV.Y()))

				switch h.Panel {
				case nestool.PanelPatternTable:
					fmt.Println(st.label.Render("pixel"), fmt.Sprintf("(%d, %d)", h.X, h.Y))
					p, err := colors(e.Samples(), c.Int("slot"))
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					printTile(st, e.Grid(), h.Cell, p)
				case nestool.PanelPalette:
					rgb, _ := palette.Lookup(h.Cell)
					fmt.Println(st.label.Render("color"), swatch(rgb, fmt.Sprintf(" %02X ", h.Cell)), fmt.Sprintf("(%d, %d, %d)", rgb.R, rgb.G, rgb.B))
				case nestool.PanelSamples:
					rgb, _ := e.Samples().ColorOf(h.Cell)
					fmt.Println(st.label.Render("slot"), swatch(rgb, fmt.Sprintf(" %d ", h.Cell)), fmt.Sprintf("(%d, %d, %d)", rgb.R, rgb.G, rgb.B))
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Import CHR sheets into the library",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.DB().Close()

				for _, file := range c.Args().Slice() {
					id, err := l.Import(file)
					if err != nil {
						return cli.NewExitError(fmt.Errorf("importing %s: %w", file, err), 1)
					}
					fmt.Println(id, file)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan filesystem and import every CHR sheet found",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.DB().Close()

				if err := l.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List the sheets in the library",
			Action: func(c *cli.Context) error {
				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.DB().Close()

				sheets, err := l.DB().Sheets()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, s := range sheets {
					fmt.Printf("%4d %s %s\n", s.ID, st.label.Render(s.SHA1), s.Name)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(st.err.Render(err.Error()))
	}
}
