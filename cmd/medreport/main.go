package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verilex/medreport"
	"github.com/verilex/medreport/report"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "medreport",
		Short: "Medico-legal case report renderer",
		Long: `Medreport renders road traffic accident case files into
medico-legal PDF reports.

It reads a case snapshot as JSON and produces a paginated report with
cover page, table of contents, section-by-section findings, injury
classification and prognosis, and the expert's declaration.`,
		Version: version,
	}

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a case file into a PDF report",
		Long: `Render a case JSON file into a medico-legal PDF report.

Example:
  medreport render --case case.json --output report.pdf
  medreport render --case case.json --output report.pdf --page-size Letter
  medreport render --case case.json --data-uri
  medreport render --case case.json --output report.pdf --exclude familyHistory,lifestyleImpact`,
		RunE: func(cmd *cobra.Command, args []string) error {
			casePath, _ := cmd.Flags().GetString("case")
			output, _ := cmd.Flags().GetString("output")
			dataURI, _ := cmd.Flags().GetBool("data-uri")
			pageSize, _ := cmd.Flags().GetString("page-size")
			orientation, _ := cmd.Flags().GetString("orientation")
			fontFamily, _ := cmd.Flags().GetString("font")
			signature, _ := cmd.Flags().GetString("signature")
			noCover, _ := cmd.Flags().GetBool("no-cover")
			noTOC, _ := cmd.Flags().GetBool("no-toc")
			noCV, _ := cmd.Flags().GetBool("no-cv")
			noDeclaration, _ := cmd.Flags().GetBool("no-declaration")
			footerAll, _ := cmd.Flags().GetBool("footer-every-page")
			exclude, _ := cmd.Flags().GetStringSlice("exclude")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if casePath == "" {
				return fmt.Errorf("--case flag is required")
			}
			if output == "" && !dataURI {
				return fmt.Errorf("provide --output or --data-uri")
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync()

			runID := uuid.NewString()
			log := logger.With(zap.String("run_id", runID))

			data, err := os.ReadFile(casePath)
			if err != nil {
				return fmt.Errorf("reading case file: %w", err)
			}
			c, err := medreport.ParseCase(data)
			if err != nil {
				return fmt.Errorf("parsing case file: %w", err)
			}

			opts, err := buildOptions(renderFlags{
				pageSize:      pageSize,
				orientation:   orientation,
				fontFamily:    fontFamily,
				signature:     signature,
				noCover:       noCover,
				noTOC:         noTOC,
				noCV:          noCV,
				noDeclaration: noDeclaration,
				footerAll:     footerAll,
				exclude:       exclude,
			})
			if err != nil {
				return err
			}

			log.Info("rendering report",
				zap.String("case_number", c.CaseNumber),
				zap.String("claimant", c.ClaimantName()),
				zap.String("source", casePath),
			)
			start := time.Now()

			artifact, err := report.New(opts...).Generate(c)
			if err != nil {
				log.Error("render failed", zap.Error(err))
				return err
			}

			log.Info("report rendered",
				zap.Int("pages", artifact.Pages),
				zap.Int("bytes", len(artifact.PDF)),
				zap.Duration("elapsed", time.Since(start)),
			)

			if dataURI {
				fmt.Println(artifact.DataURI())
				return nil
			}
			if err := os.WriteFile(output, artifact.PDF, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("Wrote %s (%d pages, %d bytes)\n", output, artifact.Pages, len(artifact.PDF))
			return nil
		},
	}

	cmd.Flags().StringP("case", "c", "", "Case JSON file path")
	cmd.Flags().StringP("output", "o", "", "Output PDF file path")
	cmd.Flags().Bool("data-uri", false, "Print the report as a data URI instead of writing a file")
	cmd.Flags().String("page-size", "A4", "Page size (A4, Letter)")
	cmd.Flags().String("orientation", "portrait", "Page orientation (portrait, landscape)")
	cmd.Flags().String("font", "Helvetica", "Font family (Helvetica, Times, Courier)")
	cmd.Flags().String("signature", "", "Expert signature image path (PNG, JPEG or GIF)")
	cmd.Flags().Bool("no-cover", false, "Omit the cover page")
	cmd.Flags().Bool("no-toc", false, "Omit the table of contents")
	cmd.Flags().Bool("no-cv", false, "Omit the expert CV page")
	cmd.Flags().Bool("no-declaration", false, "Omit the declaration section")
	cmd.Flags().Bool("footer-every-page", false, "Print the footer on the cover page too")
	cmd.Flags().StringSlice("exclude", nil, "Sections to exclude (claimantDetails, accidentDetails, physicalInjury, psychologicalInjuries, treatments, lifestyleImpact, familyHistory, expertDetails)")
	cmd.Flags().BoolP("verbose", "v", false, "Verbose logging")

	return cmd
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [case.json]",
		Short: "Summarize a case file without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading case file: %w", err)
			}
			c, err := medreport.ParseCase(data)
			if err != nil {
				return fmt.Errorf("parsing case file: %w", err)
			}

			fmt.Printf("Case:     %s\n", c.CaseNumber)
			fmt.Printf("Claimant: %s\n", c.ClaimantName())

			present := func(name string, ok bool) {
				state := "missing"
				if ok {
					state = "present"
				}
				fmt.Printf("  %-24s %s\n", name, state)
			}
			fmt.Println("Sections:")
			present("claimantDetails", c.ClaimantDetails != nil)
			present("accidentDetails", c.AccidentDetails != nil)
			present("physicalInjury", c.PhysicalInjury != nil)
			present("psychologicalInjuries", c.PsychologicalInjuries != nil)
			present("treatments", c.Treatments != nil)
			present("lifestyleImpact", c.LifestyleImpact != nil)
			present("familyHistory", c.FamilyHistory != nil)
			present("expertDetails", c.ExpertDetails != nil)

			if c.PhysicalInjury != nil {
				fmt.Printf("Injuries: %d\n", len(c.PhysicalInjury.Injuries))
			}
			return nil
		},
	}
}

type renderFlags struct {
	pageSize      string
	orientation   string
	fontFamily    string
	signature     string
	noCover       bool
	noTOC         bool
	noCV          bool
	noDeclaration bool
	footerAll     bool
	exclude       []string
}

func buildOptions(f renderFlags) ([]medreport.Option, error) {
	var opts []medreport.Option

	switch strings.ToUpper(f.pageSize) {
	case "A4":
		opts = append(opts, medreport.WithPageSize(medreport.PageSizeA4))
	case "LETTER":
		opts = append(opts, medreport.WithPageSize(medreport.PageSizeLetter))
	default:
		return nil, fmt.Errorf("unknown page size: %s (use A4 or Letter)", f.pageSize)
	}

	switch strings.ToLower(f.orientation) {
	case "portrait", "p":
		opts = append(opts, medreport.WithOrientation(medreport.OrientationPortrait))
	case "landscape", "l":
		opts = append(opts, medreport.WithOrientation(medreport.OrientationLandscape))
	default:
		return nil, fmt.Errorf("unknown orientation: %s (use portrait or landscape)", f.orientation)
	}

	if f.fontFamily != "" {
		switch strings.ToLower(f.fontFamily) {
		case "helvetica":
			opts = append(opts, medreport.WithFontFamily("Helvetica"))
		case "times":
			opts = append(opts, medreport.WithFontFamily("Times"))
		case "courier":
			opts = append(opts, medreport.WithFontFamily("Courier"))
		default:
			return nil, fmt.Errorf("unknown font family: %s (use Helvetica, Times or Courier)", f.fontFamily)
		}
	}
	if f.signature != "" {
		opts = append(opts, medreport.WithSignatureImage(f.signature))
	}
	if f.noCover {
		opts = append(opts, medreport.WithCoverPage(false))
	}
	if f.noTOC {
		opts = append(opts, medreport.WithTableOfContents(false))
	}
	if f.noCV {
		opts = append(opts, medreport.WithExpertCV(false))
	}
	if f.noDeclaration {
		opts = append(opts, medreport.WithDeclaration(false))
	}
	if f.footerAll {
		opts = append(opts, medreport.WithFooterOnEveryPage(true))
	}

	if len(f.exclude) > 0 {
		sections := medreport.AllSections()
		for _, name := range f.exclude {
			switch strings.TrimSpace(name) {
			case "claimantDetails":
				sections.ClaimantDetails = false
			case "accidentDetails":
				sections.AccidentDetails = false
			case "physicalInjury":
				sections.PhysicalInjury = false
			case "psychologicalInjuries":
				sections.PsychologicalInjuries = false
			case "treatments":
				sections.Treatments = false
			case "lifestyleImpact":
				sections.LifestyleImpact = false
			case "familyHistory":
				sections.FamilyHistory = false
			case "expertDetails":
				sections.ExpertDetails = false
			default:
				return nil, fmt.Errorf("unknown section: %s", name)
			}
		}
		opts = append(opts, medreport.WithSections(sections))
	}

	return opts, nil
}
