package medreport

import "time"

// Page size and orientation names accepted by the renderer.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// RGB is an RGB color used for header bars and accents.
type RGB struct {
	R, G, B int
}

// FontSizes holds the point sizes used for each text role.
type FontSizes struct {
	Title         float64
	Subtitle      float64
	SectionHeader float64
	Body          float64
}

// SectionToggles controls which case sections are rendered. A disabled
// section is skipped entirely: no header, no table, no placeholder.
type SectionToggles struct {
	ClaimantDetails       bool
	AccidentDetails       bool
	PhysicalInjury        bool
	PsychologicalInjuries bool
	Treatments            bool
	LifestyleImpact       bool
	FamilyHistory         bool
	ExpertDetails         bool
}

// AllSections returns toggles with every section enabled.
func AllSections() SectionToggles {
	return SectionToggles{
		ClaimantDetails:       true,
		AccidentDetails:       true,
		PhysicalInjury:        true,
		PsychologicalInjuries: true,
		Treatments:            true,
		LifestyleImpact:       true,
		FamilyHistory:         true,
		ExpertDetails:         true,
	}
}

// Options configures one render invocation. Options values are immutable
// for the duration of a render; there is no package-level mutable default.
type Options struct {
	PageSize    string // PageSizeA4 or PageSizeLetter
	Orientation string // OrientationPortrait or OrientationLandscape
	FontFamily  string // Helvetica, Times or Courier

	PrimaryColor   RGB
	SecondaryColor RGB
	FontSize       FontSizes

	IncludeCoverPage       bool
	IncludeTableOfContents bool
	IncludeExpertCV        bool
	IncludeDeclaration     bool
	FooterOnEveryPage      bool

	Sections SectionToggles

	// SignatureImage is an optional path to the expert's signature image.
	// A missing or unreadable image falls back to a text placeholder.
	SignatureImage string

	// GeneratedAt is the report timestamp used for document metadata and
	// the declaration date. The zero value means time.Now at render time;
	// pass a fixed instant for reproducible output.
	GeneratedAt time.Time

	// Compress toggles PDF stream compression. On by default; disabled in
	// tests so rendered text can be inspected in the raw output.
	Compress bool
}

// DefaultOptions returns the standard report configuration: portrait A4,
// Helvetica, navy and slate accents, every page block and section included.
func DefaultOptions() Options {
	return Options{
		PageSize:       PageSizeA4,
		Orientation:    OrientationPortrait,
		FontFamily:     "Helvetica",
		PrimaryColor:   RGB{R: 30, G: 58, B: 95},
		SecondaryColor: RGB{R: 52, G: 73, B: 94},
		FontSize: FontSizes{
			Title:         24,
			Subtitle:      14,
			SectionHeader: 12,
			Body:          10,
		},
		IncludeCoverPage:       true,
		IncludeTableOfContents: true,
		IncludeExpertCV:        true,
		IncludeDeclaration:     true,
		FooterOnEveryPage:      false,
		Sections:               AllSections(),
		Compress:               true,
	}
}

// Option is a functional option applied on top of DefaultOptions.
type Option func(*Options)

// WithPageSize sets the page size (PageSizeA4 or PageSizeLetter).
// Unrecognized values keep the default.
func WithPageSize(size string) Option {
	return func(o *Options) {
		if size == PageSizeA4 || size == PageSizeLetter {
			o.PageSize = size
		}
	}
}

// WithOrientation sets the page orientation.
func WithOrientation(orientation string) Option {
	return func(o *Options) {
		if orientation == OrientationPortrait || orientation == OrientationLandscape {
			o.Orientation = orientation
		}
	}
}

// WithFontFamily sets the body font family. Width calculations use the
// built-in metrics of this family, so wrap widths stay consistent with it.
func WithFontFamily(family string) Option {
	return func(o *Options) {
		switch family {
		case "Helvetica", "Times", "Courier":
			o.FontFamily = family
		}
	}
}

// WithColors sets the primary (header bars) and secondary (accents) colors.
func WithColors(primary, secondary RGB) Option {
	return func(o *Options) {
		o.PrimaryColor = primary
		o.SecondaryColor = secondary
	}
}

// WithFontSizes overrides the point sizes per text role. Zero fields keep
// their defaults.
func WithFontSizes(sizes FontSizes) Option {
	return func(o *Options) {
		if sizes.Title > 0 {
			o.FontSize.Title = sizes.Title
		}
		if sizes.Subtitle > 0 {
			o.FontSize.Subtitle = sizes.Subtitle
		}
		if sizes.SectionHeader > 0 {
			o.FontSize.SectionHeader = sizes.SectionHeader
		}
		if sizes.Body > 0 {
			o.FontSize.Body = sizes.Body
		}
	}
}

// WithCoverPage gates the cover page.
func WithCoverPage(include bool) Option {
	return func(o *Options) { o.IncludeCoverPage = include }
}

// WithTableOfContents gates the table of contents page.
func WithTableOfContents(include bool) Option {
	return func(o *Options) { o.IncludeTableOfContents = include }
}

// WithExpertCV gates the expert curriculum vitae page.
func WithExpertCV(include bool) Option {
	return func(o *Options) { o.IncludeExpertCV = include }
}

// WithDeclaration gates the statement-of-truth declaration section.
func WithDeclaration(include bool) Option {
	return func(o *Options) { o.IncludeDeclaration = include }
}

// WithFooterOnEveryPage stamps the footer on the cover page as well.
func WithFooterOnEveryPage(include bool) Option {
	return func(o *Options) { o.FooterOnEveryPage = include }
}

// WithSections replaces the per-section include map wholesale.
func WithSections(s SectionToggles) Option {
	return func(o *Options) { o.Sections = s }
}

// WithSignatureImage sets the path to the expert's signature image.
func WithSignatureImage(path string) Option {
	return func(o *Options) { o.SignatureImage = path }
}

// WithGeneratedAt fixes the report timestamp, making output reproducible.
func WithGeneratedAt(t time.Time) Option {
	return func(o *Options) { o.GeneratedAt = t }
}

// WithCompression toggles PDF stream compression.
func WithCompression(enabled bool) Option {
	return func(o *Options) { o.Compress = enabled }
}
