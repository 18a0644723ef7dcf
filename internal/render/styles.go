package render

// RunStyle is the inline formatting of a run. Size is in half-points.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int
	Color  string
}

const (
	HeadingColor = "003366"
	MutedColor   = "404040"
	NameSize     = 40
	ContactSize  = 20
	HeadingSize  = 22

	// page margins in twentieths of a point
	resumeMargin      = 720
	coverLetterMargin = 1440
)

// StyleMap centralizes formatting for the resume elements.
var StyleMap = map[string]RunStyle{
	"name": {
		Bold: true,
		Size: NameSize,
	},
	"contact": {
		Size:  ContactSize,
		Color: MutedColor,
	},
	"sectionHeading": {
		Bold:  true,
		Size:  HeadingSize,
		Color: HeadingColor,
	},
	"roleLine": {
		Bold: true,
	},
	"duration": {
		Italic: true,
		Color:  MutedColor,
	},
}
