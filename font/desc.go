package font

import "github.com/flopp/go-findfont"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"

// Font slants.
type Slant uint8

const (
	SlantNormal Slant = iota
	SlantItalic
	SlantOblique
)

// Font weights. Only the two weights relevant for titlebars are
// modeled; anything fancier belongs to a full font matching system.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// A Desc describes a font without pointing to a concrete file:
// a family name (a concrete one like "DejaVu Sans", or the generic
// "sans-serif") plus slant and weight.
type Desc struct {
	Family string
	Slant  Slant
	Weight Weight
}

// The descriptor used for title rendering: generic sans-serif,
// normal slant, normal weight.
func SansSerif() *Desc {
	return &Desc { Family: "sans-serif", Slant: SlantNormal, Weight: WeightNormal }
}

// Candidate file names tried, in order, when resolving the generic
// sans-serif family through the system font database. File name
// matching is what the underlying lookup operates on, so these are
// concrete font file names rather than family names.
var sansSerifCandidates = []string {
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"FreeSans.ttf",
	"NotoSans-Regular.ttf",
	"Helvetica.ttf",
}

// Resolves the descriptor to a parsed font.
//
// Resolution first searches the system font directories through the
// go-findfont database. When nothing matches (headless hosts, minimal
// containers), the embedded Go Regular face is parsed and returned
// instead, so resolution only fails if font parsing itself fails.
func (self *Desc) Resolve() (*sfnt.Font, error) {
	for _, candidate := range self.candidateFileNames() {
		path, err := findfont.Find(candidate)
		if err != nil || path == "" { continue }
		sfntFont, err := ParseFromPath(path)
		if err != nil { continue } // corrupt or unsupported file, keep trying
		return sfntFont, nil
	}
	return ParseFromBytes(goregular.TTF)
}

func (self *Desc) candidateFileNames() []string {
	if self.Family == "sans-serif" || self.Family == "" {
		if self.Slant == SlantNormal && self.Weight == WeightNormal {
			return sansSerifCandidates
		}
		// non-default styles fall through to the raw family name;
		// title rendering never requests them
	}
	return []string{ self.Family + ".ttf" }
}
