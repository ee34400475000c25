package font

import "os"
import "errors"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](). The bytes must not be modified while
// the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, error) {
	return sfnt.Parse(fontBytes)
}

// Attempts to parse the font located at the given filepath.
// Supported formats are .ttf and .otf.
func ParseFromPath(path string) (*sfnt.Font, error) {
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, errors.New("invalid font path '" + path + "'")
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	if path[len(path) - 4] != '.' { return false }
	return true
}
