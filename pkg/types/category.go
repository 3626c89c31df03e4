package types

import "fmt"

// Category is one of the fixed output groupings. Declaration order is
// output order.
type Category int

const (
	CategoryMake Category = iota
	CategoryMeson
	CategoryCMake
	CategoryAutotools
	CategoryNinja
	CategoryBazel
	CategoryQMake
	CategorySCons
	CategoryHeader
	CategorySource

	// Unclassified marks files that do not belong in the output.
	Unclassified
)

// CategoryCount is the number of real categories.
const CategoryCount = int(Unclassified)

var categoryNames = [...]string{
	CategoryMake:      "make",
	CategoryMeson:     "meson",
	CategoryCMake:     "cmake",
	CategoryAutotools: "autotools",
	CategoryNinja:     "ninja",
	CategoryBazel:     "bazel",
	CategoryQMake:     "qmake",
	CategorySCons:     "scons",
	CategoryHeader:    "header",
	CategorySource:    "source",
	Unclassified:      "unclassified",
}

// String returns the stable lowercase name used in config and listings
func (c Category) String() string {
	if c < 0 || c > Unclassified {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is a real output category
func (c Category) Valid() bool {
	return c >= 0 && c < Unclassified
}

// IsBuildSystem reports whether c is one of the build-description families
func (c Category) IsBuildSystem() bool {
	return c >= CategoryMake && c <= CategorySCons
}

// Categories returns all real categories in output order
func Categories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory maps a category name back to its value
func ParseCategory(name string) (Category, error) {
	for i := 0; i < CategoryCount; i++ {
		if categoryNames[i] == name {
			return Category(i), nil
		}
	}
	return Unclassified, fmt.Errorf("unknown category %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
