package rules

import "github.com/arthur-debert/codemerge/pkg/types"

var (
	headerExtensions = []string{".h", ".hpp", ".hxx", ".hh"}
	sourceExtensions = []string{".c", ".cpp", ".cxx", ".cc"}
)

// DefaultHidden lists the categories whose files may start with a dot
var DefaultHidden = []types.Category{
	types.CategoryMake,
	types.CategoryMeson,
	types.CategoryCMake,
	types.CategoryBazel,
	types.CategoryQMake,
}

// DefaultRules returns the built-in build-system table.
// Order matters: exact names come before suffixes within a family.
func DefaultRules() []Rule {
	return []Rule{
		// Make
		{Match: "Makefile", Category: types.CategoryMake},
		{Match: "makefile", Category: types.CategoryMake},
		{Match: "GNUmakefile", Category: types.CategoryMake},
		{Match: ".mk", Category: types.CategoryMake},
		{Match: ".mak", Category: types.CategoryMake},

		// Meson
		{Match: "meson.build", Category: types.CategoryMeson},
		{Match: "meson_options.txt", Category: types.CategoryMeson},
		{Match: "meson.options", Category: types.CategoryMeson},

		// CMake
		{Match: "CMakeLists.txt", Category: types.CategoryCMake},
		{Match: "CMakePresets.json", Category: types.CategoryCMake},
		{Match: "CMakeUserPresets.json", Category: types.CategoryCMake},
		{Match: ".cmake", Category: types.CategoryCMake},

		// Autotools
		{Match: "configure.ac", Category: types.CategoryAutotools},
		{Match: "configure.in", Category: types.CategoryAutotools},
		{Match: "Makefile.am", Category: types.CategoryAutotools},
		{Match: "Makefile.in", Category: types.CategoryAutotools},
		{Match: ".m4", Category: types.CategoryAutotools},

		// Ninja
		{Match: "build.ninja", Category: types.CategoryNinja},
		{Match: ".ninja", Category: types.CategoryNinja},

		// Bazel
		{Match: "BUILD", Category: types.CategoryBazel},
		{Match: "BUILD.bazel", Category: types.CategoryBazel},
		{Match: "WORKSPACE", Category: types.CategoryBazel},
		{Match: "WORKSPACE.bazel", Category: types.CategoryBazel},
		{Match: "MODULE.bazel", Category: types.CategoryBazel},
		{Match: ".bzl", Category: types.CategoryBazel},
		{Match: ".bazelrc", Category: types.CategoryBazel},
		{Match: ".bazelversion", Category: types.CategoryBazel},

		// QMake
		{Match: ".pro", Category: types.CategoryQMake},
		{Match: ".pri", Category: types.CategoryQMake},
		{Match: ".prf", Category: types.CategoryQMake},
		{Match: ".qmake.conf", Category: types.CategoryQMake},
		{Match: ".qmake.stash", Category: types.CategoryQMake},

		// SCons
		{Match: "SConstruct", Category: types.CategorySCons},
		{Match: "SConscript", Category: types.CategorySCons},
		{Match: "Sconstruct", Category: types.CategorySCons},
		{Match: "Sconscript", Category: types.CategorySCons},
	}
}
