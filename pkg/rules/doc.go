// Package rules classifies filenames into output categories.
//
// # Rule Conventions
//
// A rule pairs a matcher with a category:
//
//   - `Makefile` - exact filename match (byte equality)
//   - `.mk` - suffix match; any matcher starting with a dot is a suffix
//
// # Rule Priority
//
// Rules are evaluated in table order and the first matching rule wins, so an
// exact name listed early (`CMakeLists.txt`) beats any later suffix rule that
// would also match. Rules from configuration are placed before the built-in
// table. When no build-system rule matches, the header extensions
// (.h .hpp .hxx .hh) and then the source extensions (.c .cpp .cxx .cc) are
// tried. Matching is case-sensitive.
//
// # Hidden Files
//
// A name starting with a dot is only eligible when its category is in the
// dotfile-permitted set (by default Make, Meson, CMake, Bazel and QMake).
// `.bazelrc` is merged while `.scratch.c` is not.
//
// # Configuration
//
//	[[rules]]
//	match = ".gn"
//	category = "ninja"
//
//	[hidden]
//	allow = ["make", "meson"]
package rules
