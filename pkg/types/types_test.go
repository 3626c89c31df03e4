package types_test

import (
	"testing"

	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOrder(t *testing.T) {
	cats := types.Categories()
	require.Len(t, cats, types.CategoryCount)

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	assert.Equal(t, []string{
		"make", "meson", "cmake", "autotools", "ninja",
		"bazel", "qmake", "scons", "header", "source",
	}, names)
}

func TestParseCategory(t *testing.T) {
	for _, c := range types.Categories() {
		got, err := types.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := types.ParseCategory("gradle")
	assert.Error(t, err)

	_, err = types.ParseCategory("unclassified")
	assert.Error(t, err, "the sentinel is not a selectable category")
}

func TestCategoryPredicates(t *testing.T) {
	assert.True(t, types.CategoryMake.IsBuildSystem())
	assert.True(t, types.CategorySCons.IsBuildSystem())
	assert.False(t, types.CategoryHeader.IsBuildSystem())
	assert.False(t, types.Unclassified.Valid())
	assert.True(t, types.CategorySource.Valid())
	assert.Equal(t, "category(42)", types.Category(42).String())
}

func TestCategoryText(t *testing.T) {
	var c types.Category
	require.NoError(t, c.UnmarshalText([]byte("qmake")))
	assert.Equal(t, types.CategoryQMake, c)

	text, err := types.CategoryBazel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "bazel", string(text))

	assert.Error(t, c.UnmarshalText([]byte("nope")))
}

func TestGroups(t *testing.T) {
	recs := []types.FileRecord{
		{Path: "/p/Makefile", Category: types.CategoryMake},
		{Path: "/p/a.c", Category: types.CategorySource},
		{Path: "/p/b.c", Category: types.CategorySource},
	}

	assert.Equal(t, []types.CategoryGroup{
		{Category: types.CategoryMake, Files: []string{"/p/Makefile"}},
		{Category: types.CategorySource, Files: []string{"/p/a.c", "/p/b.c"}},
	}, types.Groups(recs))

	assert.Nil(t, types.Groups(nil))
}
