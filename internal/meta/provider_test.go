// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type emptyProvider struct{}

func (emptyProvider) Describe(string) (*Description, error) {
	return nil, assert.AnError
}

func TestDocstringSentinel(t *testing.T) {
	doc := Docstring(emptyProvider{}, "pkg.mod.Nothing", nil)
	assert.Equal(t, []string{UndocumentedSentinel}, doc)
}

func TestDocstringWarnsThroughCallback(t *testing.T) {
	var warned []string
	warn := func(format string, args ...any) {
		warned = append(warned, format)
	}

	Docstring(emptyProvider{}, "pkg.mod.Nothing", warn)
	assert.Len(t, warned, 1)
}

func TestSummarySentence(t *testing.T) {
	doc := []string{
		"Process a single CCD exposure.",
		"The summary continues here.",
		"",
		"This paragraph is not part of the summary.",
	}
	assert.Equal(t,
		"Process a single CCD exposure. The summary continues here.",
		SummarySentence(doc))
}

func TestSummarySentenceEmpty(t *testing.T) {
	assert.Equal(t, "", SummarySentence(nil))
	assert.Equal(t, "", SummarySentence([]string{""}))
}

func TestSplitDocText(t *testing.T) {
	lines := SplitDocText("First line.\nSecond line.\n\nBody.\n")
	assert.Equal(t, []string{"First line.", "Second line.", "", "Body."}, lines)

	assert.Nil(t, SplitDocText("   \n"))
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindTask, KindPipelineTask, KindConfigurable, KindConfig} {
		assert.Equal(t, k, KindFromString(k.String()))
	}
	assert.Equal(t, KindUnknown, KindFromString("bogus"))
}
