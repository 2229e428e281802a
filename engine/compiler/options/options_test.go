package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jscomp/jscomp/engine/compiler/diagnostic"
)

func TestNew(t *testing.T) {
	t.Run("Should start at the compiler baseline", func(t *testing.T) {
		o := New()

		assert.True(t, o.ModuleRewritingEnabled())
		assert.False(t, o.CheckTypes())
		assert.Equal(t, LanguageModeStable, o.LanguageIn())
		assert.Equal(t, OutputJSNormal, o.OutputJS())
		assert.Equal(t, ReachNone, o.InlineFunctionsLevel())
		assert.Equal(t, VariableRenamingOff, o.VariableRenaming())
		assert.Nil(t, o.PolymerVersion())
	})
}

func TestOptions_WarningLevels(t *testing.T) {
	t.Run("Should report Off for groups never assigned", func(t *testing.T) {
		o := New()

		assert.Equal(t, diagnostic.Off, o.WarningLevel(diagnostic.Const))
	})

	t.Run("Should track assigned levels per group", func(t *testing.T) {
		o := New()

		o.SetWarningLevel(diagnostic.Const, diagnostic.Warning)
		o.SetWarningLevel(diagnostic.Visibility, diagnostic.Error)

		assert.Equal(t, diagnostic.Warning, o.WarningLevel(diagnostic.Const))
		assert.Equal(t, diagnostic.Error, o.WarningLevel(diagnostic.Visibility))
		assert.Equal(t, diagnostic.Off, o.WarningLevel(diagnostic.Deprecated))
	})

	t.Run("Should let a later assignment replace an earlier one", func(t *testing.T) {
		o := New()

		o.SetWarningLevel(diagnostic.Const, diagnostic.Warning)
		o.SetWarningLevel(diagnostic.Const, diagnostic.Off)

		assert.Equal(t, diagnostic.Off, o.WarningLevel(diagnostic.Const))
	})
}

func TestOptions_SyntheticBlockMarkers(t *testing.T) {
	t.Run("Should set and clear the marker pair", func(t *testing.T) {
		o := New()

		o.SetSyntheticBlockStartMarker("start")
		o.SetSyntheticBlockEndMarker("end")
		require.Equal(t, "start", o.SyntheticBlockStartMarker())
		require.Equal(t, "end", o.SyntheticBlockEndMarker())

		o.SetSyntheticBlockStartMarker("")
		o.SetSyntheticBlockEndMarker("")
		assert.Empty(t, o.SyntheticBlockStartMarker())
		assert.Empty(t, o.SyntheticBlockEndMarker())
	})
}

func TestLanguageMode_String(t *testing.T) {
	t.Run("Should name every mode", func(t *testing.T) {
		cases := map[LanguageMode]string{
			LanguageModeStable:      "stable",
			LanguageModeES3:         "es3",
			LanguageModeES5:         "es5",
			LanguageModeES2015:      "es2015",
			LanguageModeES2017:      "es2017",
			LanguageModeES2020:      "es2020",
			LanguageModeESNext:      "esnext",
			LanguageModeNoTranspile: "no_transpile",
		}
		for mode, name := range cases {
			assert.Equal(t, name, mode.String())
		}
	})
}
