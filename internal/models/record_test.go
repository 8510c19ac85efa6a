package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesAndPropsOrder(t *testing.T) {
	files := Files()
	require.Len(t, files, 9)
	assert.Equal(t, "first", files[0])
	assert.Equal(t, "second", files[1])
	assert.Equal(t, "single_jumping_second", files[7])
	assert.Equal(t, "reference_genome", files[8])

	props := Props()
	require.Len(t, props, 13)
	assert.Equal(t, files, props[:9])
	assert.Equal(t, []string{"RL", "IS", "jump_is", "single_cell"}, props[9:])
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		key  string
		want FieldClass
	}{
		{"first", ClassReadFile},
		{"single_jumping_first", ClassReadFile},
		{"reference_genome", ClassReference},
		{"IS", ClassMisc},
		{"single_cell", ClassMisc},
		{"is", ClassUnknown},
		{"comment", ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassOf(tt.key))
		})
	}

	assert.True(t, IsFileField("reference_genome"))
	assert.False(t, IsFileField("RL"))
	assert.True(t, IsKnownField("name"))
	assert.False(t, IsKnownField("lane"))
}

func TestParseFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		state ValueState
	}{
		{"empty", "", StateAbsent},
		{"blank", "   ", StateAbsent},
		{"upper sentinel", "N/A", StateNotApplicable},
		{"lower sentinel", "n/a", StateNotApplicable},
		{"mixed sentinel", "N/a", StateNotApplicable},
		{"path", "/data/a.fq", StatePresent},
		{"sentinel lookalike", "N/A.fq", StatePresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseFieldValue(tt.raw)
			assert.Equal(t, tt.state, v.State)
			assert.Equal(t, tt.state == StatePresent, v.IsPresent())
		})
	}
}

func TestRecordBuilder(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		rec, err := NewRecordBuilder("sample1").
			Set("second", "/b.fq").
			Set("first", "/a.fq").
			Set("lane", "3").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "sample1", rec.Name())
		assert.Equal(t, []string{"second", "first", "lane"}, rec.Keys())
		assert.Equal(t, 3, rec.Len())
		assert.Equal(t, []string{"lane"}, rec.UnknownKeys())
	})

	t.Run("repeated key keeps last value", func(t *testing.T) {
		rec, err := NewRecord("s", Pair{"IS", "200"}, Pair{"IS", "300"})
		require.NoError(t, err)

		v, ok := rec.Get("IS")
		assert.True(t, ok)
		assert.Equal(t, "300", v)
		assert.Equal(t, 1, rec.Len())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewRecord("")
		assert.Error(t, err)
	})

	t.Run("pairs are copies", func(t *testing.T) {
		rec, err := NewRecord("s", Pair{"first", "/a.fq"})
		require.NoError(t, err)

		pairs := rec.Pairs()
		pairs[0].Value = "/tampered"
		v, _ := rec.Get("first")
		assert.Equal(t, "/a.fq", v)
	})
}

func TestRecordMap(t *testing.T) {
	rec, err := NewRecord("sample1",
		Pair{"first", "/a.fq"},
		Pair{"name", "other"},
	)
	require.NoError(t, err)

	m := rec.Map()
	assert.Equal(t, "sample1", m["name"])
	assert.Equal(t, "/a.fq", m["first"])
	assert.Len(t, m, 2)
}

func TestDeclaredFiles(t *testing.T) {
	rec, err := NewRecord("sample1",
		Pair{"reference_genome", "/ref.fa"},
		Pair{"second", "/b.fq"},
		Pair{"first", "/a.fq"},
		Pair{"single_first", "n/a"},
		Pair{"RL", "100"},
		Pair{"extra", "/not/a/field"},
	)
	require.NoError(t, err)

	// Files() order, not declaration order
	assert.Equal(t, []string{"/a.fq", "/b.fq", "/ref.fa"}, rec.DeclaredFiles())
	assert.Equal(t, StateNotApplicable, rec.Field("single_first").State)
	assert.Equal(t, StateAbsent, rec.Field("jumping_first").State)
}
