package textparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Identifier
		wantErr bool
	}{
		{"mandatory", "name", Identifier{Name: "name"}, false},
		{"mandatory keeps spaces", " first name ", Identifier{Name: " first name "}, false},
		{"mandatory keeps quotes", `a "b"`, Identifier{Name: `a "b"`}, false},
		{"empty body", "", Identifier{Name: ""}, false},
		{"question mark later is mandatory", "name?", Identifier{Name: "name?"}, false},
		{
			"optional",
			`?name defVal="Bob"`,
			Identifier{Optional: true, Name: "name", Default: "Bob", HasDefault: true},
			false,
		},
		{
			"optional empty default",
			`?name defVal=""`,
			Identifier{Optional: true, Name: "name", Default: "", HasDefault: true},
			false,
		},
		{
			"default with spaces",
			`?name defVal="John Doe"`,
			Identifier{Optional: true, Name: "name", Default: "John Doe", HasDefault: true},
			false,
		},
		{
			"escaped quotes",
			`?name defVal="*"John*""`,
			Identifier{Optional: true, Name: "name", Default: `"John"`, HasDefault: true},
			false,
		},
		{
			"escape before closing quote leaves value open",
			`?rating defVal="5*"`,
			Identifier{},
			true,
		},
		{
			"star not before quote is literal",
			`?rating defVal="5 * 3"`,
			Identifier{Optional: true, Name: "rating", Default: "5 * 3", HasDefault: true},
			false,
		},
		{
			"tab separates name",
			"?name\tdefVal=\"T\"",
			Identifier{Optional: true, Name: "name", Default: "T", HasDefault: true},
			false,
		},
		{
			"no-break space stays in name",
			"?a\u00a0b defVal=\"x\"",
			Identifier{Optional: true, Name: "a\u00a0b", Default: "x", HasDefault: true},
			false,
		},
		{
			"next line stays in name",
			"?a\u0085b defVal=\"x\"",
			Identifier{Optional: true, Name: "a\u0085b", Default: "x", HasDefault: true},
			false,
		},
		{
			"unit separator ends name",
			"?a\u001fdefVal=\"x\"",
			Identifier{Optional: true, Name: "a", Default: "x", HasDefault: true},
			false,
		},
		{
			"extra whitespace before parameter",
			`?name    defVal="X"`,
			Identifier{Optional: true, Name: "name", Default: "X", HasDefault: true},
			false,
		},
		{
			"other parameters ignored",
			`?name lang="en" defVal="X" trailing`,
			Identifier{Optional: true, Name: "name", Default: "X", HasDefault: true},
			false,
		},
		{
			"first defVal wins",
			`?name defVal="A" defVal="B"`,
			Identifier{Optional: true, Name: "name", Default: "A", HasDefault: true},
			false,
		},
		{
			"unicode default",
			`?city defVal="Zürich"`,
			Identifier{Optional: true, Name: "city", Default: "Zürich", HasDefault: true},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.body)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingDefaultValue)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseIdentifier(%q) mismatch (-want +got):\n%s", tt.body, diff)
			}
		})
	}
}

func TestParseIdentifier_MissingDefault(t *testing.T) {
	bodies := map[string]string{
		"?name":               "name",
		"?name ":              "name",
		`?name default="x"`:   "name",
		`?name defVal=x`:      "name",
		`?name defVal="never`: "name",
		`?name defVal="end*"`: "name",
		"?":                   "",
	}

	for body, wantName := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := ParseIdentifier(body)
			require.ErrorIs(t, err, ErrMissingDefaultValue)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, wantName, pe.Name)
			assert.Equal(t, -1, pe.Pos)
		})
	}
}

func TestIdentifier_Resolve(t *testing.T) {
	mandatory := Identifier{Name: "name"}
	optional := Identifier{Optional: true, Name: "name", Default: "Bob", HasDefault: true}
	emptyDefault := Identifier{Optional: true, Name: "name", HasDefault: true}

	t.Run("mandatory bound", func(t *testing.T) {
		v, err := mandatory.Resolve(Bindings{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Ann", v)
	})

	t.Run("mandatory unbound", func(t *testing.T) {
		_, err := mandatory.Resolve(Bindings{})
		require.ErrorIs(t, err, ErrUnboundVariable)
		assert.Contains(t, err.Error(), `"name"`)
	})

	t.Run("optional bound wins", func(t *testing.T) {
		v, err := optional.Resolve(Bindings{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Ann", v)
	})

	t.Run("optional bound to empty wins", func(t *testing.T) {
		v, err := optional.Resolve(Bindings{"name": ""})
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("optional unbound uses default", func(t *testing.T) {
		v, err := optional.Resolve(Bindings{})
		require.NoError(t, err)
		assert.Equal(t, "Bob", v)
	})

	t.Run("optional unbound uses empty default", func(t *testing.T) {
		v, err := emptyDefault.Resolve(Bindings{})
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})
}
