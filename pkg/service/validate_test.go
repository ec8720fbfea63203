package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "Gordon Ramsay"},
		{name: "accented", input: "José Andrés"},
		{name: "max length", input: strings.Repeat("a", MaxNameLength)},
		{name: "max length multibyte", input: strings.Repeat("é", MaxNameLength)},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   \t", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxNameLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSeason(t *testing.T) {
	assert.NoError(t, ValidateSeason(1))
	assert.ErrorIs(t, ValidateSeason(0), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateSeason(-3), ErrInvalidArgument)
}

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "a, b", want: []string{"a", "b"}},
		{input: "salt,pepper ,  olive oil", want: []string{"salt", "pepper", "olive oil"}},
		{input: "flour", want: []string{"flour"}},
		{input: "egg,,milk,", want: []string{"egg", "milk"}},
		{input: "", want: []string{}},
		{input: " , ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIngredients(tt.input))
		})
	}
}

func TestParseInstructions(t *testing.T) {
	assert.Equal(t, []string{"s1", "s2"}, ParseInstructions("s1; s2"))
	assert.Equal(t, []string{"boil water", "add pasta, stir", "drain"},
		ParseInstructions("boil water;add pasta, stir ; drain"))
	assert.Equal(t, []string{}, ParseInstructions(""))
}
