package engine

import (
	"slices"
	"testing"
)

func TestNextLetters(t *testing.T) {
	tests := []struct {
		name string
		city string
		want []string
	}{
		{"plain ending", "Москва", []string{"А"}},
		{"consonant ending", "Архангельск", []string{"К"}},
		{"soft sign", "Кремль", []string{"Л"}},
		{"soft sign after r", "Тверь", []string{"Р"}},
		{"soft sign after n", "Рязань", []string{"Н"}},
		{"yery", "Чебоксары", []string{"Р", "Ы"}},
		{"yery after t", "Шахты", []string{"Т", "Ы"}},
		{"short i", "Мирный", []string{"Й", "И"}},
		{"yo", "Линё", []string{"Ё", "Е"}},
		{"uppercase final letter", "ОМСК", []string{"К"}},
		{"hyphenated", "Йошкар-Ола", []string{"А"}},
		{"single soft sign", "ь", []string{"Ь"}},
		{"single yery", "ы", []string{"Ы"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextLetters(tt.city)
			if !slices.Equal(got, tt.want) {
				t.Errorf("NextLetters(%q) = %v, want %v", tt.city, got, tt.want)
			}
		})
	}
}

// The hard sign is only special-cased in its uppercase form. The lowercase
// form reaches the default branch, which upper-cases it to the same letter,
// so both spellings currently yield {Ъ}. Pinned here so a change to either
// branch is a deliberate decision.
func TestNextLetters_HardSign(t *testing.T) {
	if got := NextLetters("ГОРОДЪ"); !slices.Equal(got, []string{"Ъ"}) {
		t.Errorf("uppercase hard sign: got %v, want [Ъ]", got)
	}
	if got := NextLetters("Городъ"); !slices.Equal(got, []string{"Ъ"}) {
		t.Errorf("lowercase hard sign: got %v, want [Ъ]", got)
	}
}

func TestNextLetters_NeverEmptyForCatalogNames(t *testing.T) {
	for _, city := range []string{"Тверь", "Чебоксары", "Мирный", "Орёл", "Уфа", "Сочи", "Улан-Удэ"} {
		if len(NextLetters(city)) == 0 {
			t.Errorf("Expected required letters for %q", city)
		}
	}
}

func TestFirstLetter(t *testing.T) {
	tests := map[string]string{
		"москва": "М",
		"Тверь":  "Т",
		"ёлки":   "Ё",
		"":       "",
		"-abc":   "-",
	}

	for input, want := range tests {
		if got := FirstLetter(input); got != want {
			t.Errorf("FirstLetter(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatLetters(t *testing.T) {
	if got := FormatLetters([]string{"Р", "Ы"}); got != "Р или Ы" {
		t.Errorf("Expected %q, got %q", "Р или Ы", got)
	}
	if got := FormatLetters([]string{"А"}); got != "А" {
		t.Errorf("Expected %q, got %q", "А", got)
	}
}
