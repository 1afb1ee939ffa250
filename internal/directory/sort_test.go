package directory

import (
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func englishCollator() *collate.Collator {
	return collate.New(language.English)
}

func TestSortExhibitors_LocaleOrder(t *testing.T) {
	// Byte order would put "Banana" (B = 0x42) before "apple" (a = 0x61);
	// collation orders them the way a reader expects.
	records := []Exhibitor{ex("Banana"), ex("apple")}

	SortExhibitors(englishCollator(), records)

	if records[0].Company != "apple" || records[1].Company != "Banana" {
		t.Errorf("order = [%q, %q], want [apple, Banana]",
			records[0].Company, records[1].Company)
	}
}

func TestSortExhibitors_CaseTieBreak(t *testing.T) {
	// "Acme Corp" sorts before "acorn LLC": the third letters m < o decide
	// before case is ever considered.
	records := []Exhibitor{ex("acorn LLC"), ex("Acme Corp")}

	SortExhibitors(englishCollator(), records)

	if records[0].Company != "Acme Corp" || records[1].Company != "acorn LLC" {
		t.Errorf("order = [%q, %q], want [Acme Corp, acorn LLC]",
			records[0].Company, records[1].Company)
	}
}

func TestSortExhibitors_Stable(t *testing.T) {
	records := []Exhibitor{
		{Company: "Acme", Email: "first@x.com"},
		{Company: "Beta", Email: "b@x.com"},
		{Company: "Acme", Email: "second@x.com"},
		{Company: "Acme", Email: "third@x.com"},
	}

	SortExhibitors(englishCollator(), records)

	wantEmails := []string{"first@x.com", "second@x.com", "third@x.com", "b@x.com"}
	for i, want := range wantEmails {
		if records[i].Email != want {
			t.Errorf("records[%d].Email = %q, want %q (equal names must keep row order)",
				i, records[i].Email, want)
		}
	}
}

func TestSortExhibitors_Empty(t *testing.T) {
	// Must not panic on nil or empty input.
	SortExhibitors(englishCollator(), nil)
	SortExhibitors(englishCollator(), []Exhibitor{})
}
