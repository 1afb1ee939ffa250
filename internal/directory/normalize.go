package directory

// normalize.go converts raw source rows into typed records.
//
// Normalization never fails: a malformed or short row degrades to
// empty-string fields, and downstream inclusion is decided solely by
// the non-empty primary name rule applied by the Service.

import (
	"strings"

	"github.com/expofair/directory/internal/source"
)

// cellAt returns the trimmed string form of the cell at idx, or "" when
// the index is out of range or the cell is empty.
func cellAt(row source.Row, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx].Text())
}

// NormalizeExhibitor converts one raw row into an Exhibitor.
func NormalizeExhibitor(row source.Row, cols ExhibitorColumns) Exhibitor {
	return Exhibitor{
		Company:     cellAt(row, cols.Company),
		Email:       cellAt(row, cols.Email),
		PersonName:  cellAt(row, cols.PersonName),
		StallNumber: cellAt(row, cols.StallNumber),
		Category:    cellAt(row, cols.Category),
		LogoURL:     cellAt(row, cols.LogoURL),
		Tagline:     cellAt(row, cols.Tagline),
		Website:     cellAt(row, cols.Website),
		Summary:     cellAt(row, cols.Summary),
	}
}

// NormalizeTeamMember converts one raw row into a TeamMember.
// The featured flag is true only for a case-insensitive "yes".
func NormalizeTeamMember(row source.Row, cols TeamColumns) TeamMember {
	return TeamMember{
		Name:       cellAt(row, cols.Name),
		Profession: cellAt(row, cols.Profession),
		Company:    cellAt(row, cols.Company),
		PhotoURL:   cellAt(row, cols.PhotoURL),
		Website:    cellAt(row, cols.Website),
		Email:      cellAt(row, cols.Email),
		Featured:   strings.ToLower(cellAt(row, cols.Featured)) == "yes",
	}
}

// NormalizePartner converts one raw row into a Partner.
func NormalizePartner(row source.Row, cols PartnerColumns) Partner {
	return Partner{
		Name:    cellAt(row, cols.Name),
		Type:    cellAt(row, cols.Type),
		Status:  NormalizeStatus(cellAt(row, cols.Status)),
		Company: cellAt(row, cols.Company),
		LogoURL: cellAt(row, cols.LogoURL),
		Website: cellAt(row, cols.Website),
	}
}

// NormalizeStatus collapses a raw status cell to one of the two partner
// statuses: "closed" in any casing means Closed, everything else
// (including blank) means Available.
func NormalizeStatus(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "closed") {
		return StatusClosed
	}
	return StatusAvailable
}
