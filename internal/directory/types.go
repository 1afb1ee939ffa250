// Package directory provides the business logic for the exhibitor
// directory: row normalization, letter grouping, locale-aware ordering,
// and the query operations behind the JSON API. This package has no HTTP
// dependencies and can be driven by any transport.
package directory

// Exhibitor is one normalized exhibitor row. Every field is a plain
// string; absent cells normalize to "".
type Exhibitor struct {
	Company     string `json:"company"`
	Email       string `json:"email"`
	PersonName  string `json:"personName"`
	StallNumber string `json:"stallNumber"`
	Category    string `json:"category"`
	LogoURL     string `json:"logoUrl"`
	Tagline     string `json:"tagline"`
	Website     string `json:"website"`
	Summary     string `json:"summary"`
}

// TeamMember is one normalized team row.
type TeamMember struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Company    string `json:"company"`
	PhotoURL   string `json:"photoUrl"`
	Website    string `json:"website"`
	Email      string `json:"email"`
	Featured   bool   `json:"featured"`
}

// Partner status values produced by normalization.
const (
	StatusClosed    = "Closed"
	StatusAvailable = "Available"
)

// Partner is one normalized partner row. Status is always exactly
// StatusClosed or StatusAvailable after normalization.
type Partner struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Company string `json:"company"`
	LogoURL string `json:"logoUrl"`
	Website string `json:"website"`
}

// ExhibitorColumns maps exhibitor record fields to cell positions.
type ExhibitorColumns struct {
	Email       int
	Company     int
	PersonName  int
	StallNumber int
	Category    int
	LogoURL     int
	Tagline     int
	Website     int
	Summary     int
}

// TeamColumns maps team record fields to cell positions.
type TeamColumns struct {
	Name       int
	Profession int
	Company    int
	PhotoURL   int
	Website    int
	Email      int
	Featured   int
}

// PartnerColumns maps partner record fields to cell positions.
type PartnerColumns struct {
	Name    int
	Type    int
	Status  int
	Company int
	LogoURL int
	Website int
}

// Schema names the sheets and column layouts for each entity kind.
// It is built once at startup and passed into the Service; nothing in
// this package reads layout from package-level state, so tests can
// substitute arbitrary fixtures.
type Schema struct {
	ExhibitorSheet string
	TeamSheet      string
	PartnerSheet   string

	Exhibitors ExhibitorColumns
	Team       TeamColumns
	Partners   PartnerColumns
}

// DefaultSchema returns the production sheet layout.
func DefaultSchema() Schema {
	return Schema{
		ExhibitorSheet: "Exhibitors",
		TeamSheet:      "Team",
		PartnerSheet:   "Partners",
		Exhibitors: ExhibitorColumns{
			Email:       0,
			Company:     1,
			PersonName:  2,
			StallNumber: 3,
			Category:    4,
			LogoURL:     5,
			Tagline:     6,
			Website:     7,
			Summary:     8,
		},
		Team: TeamColumns{
			Name:       0,
			Profession: 1,
			Company:    2,
			PhotoURL:   3,
			Website:    4,
			Email:      5,
			Featured:   6,
		},
		Partners: PartnerColumns{
			Name:    0,
			Type:    1,
			Status:  2,
			Company: 3,
			LogoURL: 4,
			Website: 5,
		},
	}
}
