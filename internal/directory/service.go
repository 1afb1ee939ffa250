package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/expofair/directory/internal/logging"
	"github.com/expofair/directory/internal/source"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Service answers directory queries over a row source. It is stateless
// between requests: every operation re-reads the source in full, so
// responses always reflect the current sheet contents.
type Service struct {
	src    source.Source
	schema Schema
	lang   language.Tag
}

// NewService creates a Service over src using the given schema and
// locale (a BCP 47 tag such as "en" or "de").
func NewService(src source.Source, schema Schema, locale string) (*Service, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Service{src: src, schema: schema, lang: tag}, nil
}

// collator builds a fresh collator for one request. Collators are
// stateful and not safe for concurrent use, so they are never shared.
func (s *Service) collator() *collate.Collator {
	return collate.New(s.lang)
}

// timestamp returns the response timestamp in RFC 3339 UTC form.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// LetterResult is the envelope for a single-letter exhibitor query.
type LetterResult struct {
	Letter     string      `json:"letter"`
	Count      int         `json:"count"`
	Exhibitors []Exhibitor `json:"exhibitors"`
	Timestamp  string      `json:"timestamp"`
}

// GroupedResult is the envelope for the full grouped exhibitor query.
// ExhibitorsByLetter always carries all 26 keys A-Z.
type GroupedResult struct {
	TotalCount         int                    `json:"totalCount"`
	ExhibitorsByLetter map[string][]Exhibitor `json:"exhibitorsByLetter"`
}

// TeamResult is the envelope for the team query.
type TeamResult struct {
	Count     int          `json:"count"`
	Team      []TeamMember `json:"team"`
	Timestamp string       `json:"timestamp"`
}

// PartnersResult is the envelope for the partners query.
type PartnersResult struct {
	ClosedCount    int           `json:"closedCount"`
	AvailableCount int           `json:"availableCount"`
	TotalCount     int           `json:"totalCount"`
	Partners       PartnerGroups `json:"partners"`
	Timestamp      string        `json:"timestamp"`
}

// loadExhibitors reads and normalizes the exhibitor sheet, keeping only
// rows with a non-empty company name.
func (s *Service) loadExhibitors(ctx context.Context) ([]Exhibitor, error) {
	rows, err := s.src.Rows(ctx, s.schema.ExhibitorSheet)
	if err != nil {
		return nil, err
	}
	records := make([]Exhibitor, 0, len(rows))
	for _, row := range rows {
		rec := NormalizeExhibitor(row, s.schema.Exhibitors)
		if rec.Company == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ExhibitorsByLetter returns all exhibitors whose company name starts
// with the given letter, sorted by collation order. The letter must
// already be validated with ValidLetter.
func (s *Service) ExhibitorsByLetter(ctx context.Context, letter string) (*LetterResult, error) {
	records, err := s.loadExhibitors(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterByLetter(records, letter)
	SortExhibitors(s.collator(), filtered)

	return &LetterResult{
		Letter:     letter,
		Count:      len(filtered),
		Exhibitors: filtered,
		Timestamp:  timestamp(),
	}, nil
}

// ExhibitorsGrouped returns all exhibitors bucketed by starting letter,
// each bucket sorted by collation order. TotalCount counts every
// included record, including those whose name does not start with an
// ASCII letter and therefore appears in no bucket.
func (s *Service) ExhibitorsGrouped(ctx context.Context) (*GroupedResult, error) {
	records, err := s.loadExhibitors(ctx)
	if err != nil {
		return nil, err
	}

	buckets := GroupByLetter(records)
	c := s.collator()
	for _, bucket := range buckets {
		SortExhibitors(c, bucket)
	}

	return &GroupedResult{
		TotalCount:         len(records),
		ExhibitorsByLetter: buckets,
	}, nil
}

// Team returns every team member with a non-empty name, in sheet order.
func (s *Service) Team(ctx context.Context) (*TeamResult, error) {
	rows, err := s.src.Rows(ctx, s.schema.TeamSheet)
	if err != nil {
		return nil, err
	}

	members := make([]TeamMember, 0, len(rows))
	for _, row := range rows {
		rec := NormalizeTeamMember(row, s.schema.Team)
		if rec.Name == "" {
			continue
		}
		members = append(members, rec)
	}

	return &TeamResult{
		Count:     len(members),
		Team:      members,
		Timestamp: timestamp(),
	}, nil
}

// Partners returns partner records split by status. TotalCount is the
// number of grouped records, so it always equals ClosedCount plus
// AvailableCount.
func (s *Service) Partners(ctx context.Context) (*PartnersResult, error) {
	rows, err := s.src.Rows(ctx, s.schema.PartnerSheet)
	if err != nil {
		return nil, err
	}

	partners := make([]Partner, 0, len(rows))
	for _, row := range rows {
		rec := NormalizePartner(row, s.schema.Partners)
		if rec.Name == "" {
			continue
		}
		partners = append(partners, rec)
	}

	groups := GroupByStatus(partners)

	return &PartnersResult{
		ClosedCount:    len(groups.Closed),
		AvailableCount: len(groups.Available),
		TotalCount:     len(groups.Closed) + len(groups.Available),
		Partners:       groups,
		Timestamp:      timestamp(),
	}, nil
}

// AddExhibitor appends one raw exhibitor row. There is deliberately no
// duplicate check and no required-field validation; the row is written
// as-is and shows up on the next read.
func (s *Service) AddExhibitor(ctx context.Context, email, company, personName string) error {
	cols := s.schema.Exhibitors

	width := cols.Email
	if cols.Company > width {
		width = cols.Company
	}
	if cols.PersonName > width {
		width = cols.PersonName
	}

	row := make(source.Row, width+1)
	row[cols.Email] = source.String(email)
	row[cols.Company] = source.String(company)
	row[cols.PersonName] = source.String(personName)

	if err := s.src.Append(ctx, s.schema.ExhibitorSheet, row); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("exhibitor row appended",
		"op_id", uuid.NewString(),
		"company", company,
	)
	return nil
}
