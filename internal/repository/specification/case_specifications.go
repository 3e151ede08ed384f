package specification

import "gorm.io/gorm"

// CaseSearchQuery filters case documents by caption or docket number.
// Uses ILIKE for Postgres (case insensitive).
type CaseSearchQuery struct {
	Query string
}

func (s CaseSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("caption ILIKE ? OR docket_number ILIKE ?", pattern, pattern)
}

// CaseTokenQuery matches case documents whose caption contains ANY of the
// given tokens. Used by the search orchestrator to turn party-token hints
// into a candidate list.
type CaseTokenQuery struct {
	Tokens []string
}

func (s CaseTokenQuery) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Tokens) == 0 {
		return db
	}
	query := db
	for i, tok := range s.Tokens {
		pattern := "%" + tok + "%"
		if i == 0 {
			query = query.Where("caption ILIKE ?", pattern)
		} else {
			query = query.Or("caption ILIKE ?", pattern)
		}
	}
	return query
}

// ByDocketNumber filters by exact docket number.
type ByDocketNumber struct {
	DocketNumber string
}

func (s ByDocketNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("docket_number = ?", s.DocketNumber)
}
