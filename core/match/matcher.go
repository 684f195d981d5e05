// Package match scores extracted customer identities against the customer
// registry using weighted fuzzy string comparison.
package match

import (
	"sort"
	"strings"

	"banking-bpo/core/models"
)

// Query carries the identity fields pulled out of a court document. Empty
// fields simply contribute nothing to the score.
type Query struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// Result is one ranked candidate with its per-field score breakdown.
type Result struct {
	Customer    models.Customer    `json:"customer"`
	Score       float64            `json:"score"`
	FieldScores map[string]float64 `json:"field_scores"`
}

// Field weights. They sum to 1.0, so a full match across every field caps the
// total at 100 while a name-only exact match caps at 40.
const (
	weightName    = 0.4
	weightAccount = 0.4
	weightAddress = 0.15
	weightPhone   = 0.025
	weightEmail   = 0.025
)

// Candidates scoring at or below this are discarded.
const retainThreshold = 20

// Never return more than this many candidates.
const maxResults = 5

// FieldScore compares a single query field against a target field. First
// matching rule wins:
//
//  1. case-insensitive, whitespace-trimmed equality -> 100
//  2. substring containment either direction -> 80
//  3. token overlap -> fraction of matched query tokens x 60
//
// An empty field on either side scores 0.
func FieldScore(query, target string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return 100
	}
	if strings.Contains(t, q) || strings.Contains(q, t) {
		return 80
	}

	queryTokens := strings.Fields(q)
	targetTokens := strings.Fields(t)
	matched := 0
	for _, qt := range queryTokens {
		for _, tt := range targetTokens {
			if strings.Contains(tt, qt) || strings.Contains(qt, tt) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryTokens)) * 60
}

// Score computes the weighted total and per-field breakdown for one customer.
func Score(q Query, c models.Customer) (float64, map[string]float64) {
	fields := map[string]float64{
		"name":           FieldScore(q.Name, c.Name),
		"account_number": FieldScore(q.AccountNumber, c.AccountNumber),
		"address":        FieldScore(q.Address, c.Address),
		"phone":          FieldScore(q.Phone, c.Phone),
		"email":          FieldScore(q.Email, c.Email),
	}
	total := fields["name"]*weightName +
		fields["account_number"]*weightAccount +
		fields["address"]*weightAddress +
		fields["phone"]*weightPhone +
		fields["email"]*weightEmail
	return total, fields
}

// Rank scores the query against every customer and returns at most five
// candidates above the retention threshold, sorted by descending score. Ties
// keep the registry's iteration order.
func Rank(q Query, customers []models.Customer) []Result {
	results := make([]Result, 0, len(customers))
	for _, c := range customers {
		total, fields := Score(q, c)
		if total > retainThreshold {
			results = append(results, Result{Customer: c, Score: total, FieldScores: fields})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// Verification statuses derived from the best candidate's score.
const (
	StatusVerified    = "verified"
	StatusNeedsReview = "needs_review"
	StatusNotFound    = "not_found"
)

// VerificationStatus maps a total score onto the review ladder.
func VerificationStatus(score float64) string {
	switch {
	case score > 80:
		return StatusVerified
	case score > 50:
		return StatusNeedsReview
	default:
		return StatusNotFound
	}
}

// Verification is the outcome of checking an extracted identity against the
// registry: the ranked candidates plus the status of the best match.
type Verification struct {
	Query      Query    `json:"query"`
	MatchFound bool     `json:"match_found"`
	Status     string   `json:"status"`
	Confidence float64  `json:"confidence"`
	Candidates []Result `json:"candidates"`
}

// Verify ranks candidates and classifies the best one.
func Verify(q Query, customers []models.Customer) Verification {
	candidates := Rank(q, customers)
	v := Verification{
		Query:      q,
		Status:     StatusNotFound,
		Candidates: candidates,
	}
	if len(candidates) > 0 {
		v.Confidence = candidates[0].Score
		v.Status = VerificationStatus(candidates[0].Score)
		v.MatchFound = v.Status != StatusNotFound
	}
	return v
}
