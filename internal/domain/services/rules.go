package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// RulesRequest selects a movement's rules.
type RulesRequest struct {
	MovementID string
	KindFilter []string
	// DomainFilter keeps rules sharing at least one domain with it.
	DomainFilter []string
}

// RuleRow is one rule in the explorer.
type RuleRow struct {
	ID               string        `json:"id"`
	ShortText        string        `json:"shortText"`
	Kind             string        `json:"kind"`
	Details          *string       `json:"details"`
	AppliesTo        []string      `json:"appliesTo"`
	Domain           []string      `json:"domain"`
	Tags             []string      `json:"tags"`
	SupportingTexts  []TextRef     `json:"supportingTexts"`
	SupportingClaims []ClaimRef    `json:"supportingClaims"`
	RelatedPractices []PracticeRef `json:"relatedPractices"`
	SourcesOfTruth   []string      `json:"sourcesOfTruth"`
}

// RuleExplorer is the rule listing of a movement.
type RuleExplorer struct {
	Rules []RuleRow `json:"rules"`
}

// BuildRuleExplorer lists the rules owned by the movement.
func BuildRuleExplorer(ds *entities.Dataset, req RulesRequest) *RuleExplorer {
	textIndex := BuildIndex(ds.Texts)
	claimIndex := BuildIndex(ds.Claims)
	practiceIndex := BuildIndex(ds.Practices)

	rows := make([]RuleRow, 0)
	for _, r := range ScopedTo(ds.Rules, req.MovementID, false) {
		if len(req.KindFilter) > 0 && !contains(req.KindFilter, r.Kind) {
			continue
		}
		if len(req.DomainFilter) > 0 && !entities.HasAnyTag(r.Domain, req.DomainFilter) {
			continue
		}
		rows = append(rows, RuleRow{
			ID:               r.ID,
			ShortText:        r.ShortText,
			Kind:             r.Kind,
			Details:          r.Details,
			AppliesTo:        orEmpty(r.AppliesTo),
			Domain:           orEmpty(r.Domain),
			Tags:             orEmpty(r.Tags),
			SupportingTexts:  resolve(r.SupportingTextIDs, textIndex, textRef),
			SupportingClaims: resolve(r.SupportingClaimIDs, claimIndex, claimRef),
			RelatedPractices: resolve(r.RelatedPracticeIDs, practiceIndex, practiceRef),
			SourcesOfTruth:   orEmpty(r.SourcesOfTruth),
		})
	}

	return &RuleExplorer{Rules: rows}
}
