package biz

import (
	"strings"

	"github.com/Sid2318/Edufy/internal/pkg/domaindata"
)

// DetectDomain classifies document content into a subject domain by
// counting keyword hits. Returns domaindata.GeneralDomain when nothing
// matches.
func DetectDomain(content string) string {
	lower := strings.ToLower(content)

	best := domaindata.GeneralDomain
	bestScore := 0
	for domain, keywords := range domaindata.Keywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && domain < best) {
			best = domain
			bestScore = score
		}
	}

	if bestScore == 0 {
		return domaindata.GeneralDomain
	}
	return best
}
