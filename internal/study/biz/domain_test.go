package biz

import (
	"strings"
	"testing"

	"github.com/Sid2318/Edufy/internal/pkg/domaindata"
)

func TestDetectDomainNetworks(t *testing.T) {
	content := "The OSI model has seven layers. A router forwards packets between networks. " +
		"TCP/IP is the protocol suite of the internet, and DNS resolves names. " +
		"Each subnet has its own ip address range behind the firewall."

	if got := DetectDomain(content); got != "computer_networks" {
		t.Errorf("DetectDomain() = %q, want computer_networks", got)
	}
}

func TestDetectDomainBiology(t *testing.T) {
	content := "The cell contains DNA organized into chromosomes. During mitosis the cell divides. " +
		"Photosynthesis converts light into energy, and enzymes drive metabolism in each organism."

	if got := DetectDomain(content); got != "biology" {
		t.Errorf("DetectDomain() = %q, want biology", got)
	}
}

func TestDetectDomainNoMatch(t *testing.T) {
	if got := DetectDomain("the quick brown fox jumped over the lazy dog"); got != domaindata.GeneralDomain {
		t.Errorf("DetectDomain() = %q, want %q", got, domaindata.GeneralDomain)
	}
}

func TestDetectDomainEmptyContent(t *testing.T) {
	if got := DetectDomain(""); got != domaindata.GeneralDomain {
		t.Errorf("DetectDomain(\"\") = %q, want %q", got, domaindata.GeneralDomain)
	}
}

func TestDetectDomainCaseInsensitive(t *testing.T) {
	upper := "MITOSIS AND MEIOSIS PRODUCE CELLS. DNA AND RNA CARRY GENES. THE ORGANISM EVOLVES BY MUTATION."
	if got := DetectDomain(upper); got != "biology" {
		t.Errorf("DetectDomain(upper) = %q, want biology", got)
	}
	if got := DetectDomain(strings.ToLower(upper)); got != "biology" {
		t.Errorf("DetectDomain(lower) = %q, want biology", got)
	}
}
