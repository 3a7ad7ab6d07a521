package validate

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// OfficialDomains is the whitelist of official source domains. A URL passes
// when its domain equals one of these or is a subdomain of one.
var OfficialDomains = []string{
	"sbmf.com",
	"sbimf.com",
	"amfiindia.com",
	"sebi.gov.in",
}

// SourceViolation is a sources.csv row whose URL is outside the whitelist.
type SourceViolation struct {
	Row    int // 1-based, header is row 1
	URL    string
	Domain string
}

// Sources validates every row of a sources CSV (columns: url, domain)
// against the official-domain whitelist. An empty domain column is derived
// from the URL.
func Sources(r io.Reader) ([]SourceViolation, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	urlCol, domainCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "url":
			urlCol = i
		case "domain":
			domainCol = i
		}
	}
	if urlCol < 0 {
		return nil, fmt.Errorf("missing 'url' column")
	}

	var violations []SourceViolation
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		rawURL := strings.TrimSpace(record[urlCol])
		if rawURL == "" {
			continue
		}

		domain := ""
		if domainCol >= 0 && domainCol < len(record) {
			domain = strings.TrimSpace(record[domainCol])
		}
		if domain == "" {
			domain = ExtractDomain(rawURL)
		}

		if !IsOfficialDomain(domain) {
			violations = append(violations, SourceViolation{Row: row, URL: rawURL, Domain: domain})
		}
	}

	return violations, nil
}

// ExtractDomain returns the base domain of a URL: lowercased host with any
// port and leading "www." stripped. Returns "" for unparseable URLs.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}

// IsOfficialDomain reports whether domain is whitelisted: an exact match or
// a subdomain of an official domain.
func IsOfficialDomain(domain string) bool {
	if domain == "" {
		return false
	}
	for _, official := range OfficialDomains {
		if domain == official || strings.HasSuffix(domain, "."+official) {
			return true
		}
	}
	return false
}
