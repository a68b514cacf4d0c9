package extractor

// Vocabulary holds the ordered term lists the extractor scans for. Order is
// part of the contract: skills keep vocabulary order in the extracted profile,
// and for locations and degrees the first hit wins.
type Vocabulary struct {
	Skills    []string
	Locations []string
	Degrees   []string
}

// DefaultVocabulary returns the built-in term lists. Callers may supply their
// own Vocabulary to New for a versioned or domain-specific set.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills: []string{
			"javascript", "react", "node.js", "mongodb", "python", "java",
			"html", "css", "express", "machine learning", "ai", "data analysis",
			"sql", "nosql", "aws", "docker", "kubernetes", "git", "rest api",
			"project management", "analytical thinking", "communication", "leadership",
		},
		Locations: []string{
			"delhi", "bangalore", "hyderabad", "jaipur", "mumbai", "chennai",
			"pune", "kolkata", "ahmedabad", "gurgaon", "noida", "remote",
		},
		// Most specific tokens come first so that e.g. "b.tech" is not
		// shadowed by a shorter generic degree.
		Degrees: []string{
			"b.tech", "m.tech", "b.e.", "m.e.", "bsc", "msc", "bca", "mca",
			"mbbs", "bachelor", "master", "phd", "ba", "ma",
		},
	}
}
