package assessment

import "strings"

// DefaultSubject receives unknown subjects and unmatched topics.
const DefaultSubject = "mathematics"

// SubjectGeneral asks the selector to infer the subject from the topic.
const SubjectGeneral = "general"

// subjectRule maps keyword hits in a free-text topic to a canonical subject.
// Rules are checked in order and the first hit wins, so a topic touching two
// subjects always resolves to the earlier-listed one.
type subjectRule struct {
	subject  string
	keywords []string
}

var subjectRules = []subjectRule{
	{"mathematics", []string{"math", "algebra", "calculus", "geometry", "statistics", "equation", "derivative", "integral"}},
	{"computer_science", []string{"programming", "algorithm", "data structure", "computer", "coding", "software", "python", "java"}},
	{"physics", []string{"physics", "force", "energy", "momentum", "gravity", "quantum", "mechanics"}},
	{"literature", []string{"literature", "novel", "poem", "shakespeare", "author", "writing", "story"}},
}

// ResolveSubject infers the canonical subject for a free-text topic via
// case-insensitive substring matching. Topics that match no rule default to
// mathematics.
func ResolveSubject(topic string) string {
	lower := strings.ToLower(topic)
	for _, rule := range subjectRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.subject
			}
		}
	}
	return DefaultSubject
}
