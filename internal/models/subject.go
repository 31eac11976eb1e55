package models

// Subject is one of the eight fixed study-topic categories. The string values
// are part of the wire contract shared with the client and must not change.
type Subject string

const (
	SubjectAWS                  Subject = "AWS"
	SubjectSystemDesign         Subject = "System Design"
	SubjectDSA                  Subject = "DSA"
	SubjectDocker               Subject = "Docker"
	SubjectAWSRevision          Subject = "AWS Revision"
	SubjectSystemDesignRevision Subject = "System Design Revision"
	SubjectDSARevision          Subject = "DSA Revision"
	SubjectDockerRevision       Subject = "Docker Revision"
)

// Subjects returns all valid subjects in display order.
func Subjects() []Subject {
	return []Subject{
		SubjectAWS,
		SubjectSystemDesign,
		SubjectDSA,
		SubjectDocker,
		SubjectAWSRevision,
		SubjectSystemDesignRevision,
		SubjectDSARevision,
		SubjectDockerRevision,
	}
}

// IsValid reports whether s is one of the eight fixed subjects.
func (s Subject) IsValid() bool {
	switch s {
	case SubjectAWS, SubjectSystemDesign, SubjectDSA, SubjectDocker,
		SubjectAWSRevision, SubjectSystemDesignRevision, SubjectDSARevision, SubjectDockerRevision:
		return true
	}
	return false
}
