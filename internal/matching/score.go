package matching

import (
	"fmt"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"
)

// Signal weights. The four signals are independent and additive; their
// maxima sum to 100.
const (
	academicPoints      = 30
	pointsPerCert       = 5
	certPointsCap       = 25
	qualificationPoints = 35
	experiencePoints    = 10

	// QualifiedThreshold is the minimum score for a candidate to appear in
	// a job's applicant ranking.
	QualifiedThreshold = 70
)

// scoreCandidate computes the match score from fully-resolved inputs.
//
// Academic standing is binary: any verified transcript is worth the full 30
// points. Certificates count 5 points each up to 25, with no relevance
// filtering against the job. The qualification signal is a presence check
// on the job's requirement list only; no candidate/job overlap is computed.
func scoreCandidate(candidate *auth.User, job *jobs.Job, verifiedTranscripts, certificates int) MatchResult {
	score := 0
	matchDetails := []string{}

	if verifiedTranscripts > 0 {
		score += academicPoints
		matchDetails = append(matchDetails, "Academic transcripts verified")
	}

	if certificates > 0 {
		certPoints := certificates * pointsPerCert
		if certPoints > certPointsCap {
			certPoints = certPointsCap
		}
		score += certPoints
		matchDetails = append(matchDetails, fmt.Sprintf("%d relevant certificates", certificates))
	}

	if len(job.Qualifications) > 0 {
		score += qualificationPoints
		matchDetails = append(matchDetails, "Meets qualification requirements")
	}

	if candidate.WorkExperience {
		score += experiencePoints
		matchDetails = append(matchDetails, "Has work experience")
	}

	if score > 100 {
		score = 100
	}

	return MatchResult{
		StudentID:    candidate.ID,
		Score:        score,
		Qualified:    score >= QualifiedThreshold,
		MatchDetails: matchDetails,
	}
}
