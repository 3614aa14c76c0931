package quality

import "testing"

func TestAssess(t *testing.T) {
	tests := []struct {
		years    int
		expected DataQuality
	}{
		{7, QualityExcellent},
		{5, QualityExcellent},
		{4, QualityGood},
		{3, QualityGood},
		{2, QualityLimited},
		{1, QualityInsufficient},
		{0, QualityInsufficient},
	}
	for _, tc := range tests {
		if got := Assess(tc.years); got != tc.expected {
			t.Errorf("Assess(%d) = %s, want %s", tc.years, got, tc.expected)
		}
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name          string
		dq            DataQuality
		universityAvg bool
		expected      ConfidenceLevel
	}{
		{"excellent course-specific", QualityExcellent, false, ConfidenceHigh},
		{"good course-specific", QualityGood, false, ConfidenceHigh},
		{"limited course-specific", QualityLimited, false, ConfidenceMedium},
		{"insufficient course-specific", QualityInsufficient, false, ConfidenceMedium},
		{"university average beats excellent data", QualityExcellent, true, ConfidenceLow},
		{"university average with limited data", QualityLimited, true, ConfidenceLow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Confidence(tc.dq, tc.universityAvg); got != tc.expected {
				t.Errorf("Confidence(%s, %v) = %s, want %s", tc.dq, tc.universityAvg, got, tc.expected)
			}
		})
	}
}
